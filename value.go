package jsonflatten

import (
	"encoding/json"
	"fmt"
	"iter"
	"math"
	"slices"
	"sort"
	"strconv"
)

// Kind identifies the variant of a Value.
type Kind int

const (
	KindObject Kind = iota
	KindArray
	KindString
	KindNumber
	KindBool
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	}
	return "unknown"
}

// Value is a JSON document node: *Object, Array, String, Number, Bool or Null.
// The set of variants is closed.
type Value interface {
	Kind() Kind
	value()
}

// String is a JSON string.
type String string

// Number is a JSON number kept as its decimal text so that round-trips do not
// lose precision.
type Number string

// Bool is a JSON boolean.
type Bool bool

// Null is the JSON null literal.
type Null struct{}

// Array is a JSON array.
type Array []Value

func (String) Kind() Kind  { return KindString }
func (Number) Kind() Kind  { return KindNumber }
func (Bool) Kind() Kind    { return KindBool }
func (Null) Kind() Kind    { return KindNull }
func (Array) Kind() Kind   { return KindArray }
func (*Object) Kind() Kind { return KindObject }

func (String) value()  {}
func (Number) value()  {}
func (Bool) value()    {}
func (Null) value()    {}
func (Array) value()   {}
func (*Object) value() {}

// IsScalar reports whether v is a string, number, bool or null.
func IsScalar(v Value) bool {
	switch v.(type) {
	case *Object, Array:
		return false
	}
	return true
}

// Object is a JSON object with insertion-ordered keys.
type Object struct {
	keys []string
	vals map[string]Value
}

// NewObject returns an empty object.
func NewObject() *Object { return &Object{vals: map[string]Value{}} }

// Set stores v under k. Overwriting an existing key keeps its original
// position. A nil v is stored as Null.
func (o *Object) Set(k string, v Value) {
	if v == nil {
		v = Null{}
	}
	if o.vals == nil {
		o.vals = map[string]Value{}
	}
	if _, ok := o.vals[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.vals[k] = v
}

// Get returns the value stored under k.
func (o *Object) Get(k string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.vals[k]
	return v, ok
}

// Has reports whether k is present.
func (o *Object) Has(k string) bool {
	_, ok := o.Get(k)
	return ok
}

// Len returns the number of fields.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the field names in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return slices.Clone(o.keys)
}

// All iterates the fields in insertion order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o == nil {
			return
		}
		for _, k := range o.keys {
			if !yield(k, o.vals[k]) {
				return
			}
		}
	}
}

// FromAny converts values produced by encoding/json style decoding (or built
// by hand) into a Value. Map keys are sorted since Go maps carry no order.
func FromAny(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return t, nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case fmt.Stringer:
		// json.Number and friends
		if n, ok := t.(interface{ Float64() (float64, error) }); ok {
			if _, err := n.Float64(); err == nil {
				return Number(t.String()), nil
			}
		}
		return nil, fmt.Errorf("jsonflatten: unsupported value type %T", v)
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, fmt.Errorf("jsonflatten: %v is not representable in JSON", t)
		}
		return Number(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case float32:
		return FromAny(float64(t))
	case int:
		return Number(strconv.Itoa(t)), nil
	case int64:
		return Number(strconv.FormatInt(t, 10)), nil
	case int32:
		return Number(strconv.FormatInt(int64(t), 10)), nil
	case uint64:
		return Number(strconv.FormatUint(t, 10)), nil
	case uint:
		return Number(strconv.FormatUint(uint64(t), 10)), nil
	case []any:
		arr := make(Array, 0, len(t))
		for _, e := range t {
			ev, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			arr = append(arr, ev)
		}
		return arr, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			ev, err := FromAny(t[k])
			if err != nil {
				return nil, err
			}
			obj.Set(k, ev)
		}
		return obj, nil
	}
	return nil, fmt.Errorf("jsonflatten: unsupported value type %T", v)
}

// ToAny converts v into plain Go values: map[string]any, []any, string,
// json.Number, bool and nil.
func ToAny(v Value) any {
	switch t := v.(type) {
	case *Object:
		m := make(map[string]any, t.Len())
		for k, fv := range t.All() {
			m[k] = ToAny(fv)
		}
		return m
	case Array:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = ToAny(e)
		}
		return out
	case String:
		return string(t)
	case Number:
		return json.Number(t)
	case Bool:
		return bool(t)
	}
	return nil
}

// Float64 parses the number text.
func (n Number) Float64() (float64, error) { return strconv.ParseFloat(string(n), 64) }

func (n Number) String() string { return string(n) }
