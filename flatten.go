package jsonflatten

import (
	"strconv"

	eng "github.com/reoring/jsonflatten/internal/engine"
)

// Flattener applies one compiled template to many inputs. It holds no
// per-call state and is safe for concurrent use.
type Flattener struct {
	tmpl *Template
}

// NewFlattener returns a Flattener for t.
func NewFlattener(t *Template) *Flattener { return &Flattener{tmpl: t} }

// Template returns the template the flattener was built with.
func (f *Flattener) Template() *Template { return f.tmpl }

// Flatten transforms input, which must be an object. The result is usually
// an object, but a chain of delete operations can surface an array or a
// scalar in its place.
func (f *Flattener) Flatten(input Value) (Value, error) {
	return Flatten(f.tmpl, input)
}

// Flatten transforms input against t. See Flattener.Flatten.
func Flatten(t *Template, input Value) (Value, error) {
	if t == nil || t.root == nil {
		return nil, issueAt("", CodeMalformedConfig, "nil template", nil)
	}
	obj, ok := input.(*Object)
	if !ok {
		got := "nil"
		if input != nil {
			got = input.Kind().String()
		}
		return nil, issueAt("", CodeMalformedInput, "input must be an object, got "+got, nil)
	}
	return transformObject(obj, t.root, "")
}

// mergeResult reports how mergeInto finished: either every field was merged
// into the target, or a delete below surfaced a value that replaces the
// enclosing object.
type mergeResult struct {
	promoted Value
}

func merged() mergeResult              { return mergeResult{} }
func promote(v Value) mergeResult      { return mergeResult{promoted: v} }
func (r mergeResult) isPromoted() bool { return r.promoted != nil }

func transformObject(obj *Object, n *Node, path string) (Value, error) {
	if !n.HasChildren() {
		return NewObject(), nil
	}
	out := NewObject()
	res, err := mergeInto(out, obj, n, path)
	if err != nil {
		return nil, err
	}
	if res.isPromoted() {
		return res.promoted, nil
	}
	return out, nil
}

// mergeInto writes the fields selected by n from obj into out. Template
// order, not input order, decides the order of output fields.
func mergeInto(out, obj *Object, n *Node, path string) (mergeResult, error) {
	if !n.HasChildren() {
		return promote(NewObject()), nil
	}
	for key, child := range n.Children() {
		fv, ok := obj.Get(key)
		if !ok {
			continue
		}
		ops := child.Ops()
		outKey := key
		if name, ok := ops.Rename(); ok {
			outKey = name
		}
		fpath := eng.JoinPointer(path, key)

		switch t := fv.(type) {
		case *Object:
			if ops.Has(OpList) || ops.Has(OpOther) {
				continue
			}
			if ops.Has(OpDelete) {
				// the child's fields land directly in out
				res, err := mergeInto(out, t, child, fpath)
				if err != nil || res.isPromoted() {
					return res, err
				}
				continue
			}
			v, err := transformObject(t, child, fpath)
			if err != nil {
				return merged(), err
			}
			out.Set(outKey, v)
		case Array:
			if ops.Has(OpDict) || ops.Has(OpOther) {
				continue
			}
			v, err := transformArray(t, child, fpath)
			if err != nil {
				return merged(), err
			}
			if ops.Has(OpDelete) {
				return promote(v), nil
			}
			out.Set(outKey, v)
		default:
			if ops.Has(OpList) || ops.Has(OpDict) {
				continue
			}
			if ops.Has(OpDelete) {
				return promote(fv), nil
			}
			out.Set(outKey, fv)
		}
	}
	return merged(), nil
}

// transformArray selects elements of arr. With the wildcard selector the
// array node's own compact flag decides whether element results are spliced;
// with explicit index selectors each index child's compact flag decides.
func transformArray(arr Array, n *Node, path string) (Array, error) {
	out := Array{}
	if !n.HasChildren() {
		return out, nil
	}
	var err error
	if all, ok := n.Child(SelectorAll); ok {
		compact := n.Ops().Has(OpCompact)
		for i, e := range arr {
			if out, err = appendElement(out, e, all, compact, eng.JoinIndex(path, i)); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
	for sel, child := range n.Children() {
		i, convErr := strconv.Atoi(sel)
		if convErr != nil {
			return nil, issueAt(eng.JoinPointer(path, sel), CodeMalformedTemplate,
				`array selector "`+sel+`" is neither "`+SelectorAll+`" nor an integer index`,
				map[string]any{"selector": sel})
		}
		// negative indexes count from the end
		if i < 0 {
			i += len(arr)
		}
		if i < 0 || i >= len(arr) {
			continue
		}
		if out, err = appendElement(out, arr[i], child, child.Ops().Has(OpCompact), eng.JoinIndex(path, i)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// appendElement transforms one array element. Scalars are kept as they are.
func appendElement(out Array, e Value, n *Node, compact bool, path string) (Array, error) {
	switch t := e.(type) {
	case *Object:
		v, err := transformObject(t, n, path)
		if err != nil {
			return nil, err
		}
		if !compact {
			return append(out, v), nil
		}
		a, ok := v.(Array)
		if !ok {
			return nil, issueAt(path, CodeCompactMismatch,
				"compact expects the element to transform into an array, got "+v.Kind().String(), nil)
		}
		return append(out, a...), nil
	case Array:
		v, err := transformArray(t, n, path)
		if err != nil {
			return nil, err
		}
		if compact {
			return append(out, v...), nil
		}
		return append(out, v), nil
	}
	return append(out, e), nil
}
