package jsonflatten

import (
	"bytes"
	"errors"
	"io"

	j "github.com/goccy/go-json"
)

// Marshal renders v as compact JSON. Object fields are written in insertion
// order.
func Marshal(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent is like Marshal but applies indentation.
func MarshalIndent(v Value, prefix, indent string) ([]byte, error) {
	b, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := j.Indent(&buf, b, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes v followed by a newline. An empty indent produces compact output.
func Encode(w io.Writer, v Value, indent string) error {
	var (
		b   []byte
		err error
	)
	if indent == "" {
		b, err = Marshal(v)
	} else {
		b, err = MarshalIndent(v, "", indent)
	}
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// MarshalJSON lets objects nested in other structures encode in field order.
func (o *Object) MarshalJSON() ([]byte, error) { return Marshal(o) }

// MarshalJSON encodes the array and its ordered objects.
func (a Array) MarshalJSON() ([]byte, error) { return Marshal(a) }

func writeValue(buf *bytes.Buffer, v Value) error {
	switch t := v.(type) {
	case *Object:
		buf.WriteByte('{')
		i := 0
		for k, fv := range t.All() {
			if i > 0 {
				buf.WriteByte(',')
			}
			i++
			if err := writeString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeValue(buf, fv); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case Array:
		buf.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case String:
		return writeString(buf, string(t))
	case Number:
		if t == "" {
			return errors.New("jsonflatten: empty number")
		}
		buf.WriteString(string(t))
	case Bool:
		if t {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	default:
		buf.WriteString("null")
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	b, err := j.MarshalNoEscape(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
