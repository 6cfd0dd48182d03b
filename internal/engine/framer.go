package engine

// Framer tracks container nesting for decoders whose token stream does not
// distinguish object keys from string values (encoding/json style Token()).
type Framer struct {
	stack []framerFrame
}

type framerFrame struct {
	object       bool
	expectingKey bool
}

// Open records the start of an object or array.
func (f *Framer) Open(object bool) {
	f.stack = append(f.stack, framerFrame{object: object, expectingKey: object})
}

// Close records the end of the innermost container, which completes a value
// in its parent.
func (f *Framer) Close() {
	if n := len(f.stack); n > 0 {
		f.stack = f.stack[:n-1]
	}
	f.Value()
}

// String classifies a decoded string as KindKey or KindString.
func (f *Framer) String() Kind {
	if n := len(f.stack); n > 0 {
		top := &f.stack[n-1]
		if top.object && top.expectingKey {
			top.expectingKey = false
			return KindKey
		}
	}
	f.Value()
	return KindString
}

// Value records a completed scalar value.
func (f *Framer) Value() {
	if n := len(f.stack); n > 0 {
		top := &f.stack[n-1]
		if top.object && !top.expectingKey {
			top.expectingKey = true
		}
	}
}
