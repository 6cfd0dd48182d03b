package jsonflatten

import (
	eng "github.com/reoring/jsonflatten/internal/engine"
)

// Compile turns a template object into a Node tree. opKey names the field
// that carries an object's own operation string inside the template.
//
// Each field of the template becomes a child selector: objects compile
// recursively, strings are parsed as operation strings on a leaf, and any
// other value yields a leaf without operations.
func Compile(opKey string, tmpl *Object) (*Node, error) {
	if opKey == "" {
		return nil, issueAt("", CodeMalformedConfig, "operation key must not be empty", nil)
	}
	if tmpl == nil {
		return nil, issueAt("", CodeMalformedTemplate, "template must be an object", nil)
	}
	return compileObject("", opKey, tmpl)
}

func compileObject(path, opKey string, obj *Object) (*Node, error) {
	n := &Node{children: &children{nodes: make(map[string]*Node, obj.Len())}}
	if raw, ok := obj.Get(opKey); ok {
		s, ok := raw.(String)
		if !ok {
			return nil, issueAt(eng.JoinPointer(path, opKey), CodeMalformedTemplate,
				"operation string must be a string, got "+raw.Kind().String(), nil)
		}
		ops, err := parseOpsAt(eng.JoinPointer(path, opKey), string(s))
		if err != nil {
			return nil, err
		}
		n.ops = ops
	}
	for k, v := range obj.All() {
		if k == opKey {
			continue
		}
		cpath := eng.JoinPointer(path, k)
		switch t := v.(type) {
		case *Object:
			c, err := compileObject(cpath, opKey, t)
			if err != nil {
				return nil, err
			}
			n.children.add(k, c)
		case String:
			ops, err := parseOpsAt(cpath, string(t))
			if err != nil {
				return nil, err
			}
			n.children.add(k, &Node{ops: ops})
		default:
			n.children.add(k, &Node{})
		}
	}
	return n, nil
}
