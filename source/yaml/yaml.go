// Package yaml exposes YAML documents as token sources so templates and
// configs can be authored in YAML. Mapping key order is preserved.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	jsonflatten "github.com/reoring/jsonflatten"
	eng "github.com/reoring/jsonflatten/internal/engine"
)

// NewReader decodes the first YAML document of r.
func NewReader(r io.Reader) jsonflatten.Source {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &source{}
		}
		return &source{err: err}
	}
	s := &source{}
	if err := s.emit(&doc); err != nil {
		return &source{err: err}
	}
	return s
}

// NewBytes decodes the first YAML document of b.
func NewBytes(b []byte) jsonflatten.Source { return NewReader(bytes.NewReader(b)) }

// source replays the tokens of an already walked document.
type source struct {
	toks []eng.Token
	pos  int
	err  error
}

func (s *source) NextToken() (eng.Token, error) {
	if s.err != nil {
		return eng.Token{}, s.err
	}
	if s.pos >= len(s.toks) {
		return eng.Token{}, io.EOF
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

func (s *source) Location() int64 { return -1 }

func (s *source) push(t eng.Token) {
	t.Offset = -1
	s.toks = append(s.toks, t)
}

func (s *source) emit(n *yaml.Node) error {
	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			if err := s.emit(c); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		s.push(eng.Token{Kind: eng.KindBeginObject})
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return fmt.Errorf("yaml: line %d: mapping keys must be scalars", k.Line)
			}
			s.push(eng.Token{Kind: eng.KindKey, String: k.Value})
			if err := s.emit(n.Content[i+1]); err != nil {
				return err
			}
		}
		s.push(eng.Token{Kind: eng.KindEndObject})
	case yaml.SequenceNode:
		s.push(eng.Token{Kind: eng.KindBeginArray})
		for _, c := range n.Content {
			if err := s.emit(c); err != nil {
				return err
			}
		}
		s.push(eng.Token{Kind: eng.KindEndArray})
	case yaml.AliasNode:
		return s.emit(n.Alias)
	case yaml.ScalarNode:
		t, err := scalarToken(n)
		if err != nil {
			return err
		}
		s.push(t)
	}
	return nil
}

func scalarToken(n *yaml.Node) (eng.Token, error) {
	switch n.ShortTag() {
	case "!!null":
		return eng.Token{Kind: eng.KindNull}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return eng.Token{}, err
		}
		return eng.Token{Kind: eng.KindBool, Bool: b}, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return eng.Token{}, err
		}
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatInt(i, 10)}, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return eng.Token{}, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return eng.Token{}, fmt.Errorf("yaml: line %d: %s is not representable in JSON", n.Line, n.Value)
		}
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(f, 'g', -1, 64)}, nil
	}
	return eng.Token{Kind: eng.KindString, String: n.Value}, nil
}
