package jsonflatten_test

import (
	"errors"
	"testing"

	jsonflatten "github.com/reoring/jsonflatten"
)

func TestParseConfig_TemplateText(t *testing.T) {
	cfg := mustDecode(t, `{"__OP_KEY__":"ops","template":"{\"user\":{\"name\":\"delete\",\"password\":{\"ops\":\"\"}}}"}`)
	tmpl, err := jsonflatten.ParseConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if tmpl.OpKey() != "ops" {
		t.Fatalf("op key = %q", tmpl.OpKey())
	}
	out, err := tmpl.Flatten(mustDecode(t, `{"user":{"name":"admin","password":"123"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := mustMarshal(t, out); got != `{"user":"admin"}` {
		t.Fatalf("got %s", got)
	}
}

func TestParseConfig_Malformed(t *testing.T) {
	cases := map[string]string{
		"not an object":     `[]`,
		"missing op key":    `{"template":{}}`,
		"op key not string": `{"__OP_KEY__":1,"template":{}}`,
		"missing template":  `{"__OP_KEY__":"ops"}`,
		"template number":   `{"__OP_KEY__":"ops","template":3}`,
		"empty op key":      `{"__OP_KEY__":"","template":{}}`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := jsonflatten.ParseConfig(mustDecode(t, src))
			if !errors.Is(err, jsonflatten.ErrMalformedConfig) {
				t.Fatalf("expected ErrMalformedConfig, got %v", err)
			}
		})
	}
}

func TestParseTemplate_Inputs(t *testing.T) {
	obj := jsonflatten.NewObject()
	obj.Set("a", jsonflatten.String("rename:b"))
	inputs := []any{
		`{"a":"rename:b"}`,
		[]byte(`{"a":"rename:b"}`),
		obj,
		map[string]any{"a": "rename:b"},
	}
	for _, in := range inputs {
		tmpl, err := jsonflatten.ParseTemplate("ops", in)
		if err != nil {
			t.Fatalf("%T: %v", in, err)
		}
		out, err := tmpl.Flatten(mustDecode(t, `{"a":1}`))
		if err != nil {
			t.Fatal(err)
		}
		if got := mustMarshal(t, out); got != `{"b":1}` {
			t.Fatalf("%T: got %s", in, got)
		}
	}
}

func TestParseTemplate_FormatErrors(t *testing.T) {
	for _, in := range []any{`{"a":`, `[1,2]`, `"text"`, 42, jsonflatten.Array{}} {
		_, err := jsonflatten.ParseTemplate("ops", in)
		if !errors.Is(err, jsonflatten.ErrMalformedTemplate) {
			t.Fatalf("%v: expected ErrMalformedTemplate, got %v", in, err)
		}
	}
}
