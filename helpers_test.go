package jsonflatten_test

import (
	"testing"

	jsonflatten "github.com/reoring/jsonflatten"
)

func mustDecode(t *testing.T, src string) jsonflatten.Value {
	t.Helper()
	v, err := jsonflatten.DecodeBytes([]byte(src))
	if err != nil {
		t.Fatalf("decode %s: %v", src, err)
	}
	return v
}

func mustTemplate(t *testing.T, opKey, src string) *jsonflatten.Template {
	t.Helper()
	tmpl, err := jsonflatten.ParseTemplate(opKey, src)
	if err != nil {
		t.Fatalf("template %s: %v", src, err)
	}
	return tmpl
}

func mustMarshal(t *testing.T, v jsonflatten.Value) string {
	t.Helper()
	b, err := jsonflatten.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

// flattenJSON compiles tmpl, applies it to input and returns compact JSON.
func flattenJSON(t *testing.T, opKey, tmpl, input string) string {
	t.Helper()
	out, err := mustTemplate(t, opKey, tmpl).Flatten(mustDecode(t, input))
	if err != nil {
		t.Fatalf("flatten: %v", err)
	}
	return mustMarshal(t, out)
}

func mustResult(t *testing.T, tmpl *jsonflatten.Template, input string) jsonflatten.Value {
	t.Helper()
	out, err := tmpl.Flatten(mustDecode(t, input))
	if err != nil {
		t.Fatalf("flatten %s: %v", input, err)
	}
	return out
}

func firstIssue(t *testing.T, err error) jsonflatten.Issue {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	iss, ok := jsonflatten.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got %T: %v", err, err)
	}
	return iss[0]
}
