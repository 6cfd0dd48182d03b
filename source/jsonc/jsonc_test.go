package jsonc_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	jsonflatten "github.com/reoring/jsonflatten"
	"github.com/reoring/jsonflatten/source/jsonc"
)

func TestDriver_StripsCommentsAndTrailingCommas(t *testing.T) {
	v, err := jsonflatten.Decode(jsonc.Driver(nil).NewReader(strings.NewReader("{\n// c\n\"a\": [1, 2,],\n}")))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := jsonflatten.Marshal(v)
	if string(b) != `{"a":[1,2]}` {
		t.Fatalf("got %s", b)
	}
}

func TestDriver_Name(t *testing.T) {
	if got := jsonc.Driver(nil).Name(); got != "hujson" {
		t.Fatalf("got %q", got)
	}
	inner := jsonflatten.CurrentJSONDriver()
	if got := jsonc.Driver(inner).Name(); got != "hujson+"+inner.Name() {
		t.Fatalf("got %q", got)
	}
}

func TestDriver_SyntaxError(t *testing.T) {
	_, err := jsonflatten.Decode(jsonc.Driver(nil).NewBytes([]byte("{\"a\": }")))
	var iss jsonflatten.Issues
	if !errors.As(err, &iss) || iss[0].Code != jsonflatten.CodeParseError {
		t.Fatalf("expected parse_error, got %v", err)
	}
}

func TestStandardize(t *testing.T) {
	got, err := jsonc.Standardize([]byte("{\"a\": 1, /* note */ \"b\": [2,],}"))
	if err != nil {
		t.Fatal(err)
	}
	v, err := jsonflatten.DecodeBytes(got)
	if err != nil {
		t.Fatalf("standardized output is not plain JSON: %v", err)
	}
	b, _ := jsonflatten.Marshal(v)
	if string(b) != `{"a":1,"b":[2]}` {
		t.Fatalf("got %s", b)
	}
	if _, err := jsonc.Standardize([]byte("{")); err == nil {
		t.Fatalf("expected error for truncated input")
	}
}

func TestUsersConfig(t *testing.T) {
	b, err := os.ReadFile("../../testdata/users_config.jsonc")
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := jsonflatten.Decode(jsonc.Driver(nil).NewBytes(b))
	if err != nil {
		t.Fatal(err)
	}
	tmpl, err := jsonflatten.ParseConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	in, err := jsonflatten.DecodeBytes([]byte(`{"users":[[1,"ann"],[2,"bob"]]}`))
	if err != nil {
		t.Fatal(err)
	}
	out, err := tmpl.Flatten(in)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := jsonflatten.Marshal(out)
	if string(got) != `{"users":["ann","bob"]}` {
		t.Fatalf("got %s", got)
	}
}
