package yaml_test

import (
	"errors"
	"io"
	"os"
	"testing"

	jsonflatten "github.com/reoring/jsonflatten"
	yamlsrc "github.com/reoring/jsonflatten/source/yaml"
)

func TestYAML_PreservesKeyOrderAndScalars(t *testing.T) {
	src := yamlsrc.NewBytes([]byte("b: 1\na: [true, null, 2.5, text]\nc:\n  z: x\n  y: \"\"\n"))
	v, err := jsonflatten.Decode(src)
	if err != nil {
		t.Fatal(err)
	}
	b, err := jsonflatten.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"b":1,"a":[true,null,2.5,"text"],"c":{"z":"x","y":""}}`
	if string(b) != want {
		t.Fatalf("got %s want %s", b, want)
	}
}

func TestYAML_Aliases(t *testing.T) {
	v, err := jsonflatten.Decode(yamlsrc.NewBytes([]byte("base: &b {k: 1}\ncopy: *b\n")))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := jsonflatten.Marshal(v)
	if string(b) != `{"base":{"k":1},"copy":{"k":1}}` {
		t.Fatalf("got %s", b)
	}
}

func TestYAML_EmptyDocument(t *testing.T) {
	_, err := yamlsrc.NewBytes(nil).NextToken()
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestYAML_RejectsNaN(t *testing.T) {
	if _, err := jsonflatten.Decode(yamlsrc.NewBytes([]byte("x: .nan\n"))); err == nil {
		t.Fatalf("expected error for NaN")
	}
}

func TestYAML_WaybillTemplateMatchesJSON(t *testing.T) {
	yb, err := os.ReadFile("../../testdata/waybill_template.yaml")
	if err != nil {
		t.Fatal(err)
	}
	fromYAML, err := jsonflatten.Decode(yamlsrc.NewBytes(yb))
	if err != nil {
		t.Fatal(err)
	}
	jb, err := os.ReadFile("../../testdata/waybill_config.json")
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := jsonflatten.DecodeBytes(jb)
	if err != nil {
		t.Fatal(err)
	}
	tmplJSON, ok := cfg.(*jsonflatten.Object).Get(jsonflatten.ConfigTemplateField)
	if !ok {
		t.Fatalf("config has no %s field", jsonflatten.ConfigTemplateField)
	}

	got, _ := jsonflatten.Marshal(fromYAML)
	want, _ := jsonflatten.Marshal(tmplJSON)
	if string(got) != string(want) {
		t.Fatalf("yaml template differs:\n%s\n%s", got, want)
	}
}
