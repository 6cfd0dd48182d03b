package jsonflatten_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	jsonflatten "github.com/reoring/jsonflatten"
)

func TestParseOps_Empty(t *testing.T) {
	for _, s := range []string{"", ";", " ; ;", "   "} {
		ops, err := jsonflatten.ParseOps(s)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if ops != nil {
			t.Fatalf("%q: expected nil set, got %v", s, ops)
		}
	}
}

func TestParseOps_Tokens(t *testing.T) {
	ops, err := jsonflatten.ParseOps(" list ; rename:users;compact:ignored:too ")
	if err != nil {
		t.Fatal(err)
	}
	for _, op := range []jsonflatten.Op{jsonflatten.OpList, jsonflatten.OpRename, jsonflatten.OpCompact} {
		if !ops.Has(op) {
			t.Fatalf("expected %s", op)
		}
	}
	for _, op := range []jsonflatten.Op{jsonflatten.OpDict, jsonflatten.OpOther, jsonflatten.OpDelete} {
		if ops.Has(op) {
			t.Fatalf("unexpected %s", op)
		}
	}
	if name, ok := ops.Rename(); !ok || name != "users" {
		t.Fatalf("rename = %q, %v", name, ok)
	}
	if diff := cmp.Diff([]string{"ignored", "too"}, ops.Params(jsonflatten.OpCompact)); diff != "" {
		t.Fatalf("params (-want +got):\n%s", diff)
	}
	if got := ops.String(); got != "list;rename:users;compact:ignored:too" {
		t.Fatalf("String() = %q", got)
	}
}

func TestParseOps_LastWins(t *testing.T) {
	ops, err := jsonflatten.ParseOps("rename:a;rename:b")
	if err != nil {
		t.Fatal(err)
	}
	if name, _ := ops.Rename(); name != "b" {
		t.Fatalf("rename = %q", name)
	}
}

func TestParseOps_UnknownOperation(t *testing.T) {
	_, err := jsonflatten.ParseOps("list;drop:x")
	it := firstIssue(t, err)
	if it.Code != jsonflatten.CodeUnknownOperation {
		t.Fatalf("code = %s", it.Code)
	}
	if it.Params["token"] != "drop" || it.Params["source"] != "list;drop:x" {
		t.Fatalf("params = %v", it.Params)
	}
	if !errors.Is(err, jsonflatten.ErrUnknownOperation) {
		t.Fatalf("expected ErrUnknownOperation")
	}
}

func TestParseOps_RenameArity(t *testing.T) {
	for _, s := range []string{"rename", "rename:", "rename:a:b"} {
		_, err := jsonflatten.ParseOps(s)
		if it := firstIssue(t, err); it.Code != jsonflatten.CodeInvalidParams {
			t.Fatalf("%q: code = %s", s, it.Code)
		}
	}
}

func TestOpRegistry(t *testing.T) {
	names := []string{"dict", "list", "other", "delete", "rename", "compact"}
	ops := jsonflatten.Ops()
	if len(ops) != len(names) {
		t.Fatalf("expected %d ops, got %d", len(names), len(ops))
	}
	for i, name := range names {
		op, ok := jsonflatten.LookupOp(name)
		if !ok || op != ops[i] || op.String() != name {
			t.Fatalf("LookupOp(%q) = %v, %v", name, op, ok)
		}
	}
	if _, ok := jsonflatten.LookupOp("Delete"); ok {
		t.Fatalf("lookup must be case sensitive")
	}
}

func TestOpSet_NilIsEmpty(t *testing.T) {
	var ops *jsonflatten.OpSet
	if !ops.Empty() || ops.Has(jsonflatten.OpDelete) || ops.Params(jsonflatten.OpRename) != nil {
		t.Fatalf("nil set must behave as empty")
	}
	if _, ok := ops.Rename(); ok {
		t.Fatalf("nil set has no rename")
	}
}
