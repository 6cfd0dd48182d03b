package engine

import (
	"errors"
	"io"
	"testing"
)

type sliceSource struct {
	toks []Token
	pos  int
}

func (s *sliceSource) NextToken() (Token, error) {
	if s.pos >= len(s.toks) {
		return Token{}, io.EOF
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

func (s *sliceSource) Location() int64 { return int64(s.pos) }

func drain(ts TokenSource) error {
	for {
		if _, err := ts.NextToken(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// [ {"a":1,"a":2} ]
func dupTokens() []Token {
	return []Token{
		{Kind: KindBeginArray},
		{Kind: KindBeginObject},
		{Kind: KindKey, String: "a"},
		{Kind: KindNumber, Number: "1"},
		{Kind: KindKey, String: "a"},
		{Kind: KindNumber, Number: "2"},
		{Kind: KindEndObject},
		{Kind: KindEndArray},
	}
}

func TestEnforce_DuplicateError(t *testing.T) {
	ts := WrapWithEnforcement(&sliceSource{toks: dupTokens()}, EnforceOptions{OnDuplicate: DupError})
	err := drain(ts)
	var ie IssueError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IssueError, got %v", err)
	}
	if ie.Code != "duplicate_key" || ie.Path != "/0/a" {
		t.Fatalf("unexpected issue %+v", ie.SimpleIssue)
	}
}

func TestEnforce_DuplicateWarn(t *testing.T) {
	var got []SimpleIssue
	ts := WrapWithEnforcement(&sliceSource{toks: dupTokens()}, EnforceOptions{
		OnDuplicate: DupWarn,
		IssueSink:   func(si SimpleIssue) { got = append(got, si) },
	})
	if err := drain(ts); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Path != "/0/a" {
		t.Fatalf("unexpected issues %+v", got)
	}
}

func TestEnforce_DepthAndBytes(t *testing.T) {
	ts := WrapWithEnforcement(&sliceSource{toks: dupTokens()}, EnforceOptions{MaxDepth: 1})
	var ie IssueError
	if err := drain(ts); !errors.As(err, &ie) || ie.Path != "/0" {
		t.Fatalf("expected depth issue at /0, got %v", err)
	}
	ts = WrapWithEnforcement(&sliceSource{toks: dupTokens()}, EnforceOptions{MaxBytes: 3})
	if err := drain(ts); !errors.As(err, &ie) || ie.Code != "truncated" {
		t.Fatalf("expected truncated, got %v", err)
	}
}

func TestEnforceOptions_Disabled(t *testing.T) {
	if !(EnforceOptions{}).Disabled() {
		t.Fatalf("zero options must be disabled")
	}
	if (EnforceOptions{MaxDepth: 1}).Disabled() {
		t.Fatalf("depth limit must enable enforcement")
	}
}

func TestFramer(t *testing.T) {
	var f Framer
	f.Open(true)
	if f.String() != KindKey {
		t.Fatalf("first string in object is a key")
	}
	if f.String() != KindString {
		t.Fatalf("second string is a value")
	}
	if f.String() != KindKey {
		t.Fatalf("third string is a key again")
	}
	f.Open(false)
	if f.String() != KindString || f.String() != KindString {
		t.Fatalf("strings in arrays are values")
	}
	f.Close()
	if f.String() != KindKey {
		t.Fatalf("closing a value container expects a key")
	}
}

func TestJoinPointer(t *testing.T) {
	if got := JoinPointer("/a", "b/c~d"); got != "/a/b~1c~0d" {
		t.Fatalf("got %s", got)
	}
	if got := JoinIndex("", 3); got != "/3" {
		t.Fatalf("got %s", got)
	}
	if NormalizePointer("") != "/" {
		t.Fatalf("root must render as /")
	}
}
