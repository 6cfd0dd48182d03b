package jsonflatten

import (
	"errors"
	"io"

	eng "github.com/reoring/jsonflatten/internal/engine"
)

// Decode consumes exactly one JSON value from src and builds an ordered Value.
// Trailing tokens after the value are reported as a parse error.
func Decode(src Source, opts ...DecodeOpt) (Value, error) {
	opt := lastDecodeOpt(opts)
	var ts eng.TokenSource = src
	if eo := toEnforceOptions(opt); !eo.Disabled() {
		ts = eng.WrapWithEnforcement(ts, eo)
	}
	tok, err := ts.NextToken()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, issueAt("", CodeParseError, "empty input", nil)
		}
		return nil, toIssues(err)
	}
	v, err := decodeValue(ts, tok)
	if err != nil {
		return nil, toIssues(err)
	}
	if _, err := ts.NextToken(); err == nil {
		return nil, issueAt("", CodeParseError, "unexpected data after top-level value", nil)
	} else if !errors.Is(err, io.EOF) {
		return nil, toIssues(err)
	}
	return v, nil
}

// DecodeBytes decodes a JSON document held in memory using the current driver.
func DecodeBytes(b []byte, opts ...DecodeOpt) (Value, error) {
	opt := lastDecodeOpt(opts)
	if opt.MaxBytes > 0 && int64(len(b)) > opt.MaxBytes {
		return nil, issueAt("", CodeTruncated, "max bytes exceeded", nil)
	}
	return Decode(JSONBytes(b), opts...)
}

// DecodeReader decodes a JSON document from r. When MaxBytes is set it
// enforces the size cap up front since not every driver reports offsets.
func DecodeReader(r io.Reader, opts ...DecodeOpt) (Value, error) {
	opt := lastDecodeOpt(opts)
	if opt.MaxBytes > 0 {
		data, err := io.ReadAll(io.LimitReader(r, opt.MaxBytes+1))
		if err != nil {
			return nil, AppendIssues(nil, Issue{Code: CodeParseError, Message: err.Error(), Cause: err})
		}
		return DecodeBytes(data, opts...)
	}
	return Decode(JSONReader(r), opts...)
}

func toEnforceOptions(opt DecodeOpt) eng.EnforceOptions {
	eo := eng.EnforceOptions{MaxDepth: opt.MaxDepth, MaxBytes: opt.MaxBytes}
	switch opt.Strictness.OnDuplicateKey {
	case Error:
		eo.OnDuplicate = eng.DupError
	case Warn:
		eo.OnDuplicate = eng.DupWarn
	}
	if opt.OnIssue != nil {
		eo.IssueSink = func(si eng.SimpleIssue) {
			opt.OnIssue(Issue{Path: si.Path, Code: si.Code, Message: si.Message})
		}
	}
	return eo
}

func decodeValue(src eng.TokenSource, tok Token) (Value, error) {
	switch tok.Kind {
	case TokenBeginObject:
		return decodeObject(src)
	case TokenBeginArray:
		return decodeArray(src)
	case TokenString:
		return String(tok.String), nil
	case TokenNumber:
		return Number(tok.Number), nil
	case TokenBool:
		return Bool(tok.Bool), nil
	case TokenNull:
		return Null{}, nil
	default:
		return nil, io.ErrUnexpectedEOF
	}
}

func decodeObject(src eng.TokenSource) (Value, error) {
	obj := NewObject()
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, eofIsUnexpected(err)
		}
		if tok.Kind == TokenEndObject {
			return obj, nil
		}
		if tok.Kind != TokenKey {
			return nil, io.ErrUnexpectedEOF
		}
		vt, err := src.NextToken()
		if err != nil {
			return nil, eofIsUnexpected(err)
		}
		v, err := decodeValue(src, vt)
		if err != nil {
			return nil, err
		}
		obj.Set(tok.String, v)
	}
}

func decodeArray(src eng.TokenSource) (Value, error) {
	arr := Array{}
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, eofIsUnexpected(err)
		}
		if tok.Kind == TokenEndArray {
			return arr, nil
		}
		v, err := decodeValue(src, tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

func eofIsUnexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
