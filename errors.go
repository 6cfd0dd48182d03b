package jsonflatten

import (
	"errors"
	"fmt"
	"strings"

	eng "github.com/reoring/jsonflatten/internal/engine"
)

// Issue codes
const (
	CodeMalformedConfig   = "malformed_config"
	CodeMalformedTemplate = "malformed_template"
	CodeUnknownOperation  = "unknown_operation"
	CodeInvalidParams     = "invalid_params"
	CodeMalformedInput    = "malformed_input"
	CodeCompactMismatch   = "compact_mismatch"
	CodeParseError        = "parse_error"
	CodeDuplicateKey      = "duplicate_key"
	CodeTruncated         = "truncated"
)

// Sentinel errors matched by Issues.Is on the code of any contained issue.
var (
	ErrMalformedConfig   = errors.New("jsonflatten: malformed config")
	ErrMalformedTemplate = errors.New("jsonflatten: malformed template")
	ErrUnknownOperation  = errors.New("jsonflatten: unknown operation")
	ErrInvalidParams     = errors.New("jsonflatten: invalid operation parameters")
	ErrMalformedInput    = errors.New("jsonflatten: malformed input")
	ErrCompactMismatch   = errors.New("jsonflatten: compact element is not an array")
)

var sentinelByCode = map[string]error{
	CodeMalformedConfig:   ErrMalformedConfig,
	CodeMalformedTemplate: ErrMalformedTemplate,
	CodeUnknownOperation:  ErrUnknownOperation,
	CodeInvalidParams:     ErrInvalidParams,
	CodeMalformedInput:    ErrMalformedInput,
	CodeCompactMismatch:   ErrCompactMismatch,
}

// Issue is a single compile or transform failure.
type Issue struct {
	Path    string // JSON Pointer into the template (compile) or input (transform).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured details, e.g. {"token": "drop", "source": "list;drop"}
	// for unknown operations.
	Params map[string]any
}

func (it Issue) String() string {
	if it.Message == "" {
		return fmt.Sprintf("%s at %s", it.Code, eng.NormalizePointer(it.Path))
	}
	return fmt.Sprintf("%s at %s: %s", it.Code, eng.NormalizePointer(it.Path), it.Message)
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].String())
	}
	if n := len(iss); n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Is reports whether any issue carries the code of the target sentinel.
func (iss Issues) Is(target error) bool {
	for _, it := range iss {
		if s, ok := sentinelByCode[it.Code]; ok && s == target {
			return true
		}
	}
	return false
}

// Unwrap exposes the causes of the contained issues.
func (iss Issues) Unwrap() []error {
	var errs []error
	for _, it := range iss {
		if it.Cause != nil {
			errs = append(errs, it.Cause)
		}
	}
	return errs
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func issueAt(path, code, msg string, params map[string]any) Issues {
	return AppendIssues(nil, Issue{Path: path, Code: code, Message: msg, Params: params})
}

// toIssues maps decoder and enforcement errors into Issues.
func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, Issue{Code: ie.Code, Path: ie.Path, Message: ie.Message})
	}
	return AppendIssues(nil, Issue{Code: CodeParseError, Message: err.Error(), Cause: err})
}
