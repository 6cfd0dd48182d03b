package jsonflatten

import (
	"slices"
	"strings"
)

// Op is a template operation. The set of operations is closed.
type Op uint8

const (
	// OpDict keeps the field only when its value is an object.
	OpDict Op = iota
	// OpList keeps the field only when its value is an array.
	OpList
	// OpOther keeps the field only when its value is a scalar.
	OpOther
	// OpDelete promotes the transformed field value to replace its enclosing object.
	OpDelete
	// OpRename emits the field under the name given as its single parameter.
	OpRename
	// OpCompact concatenates array results instead of nesting them.
	OpCompact

	numOps
)

var opNames = [numOps]string{
	OpDict:    "dict",
	OpList:    "list",
	OpOther:   "other",
	OpDelete:  "delete",
	OpRename:  "rename",
	OpCompact: "compact",
}

func (op Op) String() string {
	if op < numOps {
		return opNames[op]
	}
	return "unknown"
}

// LookupOp returns the operation registered under name.
func LookupOp(name string) (Op, bool) {
	for i, n := range opNames {
		if n == name {
			return Op(i), true
		}
	}
	return 0, false
}

// Ops returns every registered operation in declaration order.
func Ops() []Op {
	out := make([]Op, numOps)
	for i := range out {
		out[i] = Op(i)
	}
	return out
}

// OpSet is the set of operations attached to a template position together
// with their parameters. The zero value is an empty set.
type OpSet struct {
	mask   uint8
	params [numOps][]string
}

// Has reports whether op is in the set.
func (s *OpSet) Has(op Op) bool {
	return s != nil && s.mask&(1<<op) != 0
}

// Params returns the parameters supplied with op.
func (s *OpSet) Params(op Op) []string {
	if !s.Has(op) {
		return nil
	}
	return slices.Clone(s.params[op])
}

// Rename returns the output field name when OpRename is present.
func (s *OpSet) Rename() (string, bool) {
	if !s.Has(OpRename) {
		return "", false
	}
	return s.params[OpRename][0], true
}

// Empty reports whether no operation is set.
func (s *OpSet) Empty() bool { return s == nil || s.mask == 0 }

// String renders the set back into the operation mini-language.
func (s *OpSet) String() string {
	if s.Empty() {
		return ""
	}
	var parts []string
	for op := Op(0); op < numOps; op++ {
		if !s.Has(op) {
			continue
		}
		parts = append(parts, strings.Join(append([]string{op.String()}, s.params[op]...), ":"))
	}
	return strings.Join(parts, ";")
}

func (s *OpSet) set(op Op, params []string) {
	s.mask |= 1 << op
	s.params[op] = params
}

// ParseOps parses an operation string such as "list;rename:users;compact".
// Tokens are separated by ';' and whitespace around a token is ignored; each
// token is a name optionally followed by ':'-separated parameters. A later
// occurrence of the same name replaces an earlier one. A string without
// tokens yields nil.
func ParseOps(src string) (*OpSet, error) {
	return parseOpsAt("", src)
}

func parseOpsAt(path, src string) (*OpSet, error) {
	var set OpSet
	for _, tok := range strings.Split(src, ";") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		name, rest, hasParams := strings.Cut(tok, ":")
		op, ok := LookupOp(name)
		if !ok {
			return nil, issueAt(path, CodeUnknownOperation,
				`operation "`+name+`" in "`+src+`" is not allowed`,
				map[string]any{"token": name, "source": src})
		}
		var params []string
		if hasParams {
			params = strings.Split(rest, ":")
		}
		if err := checkArity(path, op, params, src); err != nil {
			return nil, err
		}
		set.set(op, params)
	}
	if set.Empty() {
		return nil, nil
	}
	return &set, nil
}

// checkArity validates per-operation parameter shapes. Only rename takes a
// parameter; the others ignore whatever is supplied.
func checkArity(path string, op Op, params []string, src string) error {
	if op != OpRename {
		return nil
	}
	if len(params) != 1 || params[0] == "" {
		return issueAt(path, CodeInvalidParams,
			`rename in "`+src+`" requires exactly one non-empty field name`,
			map[string]any{"token": op.String(), "source": src, "params": params})
	}
	return nil
}
