package jsonflatten

// Config field names understood by ParseConfig.
const (
	ConfigOpKeyField    = "__OP_KEY__"
	ConfigTemplateField = "template"
)

// Template is a compiled template: the operation key it was authored with and
// the root Node. A Template is read-only and safe for concurrent use.
type Template struct {
	opKey string
	root  *Node
}

// OpKey returns the field name that carried operation strings in the template.
func (t *Template) OpKey() string { return t.opKey }

// Root returns the root node of the compiled tree.
func (t *Template) Root() *Node { return t.root }

// Flatten applies the template to input. See Flatten.
func (t *Template) Flatten(input Value) (Value, error) { return Flatten(t, input) }

func (t *Template) String() string { return t.root.String() }

// ParseTemplate compiles tmpl with the given operation key. tmpl may be JSON
// text (string or []byte), an *Object, or a map[string]any. JSON text must
// decode to an object.
func ParseTemplate(opKey string, tmpl any, opts ...DecodeOpt) (*Template, error) {
	var obj *Object
	switch t := tmpl.(type) {
	case string:
		o, err := decodeTemplateText([]byte(t), opts)
		if err != nil {
			return nil, err
		}
		obj = o
	case []byte:
		o, err := decodeTemplateText(t, opts)
		if err != nil {
			return nil, err
		}
		obj = o
	case *Object:
		obj = t
	case map[string]any:
		v, err := FromAny(t)
		if err != nil {
			return nil, AppendIssues(nil, Issue{Code: CodeMalformedTemplate, Message: err.Error(), Cause: err})
		}
		obj = v.(*Object)
	default:
		return nil, issueAt("", CodeMalformedTemplate, "template must be JSON text or an object", nil)
	}
	root, err := Compile(opKey, obj)
	if err != nil {
		return nil, err
	}
	return &Template{opKey: opKey, root: root}, nil
}

// ParseConfig compiles a template from a config object of the form
//
//	{"__OP_KEY__": "ops", "template": <JSON text or object>}
func ParseConfig(cfg Value, opts ...DecodeOpt) (*Template, error) {
	obj, ok := cfg.(*Object)
	if !ok {
		return nil, issueAt("", CodeMalformedConfig, "config must be an object", nil)
	}
	rawKey, ok := obj.Get(ConfigOpKeyField)
	if !ok {
		return nil, issueAt("/"+ConfigOpKeyField, CodeMalformedConfig, "missing "+ConfigOpKeyField, nil)
	}
	opKey, ok := rawKey.(String)
	if !ok {
		return nil, issueAt("/"+ConfigOpKeyField, CodeMalformedConfig, ConfigOpKeyField+" must be a string", nil)
	}
	rawTmpl, ok := obj.Get(ConfigTemplateField)
	if !ok {
		return nil, issueAt("/"+ConfigTemplateField, CodeMalformedConfig, "missing "+ConfigTemplateField, nil)
	}
	switch t := rawTmpl.(type) {
	case String:
		return ParseTemplate(string(opKey), string(t), opts...)
	case *Object:
		return ParseTemplate(string(opKey), t, opts...)
	}
	return nil, issueAt("/"+ConfigTemplateField, CodeMalformedConfig,
		ConfigTemplateField+" must be JSON text or an object, got "+rawTmpl.Kind().String(), nil)
}

func decodeTemplateText(b []byte, opts []DecodeOpt) (*Object, error) {
	v, err := DecodeBytes(b, opts...)
	if err != nil {
		iss, _ := AsIssues(err)
		msg := "template is not valid JSON"
		if len(iss) > 0 {
			msg += ": " + iss[0].Message
		}
		return nil, AppendIssues(nil, Issue{Code: CodeMalformedTemplate, Message: msg, Cause: err})
	}
	obj, ok := v.(*Object)
	if !ok {
		return nil, issueAt("", CodeMalformedTemplate, "template must decode to an object, got "+v.Kind().String(), nil)
	}
	return obj, nil
}
