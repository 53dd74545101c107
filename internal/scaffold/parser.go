package scaffold

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ValidationError reports a name or model property that cannot be generated.
type ValidationError struct {
	Kind   string // what Field names; "property" when empty
	Field  string
	Type   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		kind := e.Kind
		if kind == "" {
			kind = "property"
		}
		return fmt.Sprintf("invalid %s %q: %s", kind, e.Field, e.Reason)
	}
	return fmt.Sprintf("unknown type %q for %q (valid: %s)", e.Type, e.Field, validTypeList())
}

// ParseProperties parses every "name:type:required" spec.
// The first invalid spec aborts parsing; no partial result is returned.
func ParseProperties(specs []string) ([]Field, error) {
	fields := make([]Field, 0, len(specs))
	for _, spec := range specs {
		field, err := ParseProperty(spec)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// ParseProperty parses a single property spec.
// Format: "name", "name:type", "name:type:required" or the shorthand "name:true".
func ParseProperty(spec string) (Field, error) {
	parts := strings.Split(spec, ":")

	name := strings.TrimSpace(parts[0])
	var typeToken, requiredToken string
	if len(parts) > 1 {
		typeToken = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		requiredToken = strings.TrimSpace(parts[2])
	}

	if name == "" {
		return Field{}, &ValidationError{Field: spec, Reason: "empty property name"}
	}
	if err := ValidateName("property", name); err != nil {
		return Field{}, err
	}

	// "name:true" marks the field required and keeps the default type
	if len(parts) == 2 && typeToken == "true" {
		typeToken = ""
		requiredToken = "true"
	}

	schemaType := TypeString
	if typeToken != "" {
		t, ok := LookupSchemaType(typeToken)
		if !ok {
			return Field{}, &ValidationError{Field: name, Type: typeToken}
		}
		schemaType = t
	}

	field := Field{Name: name, Type: schemaType}
	if requiredToken != "" {
		field.RequiredSet = true
		field.Required = parseRequired(requiredToken)
	}
	return field, nil
}

// ValidateName rejects a name that cannot be used as a file name or inside
// a single-quoted JS string: empty, "." and "..", path separators, quotes,
// whitespace and non-printable characters.
func ValidateName(kind, name string) error {
	switch name {
	case "":
		return &ValidationError{Kind: kind, Field: name, Reason: "name is empty"}
	case ".", "..":
		return &ValidationError{Kind: kind, Field: name, Reason: "name is reserved"}
	}
	for _, r := range name {
		if unsafeNameRune(r) {
			return &ValidationError{Kind: kind, Field: name, Reason: fmt.Sprintf("name contains %q", r)}
		}
	}
	return nil
}

// ValidateController checks a controller name and its action names.
func ValidateController(name string, actions []string) error {
	if err := ValidateName("controller", name); err != nil {
		return err
	}
	for _, a := range actions {
		if err := ValidateName("action", a); err != nil {
			return err
		}
	}
	return nil
}

func unsafeNameRune(r rune) bool {
	switch r {
	case '/', '\\', '\'', '"', '`':
		return true
	}
	return unicode.IsSpace(r) || !unicode.IsPrint(r)
}

// LookupSchemaType matches s case-insensitively against the allowed types
// and returns the canonical spelling.
func LookupSchemaType(s string) (SchemaType, bool) {
	for _, t := range SchemaTypes {
		if strings.EqualFold(string(t), s) {
			return t, true
		}
	}
	return "", false
}

// parseRequired treats any non-boolean token such as "required" as true.
func parseRequired(token string) bool {
	if b, err := strconv.ParseBool(token); err == nil {
		return b
	}
	return true
}

func validTypeList() string {
	names := make([]string, len(SchemaTypes))
	for i, t := range SchemaTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// BuildModelSpec builds a ModelSpec from a model name and its property specs.
func BuildModelSpec(name string, propSpecs []string) (*ModelSpec, error) {
	if name == "" {
		return nil, fmt.Errorf("model name is required")
	}
	if err := ValidateName("model", name); err != nil {
		return nil, err
	}

	fields, err := ParseProperties(propSpecs)
	if err != nil {
		return nil, err
	}

	nameCap := Capitalize(name)
	return &ModelSpec{
		Name:       name,
		NameCap:    nameCap,
		SchemaName: nameCap + "Schema",
		Fields:     fields,
	}, nil
}

// BuildControllerSpec builds a ControllerSpec for name and its actions.
// In scaffold mode create, update and delete get no view.
func BuildControllerSpec(name string, actions []string, scaffold, skipViews bool) *ControllerSpec {
	plural := Pluralize(name)
	spec := &ControllerSpec{
		Name:     plural,
		FileName: ControllerFileName(plural),
		Scaffold: scaffold,
	}

	for _, a := range actions {
		action := Action{Name: a}
		if scaffold && IsMutatingAction(a) {
			action.Mutates = true
		} else if !skipViews {
			action.View = plural + "/" + a
		}
		spec.Actions = append(spec.Actions, action)
	}
	return spec
}

// ControllerFileName returns "<plural>_controller.js".
func ControllerFileName(plural string) string {
	return plural + "_controller.js"
}

// IsMutatingAction reports whether a scaffold action only has side effects
// and renders no view.
func IsMutatingAction(action string) bool {
	switch action {
	case "create", "update", "delete":
		return true
	}
	return false
}
