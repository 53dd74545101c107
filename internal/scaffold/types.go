// Package scaffold provides the pure building blocks of code generation:
// pluralization, name helpers, model property parsing and template rendering.
package scaffold

// SchemaType is an allowed model property type.
type SchemaType string

// Allowed property types, in their canonical spelling.
const (
	TypeString   SchemaType = "String"
	TypeNumber   SchemaType = "Number"
	TypeDate     SchemaType = "Date"
	TypeBuffer   SchemaType = "Buffer"
	TypeBoolean  SchemaType = "Boolean"
	TypeMixed    SchemaType = "Mixed"
	TypeObjectID SchemaType = "ObjectId"
	TypeArray    SchemaType = "Array"
)

// SchemaTypes lists every allowed property type.
var SchemaTypes = []SchemaType{
	TypeString, TypeNumber, TypeDate, TypeBuffer,
	TypeBoolean, TypeMixed, TypeObjectID, TypeArray,
}

// ScaffoldActions is the fixed action set of a scaffolded controller.
var ScaffoldActions = []string{"index", "show", "new", "edit", "create", "update", "delete"}

// ModelSpec contains all information needed to render a model.
type ModelSpec struct {
	Name       string  // as given: "post"
	NameCap    string  // capitalized: "Post"
	SchemaName string  // "PostSchema"
	Fields     []Field // in command-line order
}

// Field represents one model property.
type Field struct {
	Name        string
	Type        SchemaType
	Required    bool
	RequiredSet bool // a required token was given
}

// ControllerSpec contains all information needed to render a controller.
type ControllerSpec struct {
	Name     string   // pluralized: "posts"
	FileName string   // "posts_controller.js"
	Actions  []Action // one stub per action
	Scaffold bool
}

// Action is a single controller action.
type Action struct {
	Name    string
	View    string // view rendered by the action, empty when none
	Mutates bool   // create/update/delete in scaffold mode
}

// ViewSpec contains the data for a default view template.
type ViewSpec struct {
	Path   string // path shown in the view body
	Layout string // layout file name: "application.pug"
}

// AppSpec is the template context for static project files.
type AppSpec struct {
	AppName     string
	SkipViews   bool
	Views       string
	Stylesheets string
	Javascripts string
}
