package model

// FieldKind discriminates the field descriptor variants.
type FieldKind string

const (
	FieldKindText     FieldKind = "text"
	FieldKindRepeater FieldKind = "repeater"
)

// TabContent is the editing tab holding content sections.
const TabContent = "content"

// Identity describes a widget to the host registry. Values are fixed for the
// lifetime of the process.
type Identity struct {
	Name       string   `json:"name" yaml:"name"`
	Title      string   `json:"title" yaml:"title"`
	Icon       string   `json:"icon" yaml:"icon"`
	HelpURL    string   `json:"helpUrl,omitempty" yaml:"helpUrl,omitempty"`
	Categories []string `json:"categories" yaml:"categories"`
	Keywords   []string `json:"keywords" yaml:"keywords"`
}

// Section groups fields inside an editing tab.
type Section struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Tab   string `json:"tab" yaml:"tab"`
}

// Item is one repeater row keyed by item field key.
type Item map[string]string

// Field is a single entry of a FieldSchema. Text fields use Default and
// Placeholder; repeater fields use ItemFields, DefaultItems and
// TitleTemplate.
type Field struct {
	Kind          FieldKind `json:"kind" yaml:"kind"`
	Key           string    `json:"key" yaml:"key"`
	Label         string    `json:"label" yaml:"label"`
	Section       string    `json:"section,omitempty" yaml:"section,omitempty"`
	Default       string    `json:"default,omitempty" yaml:"default,omitempty"`
	Placeholder   string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	ItemFields    []Field   `json:"itemFields,omitempty" yaml:"itemFields,omitempty"`
	DefaultItems  []Item    `json:"defaultItems,omitempty" yaml:"defaultItems,omitempty"`
	TitleTemplate string    `json:"titleTemplate,omitempty" yaml:"titleTemplate,omitempty"`
}

// IsRepeater reports whether the field holds an ordered list of items.
func (f Field) IsRepeater() bool {
	return f.Kind == FieldKindRepeater
}

// Markup is the output of one render call.
type Markup string

// String returns the markup as a plain string.
func (m Markup) String() string {
	return string(m)
}
