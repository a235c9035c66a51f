package widget

import "github.com/goliatone/go-headline/pkg/model"

// Widget is the capability a host needs to list, edit and render a content
// block. Implementations must be safe for concurrent use; Render must not
// retain or mutate the settings it receives.
type Widget interface {
	Identity() model.Identity
	Fields() model.FieldSchema
	Render(settings model.Settings) model.Markup
}

// Sectioned is implemented by widgets that group their fields into editing
// sections.
type Sectioned interface {
	Sections() []model.Section
}
