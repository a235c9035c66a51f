package schema

import (
	"encoding/json"

	"github.com/goliatone/go-headline/pkg/model"
	"github.com/goliatone/go-headline/pkg/widget"
)

// Document is the serialised descriptor a host consumes to build its
// editing UI.
type Document struct {
	Identity model.Identity    `json:"identity"`
	Sections []model.Section   `json:"sections,omitempty"`
	Fields   model.FieldSchema `json:"fields"`
}

// Describe captures a widget's descriptor.
func Describe(w widget.Widget) Document {
	doc := Document{
		Identity: w.Identity(),
		Fields:   w.Fields(),
	}
	if sectioned, ok := w.(widget.Sectioned); ok {
		doc.Sections = sectioned.Sections()
	}
	return doc
}

// MarshalIndent encodes the document as indented JSON.
func (d Document) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}
