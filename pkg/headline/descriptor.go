package headline

import (
	"github.com/goliatone/go-headline/pkg/i18n"
	"github.com/goliatone/go-headline/pkg/model"
)

// TextDomain scopes every label and default handed to the lookup.
const TextDomain = "animated-headline-elementor"

// Widget identity constants.
const (
	WidgetName = "animated-headline"
	WidgetIcon = "eicon-animated-headline"
	HelpURL    = "https://developers.elementor.com/docs/widgets/"
)

// Field keys.
const (
	FieldBeforeTitle = "before_title"
	FieldAfterTitle  = "after_title"
	FieldList        = "list"
	ItemFieldTitle   = "title"

	SectionContent = "content_section"
)

// Descriptor declares the widget identity and its editable fields. It holds
// no mutable state and is safe for concurrent use.
type Descriptor struct {
	lookup i18n.Lookup
}

// NewDescriptor builds a descriptor that localizes labels through lookup.
// A nil lookup returns the literal source strings.
func NewDescriptor(lookup i18n.Lookup) Descriptor {
	return Descriptor{lookup: i18n.Resolve(lookup)}
}

func (d Descriptor) t(source string) string {
	return i18n.Resolve(d.lookup)(source, TextDomain)
}

// Identity returns the registry metadata for the widget.
func (d Descriptor) Identity() model.Identity {
	return model.Identity{
		Name:       WidgetName,
		Title:      d.t("Animated Headline"),
		Icon:       WidgetIcon,
		HelpURL:    HelpURL,
		Categories: []string{"general"},
		Keywords:   []string{"animated", "headline", "clip", "slide", "zoom", "push"},
	}
}

// Sections returns the editing sections referenced by Fields.
func (d Descriptor) Sections() []model.Section {
	return []model.Section{
		{ID: SectionContent, Label: d.t("Content"), Tab: model.TabContent},
	}
}

// Fields returns the editable schema. A fresh slice is returned on every
// call so hosts may decorate it without affecting other callers.
func (d Descriptor) Fields() model.FieldSchema {
	before := d.t("Before Title")
	after := d.t("After Title")
	designer := d.t("Designer")

	return model.FieldSchema{
		{
			Kind:        model.FieldKindText,
			Key:         FieldBeforeTitle,
			Label:       before,
			Section:     SectionContent,
			Default:     before,
			Placeholder: before,
		},
		{
			Kind:        model.FieldKindText,
			Key:         FieldAfterTitle,
			Label:       after,
			Section:     SectionContent,
			Default:     after,
			Placeholder: after,
		},
		{
			Kind:    model.FieldKindRepeater,
			Key:     FieldList,
			Label:   d.t("Clip List"),
			Section: SectionContent,
			ItemFields: []model.Field{
				{
					Kind:    model.FieldKindText,
					Key:     ItemFieldTitle,
					Label:   d.t("Title"),
					Default: designer,
				},
			},
			DefaultItems:  []model.Item{{ItemFieldTitle: designer}},
			TitleTemplate: "{{{ " + ItemFieldTitle + " }}}",
		},
	}
}
