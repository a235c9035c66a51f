package headline_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-headline/pkg/headline"
	"github.com/goliatone/go-headline/pkg/i18n"
	"github.com/goliatone/go-headline/pkg/model"
)

func TestDescriptor_Identity(t *testing.T) {
	got := headline.NewDescriptor(nil).Identity()
	want := model.Identity{
		Name:       "animated-headline",
		Title:      "Animated Headline",
		Icon:       "eicon-animated-headline",
		HelpURL:    headline.HelpURL,
		Categories: []string{"general"},
		Keywords:   []string{"animated", "headline", "clip", "slide", "zoom", "push"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("identity mismatch (-want +got):\n%s", diff)
	}
}

func TestDescriptor_DefaultSchema(t *testing.T) {
	fields := headline.NewDescriptor(i18n.Identity).Fields()

	if err := fields.Validate(); err != nil {
		t.Fatalf("descriptor schema invalid: %v", err)
	}

	want := model.FieldSchema{
		{Kind: model.FieldKindText, Key: "before_title", Label: "Before Title", Section: "content_section", Default: "Before Title", Placeholder: "Before Title"},
		{Kind: model.FieldKindText, Key: "after_title", Label: "After Title", Section: "content_section", Default: "After Title", Placeholder: "After Title"},
		{
			Kind:    model.FieldKindRepeater,
			Key:     "list",
			Label:   "Clip List",
			Section: "content_section",
			ItemFields: []model.Field{
				{Kind: model.FieldKindText, Key: "title", Label: "Title", Default: "Designer"},
			},
			DefaultItems:  []model.Item{{"title": "Designer"}},
			TitleTemplate: "{{{ title }}}",
		},
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}

	repeaters := fields.Repeaters()
	if len(repeaters) != 1 || len(repeaters[0].DefaultItems) != 1 || repeaters[0].DefaultItems[0]["title"] != "Designer" {
		t.Fatalf("expected exactly one repeater seeded with Designer, got %+v", repeaters)
	}
}

func TestDescriptor_FieldsReturnsFreshCopies(t *testing.T) {
	d := headline.NewDescriptor(nil)
	first := d.Fields()
	first[0].Label = "mutated"
	first[2].DefaultItems[0]["title"] = "mutated"

	second := d.Fields()
	if second[0].Label != "Before Title" || second[2].DefaultItems[0]["title"] != "Designer" {
		t.Fatalf("fields shared state between calls: %+v", second)
	}
}

func TestDescriptor_LocalizesThroughLookup(t *testing.T) {
	var domains []string
	lookup := func(source, domain string) string {
		domains = append(domains, domain)
		if source == "Designer" {
			return "Diseñador"
		}
		return source
	}

	w := headline.New(headline.WithLookup(lookup))
	fields := w.Fields()
	list, _ := fields.Lookup(headline.FieldList)
	if list.DefaultItems[0][headline.ItemFieldTitle] != "Diseñador" || list.ItemFields[0].Default != "Diseñador" {
		t.Fatalf("expected localized repeater defaults, got %+v", list)
	}
	for _, domain := range domains {
		if domain != "animated-headline-elementor" {
			t.Fatalf("lookup called with unexpected domain %q", domain)
		}
	}

	sections := w.Sections()
	if len(sections) != 1 || sections[0].ID != headline.SectionContent || sections[0].Tab != model.TabContent {
		t.Fatalf("unexpected sections %+v", sections)
	}
}

func TestWidget_RenderUsesProjectorOptions(t *testing.T) {
	w := headline.New(headline.WithLegacyVisibility())
	if w.Projector().VisibleIndex() != headline.LegacyVisibleIndex {
		t.Fatalf("legacy option not applied")
	}
	out := w.Render(model.Settings{headline.FieldList: []model.Item{{"title": "a"}}})
	if got := out.String(); got == "" {
		t.Fatalf("expected markup")
	}
}
