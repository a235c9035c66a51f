package headline

import (
	"strings"

	"github.com/goliatone/go-headline/pkg/model"
)

// Class names shared with the external animation stylesheet and script.
const (
	ClassIntro        = "cd-intro"
	ClassHeadline     = "cd-headline clip is-full-width"
	ClassWordsWrapper = "cd-words-wrapper"
	ClassVisible      = "is-visible"
	ClassHidden       = "is-hidden"
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeAttr escapes s for use inside an attribute value. The projector
// applies it to text content as well so every dynamic string is treated the
// same way.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// Projector turns resolved settings into headline markup.
type Projector struct {
	visibleIndex int
}

// NewProjector constructs a projector. Only visibility options apply.
func NewProjector(options ...Option) Projector {
	cfg := defaultConfig()
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return Projector{visibleIndex: cfg.visibleIndex}
}

// VisibleIndex reports the word position that receives is-visible.
func (p Projector) VisibleIndex() int {
	return p.visibleIndex
}

// Render emits the headline fragment. It never fails: absent values render
// as empty strings and an empty list still emits the words wrapper.
func (p Projector) Render(settings model.Settings) model.Markup {
	before := EscapeAttr(settings.String(FieldBeforeTitle))
	after := EscapeAttr(settings.String(FieldAfterTitle))
	items := settings.Items(FieldList)

	var b strings.Builder
	b.Grow(160 + len(before) + len(after) + len(items)*40)

	b.WriteString(`<section class="` + ClassIntro + `">`)
	b.WriteString(`<h1 class="` + ClassHeadline + `">`)
	b.WriteString("<span>")
	b.WriteString(before)
	b.WriteString("</span>")
	b.WriteString(`<span class="` + ClassWordsWrapper + `">`)
	for idx, item := range items {
		b.WriteString(`<b class="`)
		b.WriteString(p.wordClass(idx))
		b.WriteString(`">`)
		b.WriteString(EscapeAttr(item.String(ItemFieldTitle)))
		b.WriteString("</b>")
	}
	b.WriteString("</span>")
	b.WriteString("<span>")
	b.WriteString(after)
	b.WriteString("</span>")
	b.WriteString("</h1>")
	b.WriteString("</section>")

	return model.Markup(b.String())
}

func (p Projector) wordClass(idx int) string {
	if idx == p.visibleIndex {
		return ClassVisible
	}
	return ClassHidden
}
