package headline_test

import (
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/goliatone/go-headline/pkg/headline"
	"github.com/goliatone/go-headline/pkg/model"
	"github.com/goliatone/go-headline/pkg/testsupport"
)

func TestProjector_ScenarioAGolden(t *testing.T) {
	cases := []struct {
		name    string
		golden  string
		options []headline.Option
	}{
		{name: "first word visible", golden: "scenario_a.golden"},
		{name: "legacy visibility", golden: "scenario_a_legacy.golden", options: []headline.Option{headline.WithLegacyVisibility()}},
	}

	settings := testsupport.MustLoadSettings(t, filepath.Join("testdata", "scenario_a.json"))

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := headline.NewProjector(tc.options...).Render(settings).String()

			path := filepath.Join("testdata", tc.golden)
			if testsupport.WriteMaybeGolden(t, path, []byte(got)) {
				return
			}
			want := testsupport.MustReadGoldenString(t, path)
			if diff := testsupport.CompareGolden(want, got); diff != "" {
				t.Fatalf("markup mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProjector_IsPure(t *testing.T) {
	settings := model.Settings{
		headline.FieldBeforeTitle: "Hello",
		headline.FieldAfterTitle:  "World",
		headline.FieldList:        []any{map[string]any{"title": "A"}},
	}
	projector := headline.NewProjector()

	first := projector.Render(settings)
	second := projector.Render(settings)
	if first != second {
		t.Fatalf("render is not deterministic:\n%s\n%s", first, second)
	}
	if settings[headline.FieldBeforeTitle] != "Hello" {
		t.Fatalf("render mutated its input")
	}
}

func TestProjector_EmptyListKeepsWrapper(t *testing.T) {
	out := headline.NewProjector().Render(model.Settings{
		headline.FieldBeforeTitle: "Before",
		headline.FieldAfterTitle:  "After",
		headline.FieldList:        []any{},
	})

	doc := parseFragment(t, out.String())
	if doc.wrapper == nil {
		t.Fatalf("words wrapper missing from %s", out)
	}
	if len(doc.words) != 0 {
		t.Fatalf("expected no words, got %v", doc.words)
	}
	if !strings.Contains(out.String(), `<span class="cd-words-wrapper"></span>`) {
		t.Fatalf("expected empty wrapper element, got %s", out)
	}
}

func TestProjector_MissingValuesRenderEmpty(t *testing.T) {
	out := headline.NewProjector().Render(nil)

	doc := parseFragment(t, out.String())
	if doc.before != "" || doc.after != "" {
		t.Fatalf("expected empty before/after, got %q/%q", doc.before, doc.after)
	}
	if doc.wrapper == nil {
		t.Fatalf("wrapper must be present for nil settings")
	}
}

func TestProjector_EscapesEveryDynamicString(t *testing.T) {
	before := `<script>alert("x")</script>`
	after := `Tom & Jerry's`
	titles := []string{"A & B", `"quoted"`, "<b>bold</b>", "plain"}

	items := make([]any, 0, len(titles))
	for _, title := range titles {
		items = append(items, map[string]any{"title": title})
	}

	out := headline.NewProjector().Render(model.Settings{
		headline.FieldBeforeTitle: before,
		headline.FieldAfterTitle:  after,
		headline.FieldList:        items,
	}).String()

	if !strings.Contains(out, "A &amp; B") {
		t.Fatalf("expected escaped ampersand in %s", out)
	}
	if strings.Contains(out, "A & B") || strings.Contains(out, "<script>") || strings.Contains(out, "<b>bold") {
		t.Fatalf("raw markup leaked into output: %s", out)
	}
	if !strings.Contains(out, "Tom &amp; Jerry&#039;s") {
		t.Fatalf("expected attribute-style escaping of after title, got %s", out)
	}

	doc := parseFragment(t, out)
	if doc.before != before {
		t.Fatalf("before round-trip: want %q, got %q", before, doc.before)
	}
	if doc.after != after {
		t.Fatalf("after round-trip: want %q, got %q", after, doc.after)
	}
	if diff := testsupport.CompareGolden(titles, doc.words); diff != "" {
		t.Fatalf("word order/content mismatch (-want +got):\n%s", diff)
	}
}

func TestProjector_OneLeafPerItemInOrder(t *testing.T) {
	titles := []string{"one", "two", "three", "four", "five"}
	items := make([]model.Item, 0, len(titles))
	for _, title := range titles {
		items = append(items, model.Item{headline.ItemFieldTitle: title})
	}

	cases := []struct {
		name    string
		index   int
		options []headline.Option
	}{
		{name: "default", index: 0},
		{name: "legacy", index: 1, options: []headline.Option{headline.WithLegacyVisibility()}},
		{name: "custom", index: 3, options: []headline.Option{headline.WithVisibleIndex(3)}},
		{name: "none", index: -1, options: []headline.Option{headline.WithVisibleIndex(-1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := headline.NewProjector(tc.options...).Render(model.Settings{headline.FieldList: items})
			doc := parseFragment(t, out.String())

			if diff := testsupport.CompareGolden(titles, doc.words); diff != "" {
				t.Fatalf("words mismatch (-want +got):\n%s", diff)
			}
			for idx, class := range doc.classes {
				want := headline.ClassHidden
				if idx == tc.index {
					want = headline.ClassVisible
				}
				if class != want {
					t.Fatalf("word %d: want class %q, got %q", idx, want, class)
				}
			}
		})
	}
}

type fragment struct {
	before  string
	after   string
	wrapper *html.Node
	words   []string
	classes []string
}

// parseFragment walks the rendered markup and extracts the unescaped text of
// the fixed leaves.
func parseFragment(t *testing.T, markup string) fragment {
	t.Helper()

	nodes, err := html.ParseFragment(strings.NewReader(markup), &html.Node{Type: html.ElementNode, Data: "div"})
	if err != nil {
		t.Fatalf("parse markup: %v", err)
	}
	if len(nodes) != 1 || nodes[0].Data != "section" || attr(nodes[0], "class") != headline.ClassIntro {
		t.Fatalf("expected a single cd-intro section, got %s", markup)
	}

	h1 := nodes[0].FirstChild
	if h1 == nil || h1.Data != "h1" || attr(h1, "class") != headline.ClassHeadline {
		t.Fatalf("expected cd-headline heading, got %s", markup)
	}

	var spans []*html.Node
	for child := h1.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && child.Data == "span" {
			spans = append(spans, child)
		}
	}
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans inside heading, got %d in %s", len(spans), markup)
	}

	out := fragment{
		before:  text(spans[0]),
		after:   text(spans[2]),
		wrapper: spans[1],
	}
	if attr(out.wrapper, "class") != headline.ClassWordsWrapper {
		t.Fatalf("middle span is not the words wrapper: %s", markup)
	}
	for child := out.wrapper.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode || child.Data != "b" {
			continue
		}
		out.words = append(out.words, text(child))
		out.classes = append(out.classes, attr(child, "class"))
	}
	return out
}

func attr(node *html.Node, name string) string {
	for _, a := range node.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func text(node *html.Node) string {
	var b strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.TextNode {
			b.WriteString(child.Data)
		}
	}
	return b.String()
}
