package widget

import (
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-headline/pkg/model"
)

var (
	iconPolicyOnce sync.Once
	iconPolicy     *bluemonday.Policy
)

// Entry describes a registered widget for a host's widget panel.
type Entry struct {
	model.Identity
	Sections   []model.Section `json:"sections,omitempty"`
	IconMarkup string          `json:"iconMarkup,omitempty"`
	FieldCount int             `json:"fieldCount"`
}

// CatalogOption customises Catalog output.
type CatalogOption func(*catalogConfig)

type catalogConfig struct {
	icons map[string]string
}

// WithIconMarkup supplies inline SVG icons keyed by widget name. Markup is
// sanitized before it reaches the catalog.
func WithIconMarkup(icons map[string]string) CatalogOption {
	return func(cfg *catalogConfig) {
		if len(icons) == 0 {
			return
		}
		if cfg.icons == nil {
			cfg.icons = make(map[string]string, len(icons))
		}
		for name, markup := range icons {
			cfg.icons[strings.TrimSpace(name)] = markup
		}
	}
}

// LoadIconMarkup reads a YAML (or JSON) document mapping widget names to
// inline SVG markup, for use with WithIconMarkup.
func LoadIconMarkup(fsys fs.FS, path string) (map[string]string, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("widget: read icons %s: %w", path, err)
	}
	icons := map[string]string{}
	if err := yaml.Unmarshal(data, &icons); err != nil {
		return nil, fmt.Errorf("widget: decode icons %s: %w", path, err)
	}
	return icons, nil
}

// Catalog returns one entry per registered widget, sorted by name.
func Catalog(r *Registry, options ...CatalogOption) []Entry {
	if r == nil {
		return nil
	}
	cfg := catalogConfig{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	names := r.List()
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		w, err := r.Get(name)
		if err != nil {
			continue
		}
		entry := Entry{
			Identity:   w.Identity(),
			FieldCount: len(w.Fields()),
			IconMarkup: sanitizeIconMarkup(cfg.icons[name]),
		}
		if sectioned, ok := w.(Sectioned); ok {
			entry.Sections = sectioned.Sections()
		}
		entries = append(entries, entry)
	}
	return entries
}

func sanitizeIconMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(iconSanitizer().Sanitize(trimmed))
}

func iconSanitizer() *bluemonday.Policy {
	iconPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("svg", "g", "path", "circle", "rect", "line", "polyline", "polygon", "title")

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "aria-hidden", "role", "focusable", "class",
		).OnElements("svg")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "fill", "stroke", "stroke-width", "class",
			).OnElements(el)
		}
		policy.AllowAttrs("class").OnElements("g")

		iconPolicy = policy
	})
	return iconPolicy
}
