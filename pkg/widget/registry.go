package widget

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrNotFound is returned when no widget is registered under a name.
	ErrNotFound = errors.New("widget: not found")
	// ErrDuplicate is returned when a name is registered twice.
	ErrDuplicate = errors.New("widget: already registered")
)

// Registry stores widgets by Identity().Name, providing discovery and
// duplication safeguards.
type Registry struct {
	mu      sync.RWMutex
	widgets map[string]Widget
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		widgets: make(map[string]Widget),
	}
}

// Register adds a widget. The name must be non-empty and unique and the
// field schema must validate.
func (r *Registry) Register(w Widget) error {
	if w == nil {
		return errors.New("widget: widget is required")
	}
	name := strings.TrimSpace(w.Identity().Name)
	if name == "" {
		return errors.New("widget: widget name is required")
	}
	if err := w.Fields().Validate(); err != nil {
		return fmt.Errorf("widget: %q: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.widgets[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	r.widgets[name] = w
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(w Widget) {
	if err := r.Register(w); err != nil {
		panic(err)
	}
}

// Get retrieves a widget by name.
func (r *Registry) Get(name string) (Widget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.widgets[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return w, nil
}

// Has reports whether a widget is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.widgets[strings.TrimSpace(name)]
	return ok
}

// List returns a sorted list of widget names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.widgets))
	for name := range r.widgets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Search returns the names of widgets whose name, title, keywords or
// categories contain query, case-insensitively. An empty query lists all.
func (r *Registry) Search(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return r.List()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for name, w := range r.widgets {
		if matches(w, query) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func matches(w Widget, query string) bool {
	id := w.Identity()
	candidates := make([]string, 0, 2+len(id.Keywords)+len(id.Categories))
	candidates = append(candidates, id.Name, id.Title)
	candidates = append(candidates, id.Keywords...)
	candidates = append(candidates, id.Categories...)
	for _, candidate := range candidates {
		if strings.Contains(strings.ToLower(candidate), query) {
			return true
		}
	}
	return false
}
