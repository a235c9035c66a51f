package headline

import "github.com/goliatone/go-headline/pkg/i18n"

const (
	// DefaultVisibleIndex marks the first word as the one shown on load.
	DefaultVisibleIndex = 0
	// LegacyVisibleIndex matches markup produced by the original widget,
	// where the second word carried is-visible.
	LegacyVisibleIndex = 1
)

// Option customises a Widget or Projector.
type Option func(*config)

type config struct {
	lookup       i18n.Lookup
	visibleIndex int
}

func defaultConfig() config {
	return config{
		lookup:       i18n.Identity,
		visibleIndex: DefaultVisibleIndex,
	}
}

// WithLookup injects the label lookup used by the descriptor.
func WithLookup(lookup i18n.Lookup) Option {
	return func(cfg *config) {
		if lookup != nil {
			cfg.lookup = lookup
		}
	}
}

// WithVisibleIndex selects which word (zero-based) receives is-visible. A
// negative index marks every word hidden.
func WithVisibleIndex(index int) Option {
	return func(cfg *config) {
		cfg.visibleIndex = index
	}
}

// WithLegacyVisibility marks the second word visible, matching the word the
// legacy widget highlights. Whitespace and entity handling still follow the
// projector, so the markup is not byte-identical to the legacy output.
func WithLegacyVisibility() Option {
	return WithVisibleIndex(LegacyVisibleIndex)
}
