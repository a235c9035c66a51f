package headline

import (
	"github.com/goliatone/go-headline/pkg/model"
	"github.com/goliatone/go-headline/pkg/widget"
)

// Widget composes the descriptor and projector into a registrable widget.
type Widget struct {
	Descriptor
	projector Projector
}

var (
	_ widget.Widget    = (*Widget)(nil)
	_ widget.Sectioned = (*Widget)(nil)
)

// New constructs the animated headline widget.
func New(options ...Option) *Widget {
	cfg := defaultConfig()
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Widget{
		Descriptor: NewDescriptor(cfg.lookup),
		projector:  Projector{visibleIndex: cfg.visibleIndex},
	}
}

// Render projects settings into markup.
func (w *Widget) Render(settings model.Settings) model.Markup {
	return w.projector.Render(settings)
}

// Projector exposes the configured projector.
func (w *Widget) Projector() Projector {
	return w.projector
}
