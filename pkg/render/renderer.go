package render

import (
	"context"

	"github.com/goliatone/go-headline/pkg/model"
	"github.com/goliatone/go-headline/pkg/widget"
)

// Renderer converts a widget and its resolved settings into bytes (an HTML
// fragment, a preview page, a JSON snapshot).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, w widget.Widget, settings model.Settings, options RenderOptions) ([]byte, error)
}

// FragmentRendererName identifies the built-in fragment renderer.
const FragmentRendererName = "fragment"

// FragmentRenderer returns the widget markup unchanged.
type FragmentRenderer struct{}

// Name implements Renderer.
func (FragmentRenderer) Name() string {
	return FragmentRendererName
}

// ContentType implements Renderer.
func (FragmentRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render implements Renderer.
func (FragmentRenderer) Render(ctx context.Context, w widget.Widget, settings model.Settings, _ RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if w == nil {
		return nil, errWidgetRequired
	}
	return []byte(w.Render(settings)), nil
}
