package headline

import (
	"context"

	animated "github.com/goliatone/go-headline/pkg/headline"
	"github.com/goliatone/go-headline/pkg/orchestrator"
	"github.com/goliatone/go-headline/pkg/render"
	"github.com/goliatone/go-headline/pkg/renderers/preview"
	theme "github.com/goliatone/go-theme"
)

// RenderOptions describes per-request page overrides (locale, title, theme).
type RenderOptions = render.RenderOptions

// Request aliases orchestrator.Request for callers of the top-level module.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// RenderFragment resolves raw settings for the animated headline widget and
// returns its HTML fragment. It is the simplest entry point for callers that
// just want markup.
func RenderFragment(ctx context.Context, settings map[string]any, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Widget:   animated.WidgetName,
		Settings: settings,
		Renderer: render.FragmentRendererName,
	})
}

// RenderPreview renders a standalone preview page for the animated headline
// widget.
func RenderPreview(ctx context.Context, settings map[string]any, opts RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Widget:        animated.WidgetName,
		Settings:      settings,
		Renderer:      preview.RendererName,
		RenderOptions: opts,
	})
}

// WithThemeSelector configures the default preview renderer with a go-theme
// selector so stylesheet and script URLs follow the chosen theme.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithPreviewOptions(preview.WithThemeSelector(selector))
}

// WithStrictSettings forwards to orchestrator.WithStrictSettings.
func WithStrictSettings(strict bool) orchestrator.Option {
	return orchestrator.WithStrictSettings(strict)
}
