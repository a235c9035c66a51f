package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-headline/pkg/headline"
	"github.com/goliatone/go-headline/pkg/model"
	"github.com/goliatone/go-headline/pkg/render"
	"github.com/goliatone/go-headline/pkg/renderers/preview"
	"github.com/goliatone/go-headline/pkg/schema"
	"github.com/goliatone/go-headline/pkg/settings"
	"github.com/goliatone/go-headline/pkg/widget"
)

const defaultRendererName = render.FragmentRendererName

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithWidgets injects the widget registry. The default registry holds the
// animated headline widget.
func WithWidgets(registry *widget.Registry) Option {
	return func(o *Orchestrator) {
		o.widgets = registry
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.renderers = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithDefaultWidget overrides the widget used when a request omits Widget.
func WithDefaultWidget(name string) Option {
	return func(o *Orchestrator) {
		o.defaultWidget = name
	}
}

// WithPreviewOptions configures the default preview renderer. Ignored when a
// renderer registry is injected.
func WithPreviewOptions(options ...preview.Option) Option {
	return func(o *Orchestrator) {
		o.previewOptions = append(o.previewOptions, options...)
	}
}

// WithStrictSettings validates raw settings against the widget's OpenAPI
// schema before resolution. Resolution alone tolerates wrong shapes.
func WithStrictSettings(strict bool) Option {
	return func(o *Orchestrator) {
		o.strict = strict
	}
}

// WithTransformer registers a Transformer that rewrites raw settings before
// validation and resolution.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// Transformer mutates raw settings before they are resolved.
type Transformer interface {
	Transform(ctx context.Context, widgetName string, raw map[string]any) (map[string]any, error)
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, widgetName string, raw map[string]any) (map[string]any, error)

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, widgetName string, raw map[string]any) (map[string]any, error) {
	if fn == nil {
		return raw, nil
	}
	return fn(ctx, widgetName, raw)
}

// Orchestrator coordinates the pipeline from stored settings to rendered
// output. It applies defaults (animated headline widget, fragment and preview
// renderers) while remaining open to dependency injection.
type Orchestrator struct {
	widgets         *widget.Registry
	renderers       *render.Registry
	defaultRenderer string
	defaultWidget   string
	previewOptions  []preview.Option
	strict          bool
	transformer     Transformer
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		defaultWidget:   headline.WidgetName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one render of a widget.
type Request struct {
	// Widget names the registered widget. Falls back to the default widget.
	Widget string

	// Settings holds the raw stored values (decoded JSON or YAML). Missing
	// keys take the schema defaults.
	Settings map[string]any

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request page options such as locale and theme.
	RenderOptions render.RenderOptions
}

// Generate executes widget lookup → validation → resolution → render and
// returns the rendered bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	w, err := o.widgetFor(req.Widget)
	if err != nil {
		return nil, err
	}

	resolved, err := o.Resolve(ctx, w, req.Settings)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, w, resolved, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Resolve runs the transformer, optional strict validation and default
// resolution for w.
func (o *Orchestrator) Resolve(ctx context.Context, w widget.Widget, raw map[string]any) (model.Settings, error) {
	if w == nil {
		return nil, errors.New("orchestrator: widget is required")
	}
	name := w.Identity().Name

	if o.transformer != nil {
		transformed, err := o.transformer.Transform(ctx, name, raw)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: transform settings: %w", err)
		}
		raw = transformed
	}

	fields := w.Fields()
	if o.strict {
		if err := schema.Validate(fields, raw); err != nil {
			return nil, fmt.Errorf("orchestrator: widget %q: %w", name, err)
		}
	}
	return settings.Resolve(fields, raw), nil
}

// Widgets exposes the widget registry.
func (o *Orchestrator) Widgets() *widget.Registry {
	return o.widgets
}

// Renderers exposes the renderer registry.
func (o *Orchestrator) Renderers() *render.Registry {
	return o.renderers
}

func (o *Orchestrator) widgetFor(name string) (widget.Widget, error) {
	if o.widgets == nil {
		return nil, errors.New("orchestrator: widget registry is nil")
	}
	target := name
	if target == "" {
		target = o.defaultWidget
	}
	w, err := o.widgets.Get(target)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return w, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.renderers == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.renderers.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.renderers.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.renderers.Get(names[0])
}

func (o *Orchestrator) applyDefaults() {
	if o.widgets == nil {
		o.widgets = widget.NewRegistry()
		if err := o.widgets.Register(headline.New()); err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default widget: %w", err)
			return
		}
	}
	if o.renderers == nil {
		o.renderers = render.NewRegistry()
		o.renderers.MustRegister(render.FragmentRenderer{})
		page, err := preview.New(o.previewOptions...)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default preview renderer: %w", err)
			return
		}
		o.renderers.MustRegister(page)
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
