package preview

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-headline/pkg/model"
	"github.com/goliatone/go-headline/pkg/render"
	rendertemplate "github.com/goliatone/go-headline/pkg/render/template"
	gotemplate "github.com/goliatone/go-headline/pkg/render/template/gotemplate"
	"github.com/goliatone/go-headline/pkg/widget"
)

const (
	// RendererName identifies the preview renderer inside a render.Registry.
	RendererName = "preview"

	templateName = "templates/page.tmpl"

	defaultStylesheet = "css/animated-headline.css"
	defaultScript     = "js/animated-headline.js"
	defaultLang       = "en"
	defaultGenerator  = "go-headline"
)

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templatesDir     string
	globals          map[string]any
	templateRenderer rendertemplate.TemplateRenderer
	selector         theme.ThemeSelector
	assets           AssetPaths
	assetURLPrefix   string
}

// AssetPaths are the external animation assets linked from the page when no
// theme overrides them.
type AssetPaths struct {
	Stylesheet string
	Script     string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
			cfg.templatesDir = ""
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templatesDir = path
		cfg.templateFS = os.DirFS(path)
	}
}

// WithGlobals exposes values to every page render. Request data wins over
// globals with the same key.
func WithGlobals(values map[string]any) Option {
	return func(cfg *config) {
		for key, value := range values {
			cfg.globals[key] = value
		}
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithThemeSelector resolves theme tokens and asset URLs per request.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(cfg *config) {
		cfg.selector = selector
	}
}

// WithAssetPaths overrides the default asset paths. Empty fields keep the
// defaults.
func WithAssetPaths(paths AssetPaths) Option {
	return func(cfg *config) {
		if paths.Stylesheet != "" {
			cfg.assets.Stylesheet = paths.Stylesheet
		}
		if paths.Script != "" {
			cfg.assets.Script = paths.Script
		}
	}
}

// WithAssetURLPrefix prefixes default asset paths (e.g. "/static/headline").
func WithAssetURLPrefix(prefix string) Option {
	return func(cfg *config) {
		cfg.assetURLPrefix = prefix
	}
}

// Renderer wraps a widget's markup in a standalone HTML page that links the
// external animation stylesheet and script.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	selector  theme.ThemeSelector
	defaults  theme.Selection
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a preview renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		globals:    map[string]any{"generator": defaultGenerator},
		assets: AssetPaths{
			Stylesheet: defaultStylesheet,
			Script:     defaultScript,
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	templates := cfg.templateRenderer
	if templates == nil {
		if _, err := fs.Stat(cfg.templateFS, templateName); err != nil {
			return nil, fmt.Errorf("preview renderer: template %q not found: %w", templateName, err)
		}
		source := gotemplate.WithFS(cfg.templateFS)
		if cfg.templatesDir != "" {
			source = gotemplate.WithBaseDir(cfg.templatesDir)
		}
		engine, err := gotemplate.New(
			source,
			gotemplate.WithExtension(".tmpl"),
			gotemplate.WithGlobalData(cfg.globals),
		)
		if err != nil {
			return nil, fmt.Errorf("preview renderer: configure template renderer: %w", err)
		}
		templates = engine
	}

	return &Renderer{
		templates: templates,
		selector:  cfg.selector,
		defaults:  defaultAssets(cfg.assetURLPrefix, cfg.assets),
	}, nil
}

// Name implements render.Renderer.
func (r *Renderer) Name() string {
	return RendererName
}

// ContentType implements render.Renderer.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render implements render.Renderer.
func (r *Renderer) Render(ctx context.Context, w widget.Widget, settings model.Settings, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if w == nil {
		return nil, errors.New("preview renderer: widget is required")
	}
	if r.templates == nil {
		return nil, errors.New("preview renderer: template renderer is nil")
	}

	themeCfg, err := r.selectTheme(options)
	if err != nil {
		return nil, err
	}
	themeCtx := buildThemeContext(themeCfg)
	assetURL := themeAssetResolver(themeCfg)

	identity := w.Identity()
	title := strings.TrimSpace(options.Title)
	if title == "" {
		title = identity.Title
	}
	lang := strings.TrimSpace(options.Locale)
	if lang == "" {
		lang = defaultLang
	}

	page := templateName
	if tpl := themeCtx.Partials[ThemeTemplatePage]; tpl != "" {
		page = tpl
	}

	data := map[string]any{
		"lang":   lang,
		"title":  title,
		"widget": identity.Name,
		"markup": w.Render(settings).String(),
		"assets": map[string]any{
			"stylesheet": r.assetURL(assetURL, ThemeAssetStylesheet),
			"script":     r.assetURL(assetURL, ThemeAssetScript),
		},
		"theme": map[string]any{
			"name":           themeCtx.Name,
			"variant":        themeCtx.Variant,
			"tokens":         themeCtx.Tokens,
			"css_vars_style": themeCtx.CSSVarsStyle,
		},
	}

	rendered, err := r.templates.RenderTemplate(page, data)
	if err != nil {
		return nil, fmt.Errorf("preview renderer: render template: %w", err)
	}
	return []byte(rendered), nil
}

func (r *Renderer) selectTheme(options render.RenderOptions) (*theme.RendererConfig, error) {
	if r.selector == nil {
		return nil, nil
	}
	sel, err := r.selector.Select(options.ThemeName, options.ThemeVariant)
	if err != nil {
		return nil, fmt.Errorf("preview renderer: select theme: %w", err)
	}
	cfg := sel.RendererTheme(map[string]string{ThemeTemplatePage: templateName})
	return &cfg, nil
}

func (r *Renderer) assetURL(resolve func(string) string, key string) string {
	if resolve != nil {
		if resolved := resolve(key); strings.TrimSpace(resolved) != "" {
			return resolved
		}
	}
	url, _ := r.defaults.Asset(key)
	return url
}
