package preview

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Theme keys looked up in a manifest.
const (
	ThemeAssetStylesheet = "headline.stylesheet"
	ThemeAssetScript     = "headline.script"
	ThemeTemplatePage    = "headline.page"
)

type rendererTheme struct {
	Name         string
	Variant      string
	Partials     map[string]string
	Tokens       map[string]string
	CSSVars      map[string]string
	CSSVarsStyle string
}

// NewThemeSelector registers manifests in a go-theme memory registry and
// returns a selector over it. The first manifest is the default theme when
// defaultTheme is empty. Manifests failing validation are rejected.
func NewThemeSelector(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) (theme.Selector, error) {
	registry := theme.NewRegistry()
	defaultTheme = strings.TrimSpace(defaultTheme)
	for _, manifest := range manifests {
		if manifest == nil {
			continue
		}
		if err := registry.Register(manifest); err != nil {
			return theme.Selector{}, fmt.Errorf("preview: register theme %q: %w", manifest.Name, err)
		}
		if defaultTheme == "" {
			defaultTheme = manifest.Name
		}
	}
	return theme.Selector{
		Registry:       registry,
		DefaultTheme:   defaultTheme,
		DefaultVariant: strings.TrimSpace(defaultVariant),
	}, nil
}

func buildThemeContext(cfg *theme.RendererConfig) rendererTheme {
	if cfg == nil {
		return rendererTheme{}
	}
	ctx := rendererTheme{
		Name:     cfg.Theme,
		Variant:  cfg.Variant,
		Partials: copyStringMap(cfg.Partials),
		Tokens:   copyStringMap(cfg.Tokens),
		CSSVars:  copyStringMap(cfg.CSSVars),
	}
	ctx.CSSVarsStyle = cssVarsStyle(ctx.CSSVars)
	return ctx
}

func themeAssetResolver(cfg *theme.RendererConfig) func(string) string {
	if cfg == nil {
		return nil
	}
	return cfg.AssetURL
}

// defaultAssets resolves the built-in asset paths through the same prefix
// handling as themed assets.
func defaultAssets(prefix string, paths AssetPaths) theme.Selection {
	return theme.Selection{Manifest: &theme.Manifest{
		Assets: theme.Assets{
			Prefix: prefix,
			Files: map[string]string{
				ThemeAssetStylesheet: paths.Stylesheet,
				ThemeAssetScript:     paths.Script,
			},
		},
	}}
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
