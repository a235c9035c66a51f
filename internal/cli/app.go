package cli

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-headline/internal/config"
	"github.com/goliatone/go-headline/internal/logging"
	"github.com/goliatone/go-headline/internal/telemetry"
	"github.com/goliatone/go-headline/pkg/headline"
	"github.com/goliatone/go-headline/pkg/i18n"
	"github.com/goliatone/go-headline/pkg/orchestrator"
	"github.com/goliatone/go-headline/pkg/renderers/preview"
	"github.com/goliatone/go-headline/pkg/settings"
	"github.com/goliatone/go-headline/pkg/widget"
)

func (a *app) setup(ctx context.Context) error {
	if a.flags.envFile != "" {
		if err := config.LoadDotEnv(a.flags.envFile); err != nil {
			return err
		}
	}

	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg, a.flags)
	a.cfg = cfg

	a.logger = logging.New(a.stderr, cfg.Log.Level, cfg.Log.Format)

	_, shutdown, err := telemetry.Init("headline", version, telemetry.Config{
		Exporter: cfg.Telemetry.Exporter,
		Output:   a.stderr,
	})
	if err != nil {
		return err
	}
	a.shutdown = shutdown

	a.lookup = i18n.Identity
	if cfg.I18n.Catalog != "" {
		catalog, err := i18n.LoadCatalogFile(dirFS(cfg.I18n.Catalog))
		if err != nil {
			return err
		}
		a.lookup = i18n.FromTranslator(catalog, cfg.I18n.Locale, nil)
		a.logger.DebugContext(ctx, "translation catalog loaded",
			"path", cfg.I18n.Catalog, "locale", cfg.I18n.Locale, "locales", catalog.Locales())
	}

	a.selector = nil
	if cfg.Theme.Manifest != "" {
		manifest, err := theme.LoadFile(dirFS(cfg.Theme.Manifest))
		if err != nil {
			return fmt.Errorf("load theme manifest: %w", err)
		}
		selector, err := preview.NewThemeSelector(cfg.Theme.Name, cfg.Theme.Variant, manifest)
		if err != nil {
			return err
		}
		a.selector = selector
		a.logger.DebugContext(ctx, "theme manifest loaded", "path", cfg.Theme.Manifest, "theme", manifest.Name)
	}
	return nil
}

func (a *app) close(ctx context.Context) error {
	if a.shutdown == nil {
		return nil
	}
	err := a.shutdown(ctx)
	a.shutdown = nil
	return err
}

func applyFlagOverrides(cfg *config.Config, flags rootFlags) {
	if v := strings.TrimSpace(flags.logLevel); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(flags.logFormat); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(flags.locale); v != "" {
		cfg.I18n.Locale = v
	}
	if v := strings.TrimSpace(flags.catalog); v != "" {
		cfg.I18n.Catalog = v
	}
	if v := strings.TrimSpace(flags.trace); v != "" {
		cfg.Telemetry.Exporter = v
	}
}

type renderFlags struct {
	widget           string
	legacyVisibility bool
	strict           bool
	templatesDir     string
}

// orchestrator builds a pipeline whose headline widget honours the current
// locale and visibility mode.
func (a *app) orchestrator(flags renderFlags) (*orchestrator.Orchestrator, error) {
	opts := []headline.Option{headline.WithLookup(a.lookup)}
	if flags.legacyVisibility || (a.cfg != nil && a.cfg.Render.LegacyVisibility) {
		opts = append(opts, headline.WithLegacyVisibility())
	}

	widgets := widget.NewRegistry()
	if err := widgets.Register(headline.New(opts...)); err != nil {
		return nil, err
	}

	previewOpts := []preview.Option{
		preview.WithGlobals(map[string]any{"generator": "headline " + version}),
	}
	if flags.templatesDir != "" {
		previewOpts = append(previewOpts, preview.WithTemplatesDir(flags.templatesDir))
	}
	if a.selector != nil {
		previewOpts = append(previewOpts, preview.WithThemeSelector(a.selector))
	}

	return orchestrator.New(
		orchestrator.WithWidgets(widgets),
		orchestrator.WithDefaultWidget(flags.widget),
		orchestrator.WithPreviewOptions(previewOpts...),
		orchestrator.WithStrictSettings(flags.strict),
	), nil
}

// readSettings loads a settings file; "-" reads a JSON or YAML document from
// stdin and an empty path yields nil so every field takes its default.
func (a *app) readSettings(path string) (map[string]any, error) {
	switch strings.TrimSpace(path) {
	case "":
		return nil, nil
	case "-":
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("read settings from stdin: %w", err)
		}
		// YAML accepts JSON documents as well.
		return settings.Decode(data, settings.FormatYAML)
	default:
		return settings.LoadFile(dirFS(path))
	}
}

func (a *app) locale() string {
	if a.cfg == nil {
		return ""
	}
	return a.cfg.I18n.Locale
}

func dirFS(path string) (fs.FS, string) {
	return os.DirFS(filepath.Dir(path)), filepath.Base(path)
}

func writeOutput(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
