package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix scopes environment overrides (HEADLINE_LOG_LEVEL -> log.level).
const EnvPrefix = "HEADLINE_"

// Config is the resolved CLI configuration after defaults, file and
// environment layers are merged.
type Config struct {
	Log     LogConfig     `koanf:"log"`
	I18n    I18nConfig    `koanf:"i18n"`
	Render  RenderConfig  `koanf:"render"`
	Theme   ThemeConfig   `koanf:"theme"`
	Widgets WidgetsConfig `koanf:"widgets"`

	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // json, text
}

// I18nConfig points at an optional translation catalog.
type I18nConfig struct {
	Locale  string `koanf:"locale"`
	Catalog string `koanf:"catalog"` // yaml or json translation catalog
}

// RenderConfig toggles markup projection modes.
type RenderConfig struct {
	LegacyVisibility bool `koanf:"legacy_visibility"`
}

// ThemeConfig selects a go-theme manifest for preview pages.
type ThemeConfig struct {
	Name     string `koanf:"name"`
	Variant  string `koanf:"variant"`
	Manifest string `koanf:"manifest"`
}

// TelemetryConfig picks the trace exporter.
type TelemetryConfig struct {
	Exporter string `koanf:"exporter"` // none, stdout
}

// WidgetsConfig holds catalog extras for the widgets panel.
type WidgetsConfig struct {
	Icons string `koanf:"icons"` // yaml file mapping widget name to svg markup
}

func defaults() map[string]any {
	return map[string]any{
		"log.level":                "info",
		"log.format":               "text",
		"i18n.locale":              "en",
		"i18n.catalog":             "",
		"render.legacy_visibility": false,
		"theme.name":               "",
		"theme.variant":            "",
		"theme.manifest":           "",
		"telemetry.exporter":       "none",
		"widgets.icons":            "",
	}
}

// Load layers defaults, the optional YAML file at path and HEADLINE_ env
// vars, in that order.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("config: default %s: %w", key, err)
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	return &cfg, nil
}

// envKey maps HEADLINE_RENDER_LEGACY_VISIBILITY to render.legacy_visibility:
// the first segment names the section, the rest is the key.
func envKey(s string) string {
	trimmed := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, key, ok := strings.Cut(trimmed, "_")
	if !ok {
		return trimmed
	}
	return section + "." + key
}

// LoadDotEnv loads .env style files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("config: load env file %s: %w", path, err)
		}
	}
	return nil
}
