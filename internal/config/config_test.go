package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("unexpected log defaults %+v", cfg.Log)
	}
	if cfg.I18n.Locale != "en" {
		t.Errorf("expected default locale en, got %s", cfg.I18n.Locale)
	}
	if cfg.Render.LegacyVisibility {
		t.Errorf("legacy visibility must default to false")
	}
	if cfg.Telemetry.Exporter != "none" {
		t.Errorf("expected telemetry disabled by default, got %s", cfg.Telemetry.Exporter)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "headline.yaml")
	content := `
log:
  level: "DEBUG"
  format: json
i18n:
  locale: es
theme:
  name: acme
  variant: dark
render:
  legacy_visibility: false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("HEADLINE_RENDER_LEGACY_VISIBILITY", "true")
	t.Setenv("HEADLINE_THEME_VARIANT", "light")
	t.Setenv("HEADLINE_WIDGETS_ICONS", "icons.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
	if cfg.I18n.Locale != "es" {
		t.Errorf("expected locale from file, got %s", cfg.I18n.Locale)
	}
	if cfg.Theme.Name != "acme" {
		t.Errorf("expected theme from file, got %s", cfg.Theme.Name)
	}
	if cfg.Theme.Variant != "light" {
		t.Errorf("env should override file variant, got %s", cfg.Theme.Variant)
	}
	if !cfg.Render.LegacyVisibility {
		t.Errorf("env should enable legacy visibility")
	}
	if cfg.Widgets.Icons != "icons.yaml" {
		t.Errorf("expected widget icons from env, got %q", cfg.Widgets.Icons)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestLoadDotEnv(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ".env")
	if err := os.WriteFile(path, []byte("HEADLINE_I18N_LOCALE=fr\n"), 0o644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Setenv("HEADLINE_I18N_LOCALE", "")
	os.Unsetenv("HEADLINE_I18N_LOCALE")

	if err := LoadDotEnv(path, filepath.Join(tmpDir, "absent.env")); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.I18n.Locale != "fr" {
		t.Errorf("expected locale from .env, got %s", cfg.I18n.Locale)
	}
}

func TestEnvKey(t *testing.T) {
	cases := map[string]string{
		"HEADLINE_LOG_LEVEL":                "log.level",
		"HEADLINE_RENDER_LEGACY_VISIBILITY": "render.legacy_visibility",
		"HEADLINE_THEME":                    "theme",
	}
	for in, want := range cases {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}
