package i18n_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-headline/pkg/i18n"
)

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := t[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing translation")
}

func TestFromTranslator_PrefersDomainKey(t *testing.T) {
	lookup := i18n.FromTranslator(stubTranslator{
		"animated-headline:Title": "Título",
		"Title":                   "Titel",
		"Designer":                "Diseñador",
	}, "es", nil)

	if got := lookup("Title", "animated-headline"); got != "Título" {
		t.Fatalf("expected domain-scoped translation, got %q", got)
	}
	if got := lookup("Designer", "animated-headline"); got != "Diseñador" {
		t.Fatalf("expected bare key fallback, got %q", got)
	}
	if got := lookup("After Title", "animated-headline"); got != "After Title" {
		t.Fatalf("expected source fallback, got %q", got)
	}
}

func TestFromTranslator_MissingHandler(t *testing.T) {
	var gotErr error
	lookup := i18n.FromTranslator(nil, "fr", func(locale, key string, err error) string {
		gotErr = err
		return "[" + locale + "] " + key
	})

	if got := lookup("Clip List", "animated-headline"); got != "[fr] Clip List" {
		t.Fatalf("unexpected missing handler output %q", got)
	}
	if !errors.Is(gotErr, i18n.ErrMissingTranslator) {
		t.Fatalf("expected ErrMissingTranslator, got %v", gotErr)
	}
}

func TestIdentityAndResolve(t *testing.T) {
	if got := i18n.Identity("Before Title", "x"); got != "Before Title" {
		t.Fatalf("identity changed the source: %q", got)
	}
	if got := i18n.Resolve(nil)("Title", "x"); got != "Title" {
		t.Fatalf("nil lookup should resolve to identity, got %q", got)
	}
}

func TestLoadCatalogFile_YAMLWithRegionalFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"es.yaml": &fstest.MapFile{Data: []byte(`
es:
  animated-headline:
    Animated Headline: Titular animado
    Designer: Diseñador
`)},
	}

	catalog, err := i18n.LoadCatalogFile(fsys, "es.yaml")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	lookup := i18n.FromTranslator(catalog, "es_MX", nil)
	if got := lookup("Animated Headline", "animated-headline"); got != "Titular animado" {
		t.Fatalf("expected regional fallback to base locale, got %q", got)
	}
	if got := lookup("Designer", "other-domain"); got != "Designer" {
		t.Fatalf("other domains must not match, got %q", got)
	}

	if _, err := catalog.Translate("de", "animated-headline:Designer"); !errors.Is(err, i18n.ErrTranslationNotFound) {
		t.Fatalf("expected ErrTranslationNotFound, got %v", err)
	}
}

func TestParseCatalog_JSON(t *testing.T) {
	catalog, err := i18n.ParseCatalog([]byte(`{"de":{"animated-headline":{"Title":"Titel"}}}`), ".json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	msg, err := catalog.Translate("DE", "animated-headline:Title")
	if err != nil || msg != "Titel" {
		t.Fatalf("expected Titel, got %q (%v)", msg, err)
	}
}
