package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrTranslationNotFound is returned by Catalog when a key has no entry.
var ErrTranslationNotFound = errors.New("i18n: translation not found")

// Catalog is an in-memory Translator keyed by locale, then message key.
// Message keys follow DomainKey so one catalog can serve several domains.
type Catalog struct {
	mu       sync.RWMutex
	messages map[string]map[string]string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{messages: make(map[string]map[string]string)}
}

// Add stores a message for locale.
func (c *Catalog) Add(locale, key, message string) {
	locale = normalizeLocale(locale)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.messages[locale] == nil {
		c.messages[locale] = make(map[string]string)
	}
	c.messages[locale][key] = message
}

// Translate implements Translator. A regional locale such as "es-MX" falls
// back to its base language "es".
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	if c == nil {
		return "", ErrMissingTranslator
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, candidate := range localeChain(locale) {
		if msg, ok := c.messages[candidate][key]; ok {
			if len(args) > 0 {
				return fmt.Sprintf(msg, args...), nil
			}
			return msg, nil
		}
	}
	return "", fmt.Errorf("%w: %s/%s", ErrTranslationNotFound, locale, key)
}

// Locales lists the locales present in the catalog.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.messages))
	for locale := range c.messages {
		out = append(out, locale)
	}
	return out
}

// catalogDocument is the on-disk layout: locale -> domain -> source -> text.
type catalogDocument map[string]map[string]map[string]string

// LoadCatalogFile reads a JSON or YAML catalog from fsys.
func LoadCatalogFile(fsys fs.FS, path string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("i18n: read %s: %w", path, err)
	}
	return ParseCatalog(data, filepath.Ext(path))
}

// ParseCatalog decodes a catalog document. ext selects the decoder; YAML is
// used for anything that is not ".json".
func ParseCatalog(data []byte, ext string) (*Catalog, error) {
	var doc catalogDocument
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("i18n: decode json catalog: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("i18n: decode yaml catalog: %w", err)
		}
	}

	catalog := NewCatalog()
	for locale, domains := range doc {
		for domain, messages := range domains {
			for source, text := range messages {
				catalog.Add(locale, DomainKey(domain, source), text)
			}
		}
	}
	return catalog, nil
}

func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(locale)), "_", "-")
}

func localeChain(locale string) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return nil
	}
	chain := []string{locale}
	if idx := strings.IndexByte(locale, '-'); idx > 0 {
		chain = append(chain, locale[:idx])
	}
	return chain
}
