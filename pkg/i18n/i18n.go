package i18n

import (
	"errors"
	"strings"
)

// ErrMissingTranslator is passed to MissingTranslationHandler when no
// translator is configured.
var ErrMissingTranslator = errors.New("i18n: translator not configured")

// Lookup maps a literal source string within a text domain to its display
// string. Implementations must return the source string when no translation
// exists.
type Lookup func(source, domain string) string

// Translator resolves message keys for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides the string used when a translation
// cannot be found.
type MissingTranslationHandler func(locale, key string, err error) string

// Identity returns source unchanged.
func Identity(source, _ string) string {
	return source
}

// Resolve returns lookup when set, Identity otherwise.
func Resolve(lookup Lookup) Lookup {
	if lookup == nil {
		return Identity
	}
	return lookup
}

// FromTranslator adapts a Translator into a Lookup. Keys are namespaced as
// "<domain>:<source>" first and fall back to the bare source string.
func FromTranslator(t Translator, locale string, onMissing MissingTranslationHandler) Lookup {
	return func(source, domain string) string {
		return translate(t, locale, source, domain, onMissing)
	}
}

// DomainKey builds the namespaced key used by FromTranslator.
func DomainKey(domain, source string) string {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return source
	}
	return domain + ":" + source
}

func translate(t Translator, locale, source, domain string, onMissing MissingTranslationHandler) string {
	if strings.TrimSpace(source) == "" {
		return source
	}
	if t == nil {
		if onMissing != nil {
			return fallback(onMissing(locale, source, ErrMissingTranslator), source)
		}
		return source
	}

	var lastErr error
	for _, key := range candidateKeys(domain, source) {
		msg, err := t.Translate(locale, key)
		if err == nil && strings.TrimSpace(msg) != "" {
			return msg
		}
		lastErr = err
	}

	if onMissing != nil {
		return fallback(onMissing(locale, source, lastErr), source)
	}
	return source
}

func candidateKeys(domain, source string) []string {
	namespaced := DomainKey(domain, source)
	if namespaced == source {
		return []string{source}
	}
	return []string{namespaced, source}
}

func fallback(value, source string) string {
	if strings.TrimSpace(value) == "" {
		return source
	}
	return value
}
