// Package settings plays the host's part between editing and rendering: it
// decodes stored settings documents (JSON or YAML) and resolves them against
// a widget schema so the widget always receives a complete value set.
package settings
