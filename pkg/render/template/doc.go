// Package template defines the template engine contract used by page
// renderers. Callers can swap the pongo2-backed default for any engine that
// satisfies TemplateRenderer.
package template
