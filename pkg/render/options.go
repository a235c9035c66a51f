package render

import "errors"

var errWidgetRequired = errors.New("render: widget is required")

// RenderOptions describe per-request data that page renderers can use to
// customise their output. Fragment output ignores them.
type RenderOptions struct {
	// Locale sets the document language of page renderers.
	Locale string
	// Title overrides the page title; the widget title is used otherwise.
	Title string
	// ThemeName and ThemeVariant select the theme that provides the external
	// animation assets.
	ThemeName    string
	ThemeVariant string
}
