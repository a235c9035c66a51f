// Package preview renders a widget into a standalone HTML page for local
// inspection. The page links the external animation stylesheet and script,
// whose URLs come from a go-theme selection when one is configured.
package preview
