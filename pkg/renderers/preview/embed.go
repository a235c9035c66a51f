package preview

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded page template so callers can copy and
// extend it.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
