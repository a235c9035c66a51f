package headline

import (
	"io/fs"

	"github.com/goliatone/go-headline/pkg/renderers/preview"
)

// EmbeddedTemplates exposes the built-in preview page template so callers
// can reuse or extend it without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return preview.TemplatesFS()
}
