package template

import (
	"io"
)

// TemplateRenderer is the seam page renderers rely on. The default
// implementation lives in the gotemplate package and is backed by pongo2.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
