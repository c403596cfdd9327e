package template

import (
	"io"
)

// TemplateRenderer is the seam the source publisher relies on.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}
