package publish

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var templateFiles embed.FS

// DefaultTemplateName is the embedded source template used when no template
// path is configured.
const DefaultTemplateName = "lang.go.tpl"

// TemplatesFS exposes the embedded templates rooted at the templates
// directory.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		return templateFiles
	}
	return sub
}
