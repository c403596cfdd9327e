package langsync

import (
	"io/fs"

	"github.com/goliatone/go-langsync/pkg/publish"
)

// EmbeddedTemplates exposes the built-in source templates so callers can copy
// or extend them without importing the publish package directly.
func EmbeddedTemplates() fs.FS {
	return publish.TemplatesFS()
}
