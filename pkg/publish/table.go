package publish

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-langsync/pkg/catalog"
	"github.com/goliatone/go-langsync/pkg/render/template/gotemplate"
	"github.com/goliatone/go-langsync/pkg/table"
)

// DefaultHeaders are the language table columns: display name, code and the
// generated enum identifier.
var DefaultHeaders = []string{"Language", "ISO 639-3", "Enum"}

// TableOptions configures LanguageTable.
type TableOptions struct {
	// Headers names the three columns. Nil means DefaultHeaders.
	Headers []string
	// Qualifier prefixes the enum identifier, e.g. "lang" renders `lang.Eng`.
	Qualifier string
	// Sanitizer cleans the language name cell. Nil leaves it untouched.
	Sanitizer CellSanitizer
	// Logger reports names the sanitizer changed. Nil discards.
	Logger logrus.FieldLogger
}

// LanguageTable builds one row per record in catalog order.
func LanguageTable(records []catalog.LanguageRecord, opts TableOptions) (*table.Table, error) {
	headers := opts.Headers
	if headers == nil {
		headers = DefaultHeaders
	}
	sanitizer := opts.Sanitizer
	if sanitizer == nil {
		sanitizer = passthroughSanitizer{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = catalog.DiscardLogger()
	}

	tbl := table.New(headers...)
	for _, record := range records {
		name := sanitizer.Sanitize(record.EnglishName)
		if name != record.EnglishName {
			logger.WithFields(logrus.Fields{
				"code":   record.Code,
				"before": record.EnglishName,
				"after":  name,
			}).Debug("language name changed by sanitizer")
		}
		if err := tbl.Add(
			name,
			record.Code,
			EnumCell(opts.Qualifier, record.Code),
		); err != nil {
			return nil, fmt.Errorf("publish: language %q: %w", record.Code, err)
		}
	}
	return tbl, nil
}

// EnumCell renders the code span naming the generated identifier for code.
func EnumCell(qualifier, code string) string {
	ident := gotemplate.Identifier(code)
	if qualifier != "" {
		ident = qualifier + "." + ident
	}
	return "`" + ident + "`"
}
