package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-langsync/pkg/catalog"
)

const (
	columnCode           = "code"
	columnEnglishName    = "englishName"
	columnName           = "name"
	columnNativeSpeakers = "nativeSpeakers"
)

// columnAliases maps accepted CSV header spellings onto canonical columns.
var columnAliases = map[string]string{
	"code":               columnCode,
	"eng_name":           columnEnglishName,
	"english_name":       columnEnglishName,
	"englishname":        columnEnglishName,
	"name":               columnName,
	"native_speakers":    columnNativeSpeakers,
	"nativespeakers":     columnNativeSpeakers,
	"nativespeakercount": columnNativeSpeakers,
}

// LoadLanguages decodes a CSV catalog whose first row names the columns. Rows
// are accepted in source order; a row repeating an already accepted code is
// skipped and counted in the returned duplicate total.
func LoadLanguages(r io.Reader, logger logrus.FieldLogger) (*catalog.Catalog, int, error) {
	if logger == nil {
		logger = catalog.DiscardLogger()
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	out := catalog.NewCatalog()

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return out, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}
	columns := indexColumns(header)

	duplicates := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read row: %w", err)
		}
		line, _ := reader.FieldPos(0)

		record, err := catalog.NewLanguageRecord(
			cell(row, columns, columnCode),
			cell(row, columns, columnEnglishName),
			cell(row, columns, columnName),
			cell(row, columns, columnNativeSpeakers),
		)
		if err != nil {
			var missing *catalog.MissingFieldError
			if errors.As(err, &missing) {
				missing.Line = line
			}
			return nil, 0, err
		}

		if !out.Add(record) {
			duplicates++
			logger.WithFields(logrus.Fields{
				"code": record.Code,
				"line": line,
			}).Debug("skipping duplicate language code")
		}
	}

	return out, duplicates, nil
}

func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, raw := range header {
		name := strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff"))
		canonical, ok := columnAliases[strings.ToLower(name)]
		if !ok {
			continue
		}
		if _, seen := columns[canonical]; seen {
			continue
		}
		columns[canonical] = i
	}
	return columns
}

func cell(row []string, columns map[string]int, column string) string {
	pos, ok := columns[column]
	if !ok || pos >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[pos])
}
