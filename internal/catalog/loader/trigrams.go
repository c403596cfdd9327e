package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-langsync/pkg/catalog"
)

// scriptBlock is one top-level entry of the trigram source, kept in document
// order.
type scriptBlock struct {
	name      string
	languages []languageTrigrams
}

type languageTrigrams struct {
	code     string
	trigrams string
}

// LoadTrigrams decodes a script → code → trigram string mapping and keeps the
// entries whose code is present in languages. Scripts are registered on first
// sight even when every language under them is filtered. The returned count is
// the number of dropped entries. A code repeated under one script keeps its
// first position and its last trigrams.
func LoadTrigrams(r io.Reader, format catalog.Format, languages *catalog.Catalog, delimiter string, logger logrus.FieldLogger) (*catalog.ScriptIndex, int, error) {
	if logger == nil {
		logger = catalog.DiscardLogger()
	}
	if delimiter == "" {
		delimiter = catalog.DefaultDelimiter
	}

	var (
		blocks []scriptBlock
		err    error
	)
	switch format {
	case catalog.FormatYAML:
		blocks, err = decodeYAML(r)
	case catalog.FormatJSON, "":
		blocks, err = decodeJSON(r)
	default:
		return nil, 0, fmt.Errorf("unsupported trigram format %q", format)
	}
	if err != nil {
		return nil, 0, err
	}

	index := catalog.NewScriptIndex()
	unknown := 0
	for _, block := range blocks {
		index.Ensure(block.name)
		for _, lang := range block.languages {
			if !languages.Has(lang.code) {
				unknown++
				logger.WithFields(logrus.Fields{
					"script": block.name,
					"code":   lang.code,
				}).Debug("dropping trigrams for unknown language")
				continue
			}
			replaced := index.Put(catalog.ScriptEntry{
				Code:     lang.code,
				Script:   block.name,
				Trigrams: SplitTrigrams(lang.trigrams, delimiter),
			})
			if replaced {
				logger.WithFields(logrus.Fields{
					"script": block.name,
					"code":   lang.code,
				}).Debug("language repeated under script, keeping the last trigrams")
			}
		}
	}
	return index, unknown, nil
}

// SplitTrigrams splits raw on delimiter, preserving order. Trailing empty
// fields are dropped so "a|b|" and "a|b" agree, and an empty string yields no
// trigrams.
func SplitTrigrams(raw, delimiter string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, delimiter)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

func decodeJSON(r io.Reader) ([]scriptBlock, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{', ""); err != nil {
		return nil, err
	}

	var blocks []scriptBlock
	for dec.More() {
		script, err := readKey(dec, "")
		if err != nil {
			return nil, err
		}
		if err := expectDelim(dec, '{', script); err != nil {
			return nil, err
		}

		block := scriptBlock{name: script}
		for dec.More() {
			code, err := readKey(dec, script)
			if err != nil {
				return nil, err
			}
			path := script + "." + code
			tok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("decode json: %w", err)
			}
			value, ok := tok.(string)
			if !ok {
				return nil, &catalog.FormatError{Path: path, Reason: "trigrams must be a string"}
			}
			block.languages = append(block.languages, languageTrigrams{code: code, trigrams: value})
		}
		if err := expectDelim(dec, '}', script); err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	if err := expectDelim(dec, '}', ""); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &catalog.FormatError{Reason: "unexpected data after top-level object"}
	}
	return blocks, nil
}

func expectDelim(dec *json.Decoder, want json.Delim, path string) error {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return &catalog.FormatError{Path: path, Reason: "unexpected end of input"}
	}
	if err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		reason := "expected an object"
		if want == '}' {
			reason = "expected end of object"
		}
		return &catalog.FormatError{Path: path, Reason: reason}
	}
	return nil
}

func readKey(dec *json.Decoder, path string) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("decode json: %w", err)
	}
	key, ok := tok.(string)
	if !ok {
		return "", &catalog.FormatError{Path: path, Reason: "expected a key"}
	}
	return key, nil
}

func decodeYAML(r io.Reader) ([]scriptBlock, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &catalog.FormatError{Reason: "empty document"}
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	root := resolveAlias(&doc)
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, &catalog.FormatError{Reason: "empty document"}
		}
		root = resolveAlias(root.Content[0])
	}
	if root.Kind != yaml.MappingNode {
		return nil, &catalog.FormatError{Reason: "top level must be a mapping"}
	}

	var blocks []scriptBlock
	for i := 0; i+1 < len(root.Content); i += 2 {
		script := root.Content[i].Value
		languages := resolveAlias(root.Content[i+1])
		if languages.Kind != yaml.MappingNode {
			return nil, &catalog.FormatError{Path: script, Reason: "expected a mapping of language codes"}
		}

		block := scriptBlock{name: script}
		for j := 0; j+1 < len(languages.Content); j += 2 {
			code := languages.Content[j].Value
			value := resolveAlias(languages.Content[j+1])
			if value.Kind != yaml.ScalarNode {
				return nil, &catalog.FormatError{Path: script + "." + code, Reason: "trigrams must be a string"}
			}
			block.languages = append(block.languages, languageTrigrams{code: code, trigrams: value.Value})
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
