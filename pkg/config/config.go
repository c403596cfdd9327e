package config

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up when no path is given.
const DefaultFile = "langsync.yaml"

// Config holds the generator settings. Paths are resolved against the
// directory holding the config file once loaded.
type Config struct {
	Catalog      string          `yaml:"catalog"`
	Trigrams     string          `yaml:"trigrams"`
	Template     string          `yaml:"template"`
	Document     string          `yaml:"document"`
	Output       string          `yaml:"output"`
	Package      string          `yaml:"package"`
	TrigramLimit int             `yaml:"trigram_limit"`
	Delimiter    string          `yaml:"delimiter"`
	Anchor       string          `yaml:"anchor"`
	Headers      []string        `yaml:"headers"`
	Formatter    FormatterConfig `yaml:"formatter"`
	Sanitize     bool            `yaml:"sanitize"`

	// BaseDir is the directory relative paths were resolved against.
	BaseDir string `yaml:"-"`
}

// FormatterConfig names the external tool run over the generated source. An
// empty command disables formatting.
type FormatterConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Catalog:      "misc/supported_languages.csv",
		Trigrams:     "misc/data.json",
		Document:     "SUPPORTED_LANGUAGES.md",
		Output:       "lang/lang.go",
		Package:      "lang",
		TrigramLimit: 300,
		Delimiter:    "|",
		Anchor:       "| Language",
		Headers:      []string{"Language", "ISO 639-3", "Enum"},
		Formatter: FormatterConfig{
			Command: "gofmt",
			Args:    []string{"-w"},
		},
		Sanitize: true,
	}
}

// Load reads the config at path over the defaults. A missing file is not an
// error: the defaults are resolved against the directory path points into.
// An empty path means DefaultFile in the working directory.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		data = nil
	case err != nil:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := cfg.decode(data); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.resolve(filepath.Dir(path))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML (or JSON) over the defaults without touching the
// filesystem. Paths are resolved against baseDir.
func Parse(data []byte, baseDir string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.decode(data); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.resolve(baseDir)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) resolve(baseDir string) {
	if baseDir == "" {
		baseDir = "."
	}
	c.BaseDir = baseDir
	c.Catalog = c.Path(c.Catalog)
	c.Trigrams = c.Path(c.Trigrams)
	c.Template = c.Path(c.Template)
	c.Document = c.Path(c.Document)
	c.Output = c.Path(c.Output)
}

// Path resolves p against BaseDir. Empty and absolute paths pass through.
func (c *Config) Path(p string) string {
	if p == "" || filepath.IsAbs(p) || c.BaseDir == "" {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

// Validate reports the first setting the generator cannot work with.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"catalog", c.Catalog},
		{"trigrams", c.Trigrams},
		{"document", c.Document},
		{"output", c.Output},
		{"delimiter", c.Delimiter},
		{"anchor", c.Anchor},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("config: %s is required", field.name)
		}
	}
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("config: package %q is not a valid Go identifier", c.Package)
	}
	if len(c.Headers) != 3 {
		return fmt.Errorf("config: headers must name 3 columns, got %d", len(c.Headers))
	}
	if c.TrigramLimit < 0 {
		return fmt.Errorf("config: trigram_limit must not be negative, got %d", c.TrigramLimit)
	}
	return nil
}
