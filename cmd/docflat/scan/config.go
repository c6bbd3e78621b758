package scan

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/brimdata/docflat"
	"github.com/brimdata/docflat/pkg/field"
	"github.com/brimdata/docflat/segment"
	"github.com/goccy/go-yaml"
)

// Field is a document path to expose as a flat field of the given type.
type Field struct {
	Path string       `yaml:"path"`
	Type docflat.Type `yaml:"type"`
}

// ParseField parses the command-line form "path:type".
func ParseField(s string) (Field, error) {
	k := strings.LastIndexByte(s, ':')
	if k <= 0 || k == len(s)-1 {
		return Field{}, fmt.Errorf("flat field %q: must be path:type", s)
	}
	typ, err := docflat.LookupType(s[k+1:])
	if err != nil {
		return Field{}, fmt.Errorf("flat field %q: %w", s, err)
	}
	return Field{Path: s[:k], Type: typ}, nil
}

type Config struct {
	Column   string         `yaml:"column"`
	Batch    uint32         `yaml:"batch"`
	Nullable bool           `yaml:"nullable"`
	Fields   []Field        `yaml:"fields"`
	Segment  segment.Config `yaml:"segment"`
}

func DefaultConfig() Config {
	return Config{
		Column:   "doc",
		Batch:    1024,
		Nullable: true,
	}
}

// LoadConfig updates conf with the YAML file at path.  Unknown keys are
// an error.
func LoadConfig(path string, conf *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.UnmarshalWithOptions(b, conf, yaml.DisallowUnknownField())
}

func (c *Config) Validate() error {
	if len(c.Fields) == 0 {
		return errors.New("no flat fields (use -path or the fields config key)")
	}
	if c.Batch == 0 {
		return errors.New("batch size must be positive")
	}
	for _, f := range c.Fields {
		if f.Type == docflat.TypeNull {
			return fmt.Errorf("flat field %q: type null is not allowed", f.Path)
		}
		if f.Path != "$" {
			if _, err := field.Parse(f.Path); err != nil {
				return fmt.Errorf("flat field %q: %w", f.Path, err)
			}
		}
	}
	return nil
}

func (c *Config) Descriptors() ([]string, []docflat.Type) {
	paths := make([]string, 0, len(c.Fields))
	types := make([]docflat.Type, 0, len(c.Fields))
	for _, f := range c.Fields {
		paths = append(paths, f.Path)
		types = append(types, f.Type)
	}
	return paths, types
}
