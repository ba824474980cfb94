package specfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"beanmap/internal/spec"
)

// Format is a document encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("unsupported mapping file extension %q (expected .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// Decode parses data into a Document.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()

		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse mapping TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %s", format)
	}

	return &doc, nil
}

// Parse parses data into a spec tree.
func Parse(data []byte, format Format) (*spec.MappingSet, error) {
	doc, err := Decode(data, format)
	if err != nil {
		return nil, err
	}

	return ToMappingSet(doc)
}

// LoadFile loads a mapping file, choosing the format by extension.
func LoadFile(path string) (*spec.MappingSet, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	set, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return set, nil
}

// Marshal serializes a spec tree.
func Marshal(set *spec.MappingSet, format Format) ([]byte, error) {
	doc := FromMappingSet(set)

	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatTOML:
		return toml.Marshal(doc)
	default:
		return nil, fmt.Errorf("unsupported format %s", format)
	}
}

// WriteFile writes a spec tree to path, choosing the format by extension.
func WriteFile(set *spec.MappingSet, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := Marshal(set, format)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write mapping file %s: %w", path, err)
	}

	return nil
}
