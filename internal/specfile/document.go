package specfile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk form of a mapping specification.
type Document struct {
	Configuration *ConfigDoc   `yaml:"configuration,omitempty" toml:"configuration,omitempty"`
	Mappings      []MappingDoc `yaml:"mappings,omitempty" toml:"mappings,omitempty"`
}

// ConfigDoc is the global configuration section.
type ConfigDoc struct {
	DateFormat        string         `yaml:"date-format,omitempty" toml:"date-format,omitempty"`
	BeanFactory       string         `yaml:"bean-factory,omitempty" toml:"bean-factory,omitempty"`
	MapNull           *bool          `yaml:"map-null,omitempty" toml:"map-null,omitempty"`
	MapEmptyString    *bool          `yaml:"map-empty-string,omitempty" toml:"map-empty-string,omitempty"`
	TrimStrings       *bool          `yaml:"trim-strings,omitempty" toml:"trim-strings,omitempty"`
	Wildcard          *bool          `yaml:"wildcard,omitempty" toml:"wildcard,omitempty"`
	StopOnErrors      *bool          `yaml:"stop-on-errors,omitempty" toml:"stop-on-errors,omitempty"`
	RelationshipType  string         `yaml:"relationship-type,omitempty" toml:"relationship-type,omitempty"`
	CustomConverters  []ConverterDoc `yaml:"custom-converters,omitempty" toml:"custom-converters,omitempty"`
	CopyByReferences  []string       `yaml:"copy-by-references,omitempty" toml:"copy-by-references,omitempty"`
	AllowedExceptions []string       `yaml:"allowed-exceptions,omitempty" toml:"allowed-exceptions,omitempty"`
	Variables         []VariableDoc  `yaml:"variables,omitempty" toml:"variables,omitempty"`
}

// ConverterDoc registers a converter type for a class pair.
type ConverterDoc struct {
	Type   string `yaml:"type" toml:"type"`
	ClassA string `yaml:"class-a" toml:"class-a"`
	ClassB string `yaml:"class-b" toml:"class-b"`
}

// VariableDoc is a named configuration value.
type VariableDoc struct {
	Name  string `yaml:"name" toml:"name"`
	Value string `yaml:"value" toml:"value"`
}

// MappingDoc is one class-pair mapping.
type MappingDoc struct {
	ClassA           *ClassRefDoc `yaml:"class-a,omitempty" toml:"class-a,omitempty"`
	ClassB           *ClassRefDoc `yaml:"class-b,omitempty" toml:"class-b,omitempty"`
	MapID            string       `yaml:"map-id,omitempty" toml:"map-id,omitempty"`
	DateFormat       string       `yaml:"date-format,omitempty" toml:"date-format,omitempty"`
	BeanFactory      string       `yaml:"bean-factory,omitempty" toml:"bean-factory,omitempty"`
	Direction        string       `yaml:"direction,omitempty" toml:"direction,omitempty"`
	RelationshipType string       `yaml:"relationship-type,omitempty" toml:"relationship-type,omitempty"`
	StopOnErrors     *bool        `yaml:"stop-on-errors,omitempty" toml:"stop-on-errors,omitempty"`
	Wildcard         *bool        `yaml:"wildcard,omitempty" toml:"wildcard,omitempty"`
	TrimStrings      *bool        `yaml:"trim-strings,omitempty" toml:"trim-strings,omitempty"`
	MapNull          *bool        `yaml:"map-null,omitempty" toml:"map-null,omitempty"`
	MapEmptyString   *bool        `yaml:"map-empty-string,omitempty" toml:"map-empty-string,omitempty"`
	Fields           []FieldDoc   `yaml:"fields,omitempty" toml:"fields,omitempty"`
}

// ClassRefDoc names one side of a mapping.
// YAML formats supported:
//   - Simple string: "com.acme.Foo"
//   - Table: {name: com.acme.Foo, map-get-method: get}
type ClassRefDoc struct {
	Name           string `yaml:"name" toml:"name"`
	BeanFactory    string `yaml:"bean-factory,omitempty" toml:"bean-factory,omitempty"`
	FactoryBeanID  string `yaml:"factory-bean-id,omitempty" toml:"factory-bean-id,omitempty"`
	MapGetMethod   string `yaml:"map-get-method,omitempty" toml:"map-get-method,omitempty"`
	MapSetMethod   string `yaml:"map-set-method,omitempty" toml:"map-set-method,omitempty"`
	CreateMethod   string `yaml:"create-method,omitempty" toml:"create-method,omitempty"`
	MapNull        *bool  `yaml:"map-null,omitempty" toml:"map-null,omitempty"`
	MapEmptyString *bool  `yaml:"map-empty-string,omitempty" toml:"map-empty-string,omitempty"`
	Accessible     *bool  `yaml:"is-accessible,omitempty" toml:"is-accessible,omitempty"`
}

// FieldDoc is a field pair, or a field exclude when Exclude is set.
type FieldDoc struct {
	A       *FieldRefDoc `yaml:"a,omitempty" toml:"a,omitempty"`
	B       *FieldRefDoc `yaml:"b,omitempty" toml:"b,omitempty"`
	Exclude bool         `yaml:"exclude,omitempty" toml:"exclude,omitempty"`

	AHint          string `yaml:"a-hint,omitempty" toml:"a-hint,omitempty"`
	BHint          string `yaml:"b-hint,omitempty" toml:"b-hint,omitempty"`
	ADeepIndexHint string `yaml:"a-deep-index-hint,omitempty" toml:"a-deep-index-hint,omitempty"`
	BDeepIndexHint string `yaml:"b-deep-index-hint,omitempty" toml:"b-deep-index-hint,omitempty"`

	Direction        string `yaml:"direction,omitempty" toml:"direction,omitempty"`
	RelationshipType string `yaml:"relationship-type,omitempty" toml:"relationship-type,omitempty"`
	RemoveOrphans    *bool  `yaml:"remove-orphans,omitempty" toml:"remove-orphans,omitempty"`
	MapID            string `yaml:"map-id,omitempty" toml:"map-id,omitempty"`
	CopyByReference  *bool  `yaml:"copy-by-reference,omitempty" toml:"copy-by-reference,omitempty"`

	CustomConverter      string `yaml:"custom-converter,omitempty" toml:"custom-converter,omitempty"`
	CustomConverterID    string `yaml:"custom-converter-id,omitempty" toml:"custom-converter-id,omitempty"`
	CustomConverterParam string `yaml:"custom-converter-param,omitempty" toml:"custom-converter-param,omitempty"`
}

// FieldRefDoc is one side of a field entry.
// YAML formats supported:
//   - Simple string: "items[2]"
//   - Table: {name: items[2], get-method: fetchItems}
type FieldRefDoc struct {
	Name         string `yaml:"name" toml:"name"`
	DateFormat   string `yaml:"date-format,omitempty" toml:"date-format,omitempty"`
	GetMethod    string `yaml:"get-method,omitempty" toml:"get-method,omitempty"`
	SetMethod    string `yaml:"set-method,omitempty" toml:"set-method,omitempty"`
	MapGetMethod string `yaml:"map-get-method,omitempty" toml:"map-get-method,omitempty"`
	MapSetMethod string `yaml:"map-set-method,omitempty" toml:"map-set-method,omitempty"`
	Key          string `yaml:"key,omitempty" toml:"key,omitempty"`
	CreateMethod string `yaml:"create-method,omitempty" toml:"create-method,omitempty"`
	Type         string `yaml:"type,omitempty" toml:"type,omitempty"`
	Accessible   *bool  `yaml:"is-accessible,omitempty" toml:"is-accessible,omitempty"`
}

// --- ClassRefDoc YAML methods ---

// UnmarshalYAML accepts a bare class name or a table.
func (c *ClassRefDoc) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}

		*c = ClassRefDoc{Name: name}

		return nil

	case yaml.MappingNode:
		type plain ClassRefDoc

		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}

		*c = ClassRefDoc(p)

		return nil

	default:
		return fmt.Errorf("line %d: expected class name or table", node.Line)
	}
}

// MarshalYAML writes a bare name when no other attribute is set.
func (c ClassRefDoc) MarshalYAML() (any, error) {
	if c == (ClassRefDoc{Name: c.Name}) {
		return c.Name, nil
	}

	type plain ClassRefDoc

	return plain(c), nil
}

// --- FieldRefDoc YAML methods ---

// UnmarshalYAML accepts a bare field token or a table.
func (f *FieldRefDoc) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}

		*f = FieldRefDoc{Name: name}

		return nil

	case yaml.MappingNode:
		type plain FieldRefDoc

		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}

		*f = FieldRefDoc(p)

		return nil

	default:
		return fmt.Errorf("line %d: expected field name or table", node.Line)
	}
}

// MarshalYAML writes a bare name when no other attribute is set.
func (f FieldRefDoc) MarshalYAML() (any, error) {
	if f == (FieldRefDoc{Name: f.Name}) {
		return f.Name, nil
	}

	type plain FieldRefDoc

	return plain(f), nil
}
