package model

import (
	"strings"

	"beanmap/internal/typeresolve"
)

// Configuration holds the resolved global defaults. All booleans are concrete.
type Configuration struct {
	BeanFactory      string
	DateFormat       string
	MapNull          bool
	MapEmptyString   bool
	TrimStrings      bool
	Wildcard         bool
	StopOnErrors     bool
	RelationshipType Relationship

	// AllowedExceptions are runtime-exception types the engine may let escape.
	AllowedExceptions []*typeresolve.Handle
	// CopyByReferences lists type name patterns copied by reference.
	CopyByReferences []CopyByReference
	// CustomConverters are the globally registered converters, in declaration order.
	CustomConverters []CustomConverter
	// Variables are the named variables, in declaration order.
	Variables []Variable
}

// DefaultConfiguration returns the configuration used when a mapping set has
// no global configuration.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		MapNull:          DefaultMapNull,
		MapEmptyString:   DefaultMapEmptyString,
		TrimStrings:      DefaultTrimStrings,
		Wildcard:         DefaultWildcard,
		StopOnErrors:     DefaultStopOnErrors,
		RelationshipType: DefaultRelationship,
	}
}

// Variable looks up a named variable. The last declaration of a name wins.
func (c *Configuration) Variable(name string) (string, bool) {
	for i := len(c.Variables) - 1; i >= 0; i-- {
		if c.Variables[i].Name == name {
			return c.Variables[i].Value, true
		}
	}

	return "", false
}

// IsCopyByReference reports whether values of typeName are copied by reference.
func (c *Configuration) IsCopyByReference(typeName string) bool {
	for _, ref := range c.CopyByReferences {
		if ref.Matches(typeName) {
			return true
		}
	}

	return false
}

// IsAllowedException reports whether typeName is one of the allowed exceptions.
func (c *Configuration) IsAllowedException(typeName string) bool {
	for _, h := range c.AllowedExceptions {
		if h.Name == typeName {
			return true
		}
	}

	return false
}

// ConverterFor returns the first converter registered for the unordered
// pair (a, b).
func (c *Configuration) ConverterFor(a, b string) (CustomConverter, bool) {
	for _, conv := range c.CustomConverters {
		if conv.Applies(a, b) {
			return conv, true
		}
	}

	return CustomConverter{}, false
}

// Variable is a named configuration value.
type Variable struct {
	Name  string
	Value string
}

// CopyByReference is an opaque marker for a type name pattern. A trailing
// "*" matches any name with the preceding prefix.
type CopyByReference string

// Matches reports whether typeName is covered by the marker.
func (r CopyByReference) Matches(typeName string) bool {
	pattern := string(r)
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(typeName, prefix)
	}

	return pattern == typeName
}

// CustomConverter is a globally registered converter between two types.
type CustomConverter struct {
	Converter *typeresolve.Handle
	ClassA    *typeresolve.Handle
	ClassB    *typeresolve.Handle
}

// Applies reports whether the converter handles the pair in either order.
func (c CustomConverter) Applies(a, b string) bool {
	if c.ClassA == nil || c.ClassB == nil {
		return false
	}

	return (c.ClassA.Name == a && c.ClassB.Name == b) ||
		(c.ClassA.Name == b && c.ClassB.Name == a)
}
