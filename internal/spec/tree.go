package spec

import (
	"beanmap/internal/model"
	"beanmap/internal/tristate"
)

// MappingSet is the root of a specification.
type MappingSet struct {
	// Configuration is optional; nil compiles to the default configuration.
	Configuration *GlobalConfig
	// Mappings are compiled in declaration order.
	Mappings []*ClassPairMapping
}

// GlobalConfig holds process-wide defaults.
type GlobalConfig struct {
	DateFormat       string
	BeanFactory      string
	MapNull          tristate.Bool
	MapEmptyString   tristate.Bool
	TrimStrings      tristate.Bool
	Wildcard         tristate.Bool
	StopOnErrors     tristate.Bool
	RelationshipType model.Relationship

	CustomConverters  []CustomConverterSpec
	CopyByReferences  []string
	AllowedExceptions []string
	Variables         []Variable
}

// CustomConverterSpec registers a converter type for a pair of classes.
type CustomConverterSpec struct {
	Type   string
	ClassA string
	ClassB string
}

// Variable is a named configuration value.
type Variable struct {
	Name  string
	Value string
}

// ClassPairMapping pairs two classes with their field entries.
type ClassPairMapping struct {
	A *ClassRef
	B *ClassRef

	// Entries are *FieldPair or *FieldExclude values in declaration order.
	Entries []Entry

	DateFormat       string
	BeanFactory      string
	MapID            string
	StopOnErrors     tristate.Bool
	Wildcard         tristate.Bool
	TrimStrings      tristate.Bool
	MapNull          tristate.Bool
	MapEmptyString   tristate.Bool
	Direction        model.Direction
	RelationshipType model.Relationship
}

// ClassRef names one side of a class-pair mapping.
type ClassRef struct {
	Name          string
	BeanFactory   string
	FactoryBeanID string
	MapGetMethod  string
	MapSetMethod  string
	CreateMethod  string

	MapNull        tristate.Bool
	MapEmptyString tristate.Bool
	Accessible     tristate.Bool
}

// Entry is a field-level entry of a class-pair mapping. It is implemented
// by *FieldPair and *FieldExclude only.
type Entry interface {
	// Refs returns the A and B field references.
	Refs() (a, b *FieldRef)
	entry()
}

// FieldPair declares that two fields correspond.
type FieldPair struct {
	A *FieldRef
	B *FieldRef

	SrcHint           string
	DestHint          string
	SrcDeepIndexHint  string
	DestDeepIndexHint string

	RelationshipType model.Relationship
	RemoveOrphans    tristate.Bool
	Direction        model.Direction
	MapID            string
	CopyByReference  tristate.Bool

	CustomConverter      string
	CustomConverterID    string
	CustomConverterParam string
}

// FieldExclude suppresses wildcard mapping of a field pair.
type FieldExclude struct {
	A         *FieldRef
	B         *FieldRef
	Direction model.Direction
}

func (f *FieldPair) Refs() (a, b *FieldRef)    { return f.A, f.B }
func (f *FieldExclude) Refs() (a, b *FieldRef) { return f.A, f.B }

func (*FieldPair) entry()    {}
func (*FieldExclude) entry() {}

// FieldRef is one side of a field entry. Name may carry an index, e.g. "items[2]".
type FieldRef struct {
	Name         string
	DateFormat   string
	GetMethod    string
	SetMethod    string
	MapGetMethod string
	MapSetMethod string
	Key          string
	CreateMethod string
	Type         model.FieldType
	Accessible   tristate.Bool
}

// Field returns a FieldRef carrying only a name.
func Field(name string) *FieldRef {
	return &FieldRef{Name: name}
}
