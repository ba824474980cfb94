package model

import (
	"beanmap/internal/tristate"
	"beanmap/internal/typeresolve"
)

// ClassDescriptor is one resolved side of a class-pair mapping.
type ClassDescriptor struct {
	Type          *typeresolve.Handle
	BeanFactory   string
	FactoryBeanID string
	MapGetMethod  string
	MapSetMethod  string
	CreateMethod  string

	// Left unresolved here; defaults come from a broader scope.
	MapNull        tristate.Bool
	MapEmptyString tristate.Bool
	Accessible     tristate.Bool
}

// Name returns the resolved type name.
func (c ClassDescriptor) Name() string {
	return c.Type.String()
}

// IsMapAccessed reports whether the class is read and written through map
// accessor methods rather than bean properties.
func (c ClassDescriptor) IsMapAccessed() bool {
	return c.MapGetMethod != "" || c.MapSetMethod != ""
}

// ClassMap is the compiled form of one class-pair mapping.
type ClassMap struct {
	Src  ClassDescriptor
	Dest ClassDescriptor

	// Direction and RelationshipType are never Inherit.
	Direction        Direction
	RelationshipType Relationship

	DateFormat  string
	BeanFactory string
	MapID       string

	// Mapping-level overrides; Inherit means the Configuration value applies.
	MapNull        tristate.Bool
	MapEmptyString tristate.Bool
	Wildcard       tristate.Bool
	TrimStrings    tristate.Bool
	StopOnErrors   tristate.Bool

	// FieldMaps keeps specification order.
	FieldMaps []FieldMap
}

// IsSrcMapAccessed reports whether the source class is map-accessed.
func (c *ClassMap) IsSrcMapAccessed() bool {
	return c.Src.IsMapAccessed()
}

// IsDestMapAccessed reports whether the destination class is map-accessed.
func (c *ClassMap) IsDestMapAccessed() bool {
	return c.Dest.IsMapAccessed()
}

// Key identifies the class pair, e.g. "a.Foo->b.Bar".
func (c *ClassMap) Key() string {
	return c.Src.Name() + "->" + c.Dest.Name()
}
