package spec

import (
	"beanmap/internal/model"
	"beanmap/internal/tristate"
)

// Builder authors a MappingSet through chained calls. A Builder is not safe
// for concurrent use and must not be used after Build.
type Builder struct {
	set *MappingSet
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{set: &MappingSet{}}
}

// Build returns the authored specification.
func (b *Builder) Build() *MappingSet {
	return b.set
}

// Configuration starts, or resumes, the global configuration.
func (b *Builder) Configuration() *ConfigBuilder {
	if b.set.Configuration == nil {
		b.set.Configuration = &GlobalConfig{}
	}

	return &ConfigBuilder{cfg: b.set.Configuration, parent: b}
}

// Mapping starts a new class-pair mapping.
func (b *Builder) Mapping() *MappingBuilder {
	m := &ClassPairMapping{}
	b.set.Mappings = append(b.set.Mappings, m)

	return &MappingBuilder{mapping: m, parent: b}
}

// ConfigBuilder authors the global configuration.
type ConfigBuilder struct {
	cfg    *GlobalConfig
	parent *Builder
}

func (c *ConfigBuilder) DateFormat(format string) *ConfigBuilder {
	c.cfg.DateFormat = format
	return c
}

func (c *ConfigBuilder) BeanFactory(factory string) *ConfigBuilder {
	c.cfg.BeanFactory = factory
	return c
}

func (c *ConfigBuilder) MapNull(v bool) *ConfigBuilder {
	c.cfg.MapNull = tristate.Of(v)
	return c
}

func (c *ConfigBuilder) MapEmptyString(v bool) *ConfigBuilder {
	c.cfg.MapEmptyString = tristate.Of(v)
	return c
}

func (c *ConfigBuilder) TrimStrings(v bool) *ConfigBuilder {
	c.cfg.TrimStrings = tristate.Of(v)
	return c
}

func (c *ConfigBuilder) Wildcard(v bool) *ConfigBuilder {
	c.cfg.Wildcard = tristate.Of(v)
	return c
}

func (c *ConfigBuilder) StopOnErrors(v bool) *ConfigBuilder {
	c.cfg.StopOnErrors = tristate.Of(v)
	return c
}

func (c *ConfigBuilder) Relationship(r model.Relationship) *ConfigBuilder {
	c.cfg.RelationshipType = r
	return c
}

// CustomConverter registers converterType for the pair (classA, classB).
func (c *ConfigBuilder) CustomConverter(converterType, classA, classB string) *ConfigBuilder {
	c.cfg.CustomConverters = append(c.cfg.CustomConverters, CustomConverterSpec{
		Type:   converterType,
		ClassA: classA,
		ClassB: classB,
	})

	return c
}

func (c *ConfigBuilder) CopyByReference(typeNames ...string) *ConfigBuilder {
	c.cfg.CopyByReferences = append(c.cfg.CopyByReferences, typeNames...)
	return c
}

func (c *ConfigBuilder) AllowedException(typeNames ...string) *ConfigBuilder {
	c.cfg.AllowedExceptions = append(c.cfg.AllowedExceptions, typeNames...)
	return c
}

func (c *ConfigBuilder) Variable(name, value string) *ConfigBuilder {
	c.cfg.Variables = append(c.cfg.Variables, Variable{Name: name, Value: value})
	return c
}

// End returns to the root builder.
func (c *ConfigBuilder) End() *Builder {
	return c.parent
}

// MappingBuilder authors one class-pair mapping.
type MappingBuilder struct {
	mapping *ClassPairMapping
	parent  *Builder
}

// ClassA sets the A-side class and returns its builder.
func (m *MappingBuilder) ClassA(name string) *ClassRefBuilder {
	m.mapping.A = &ClassRef{Name: name}
	return &ClassRefBuilder{ref: m.mapping.A, parent: m}
}

// ClassB sets the B-side class and returns its builder.
func (m *MappingBuilder) ClassB(name string) *ClassRefBuilder {
	m.mapping.B = &ClassRef{Name: name}
	return &ClassRefBuilder{ref: m.mapping.B, parent: m}
}

func (m *MappingBuilder) DateFormat(format string) *MappingBuilder {
	m.mapping.DateFormat = format
	return m
}

func (m *MappingBuilder) BeanFactory(factory string) *MappingBuilder {
	m.mapping.BeanFactory = factory
	return m
}

func (m *MappingBuilder) MapID(id string) *MappingBuilder {
	m.mapping.MapID = id
	return m
}

func (m *MappingBuilder) StopOnErrors(v bool) *MappingBuilder {
	m.mapping.StopOnErrors = tristate.Of(v)
	return m
}

func (m *MappingBuilder) Wildcard(v bool) *MappingBuilder {
	m.mapping.Wildcard = tristate.Of(v)
	return m
}

func (m *MappingBuilder) TrimStrings(v bool) *MappingBuilder {
	m.mapping.TrimStrings = tristate.Of(v)
	return m
}

func (m *MappingBuilder) MapNull(v bool) *MappingBuilder {
	m.mapping.MapNull = tristate.Of(v)
	return m
}

func (m *MappingBuilder) MapEmptyString(v bool) *MappingBuilder {
	m.mapping.MapEmptyString = tristate.Of(v)
	return m
}

func (m *MappingBuilder) Direction(d model.Direction) *MappingBuilder {
	m.mapping.Direction = d
	return m
}

func (m *MappingBuilder) Relationship(r model.Relationship) *MappingBuilder {
	m.mapping.RelationshipType = r
	return m
}

// Fields appends a field pair and returns its builder.
func (m *MappingBuilder) Fields(a, b string) *FieldPairBuilder {
	pair := &FieldPair{A: Field(a), B: Field(b)}
	m.mapping.Entries = append(m.mapping.Entries, pair)

	return &FieldPairBuilder{pair: pair, parent: m}
}

// Exclude appends a field exclude and returns its builder.
func (m *MappingBuilder) Exclude(a, b string) *ExcludeBuilder {
	ex := &FieldExclude{A: Field(a), B: Field(b)}
	m.mapping.Entries = append(m.mapping.Entries, ex)

	return &ExcludeBuilder{exclude: ex, parent: m}
}

// End returns to the root builder.
func (m *MappingBuilder) End() *Builder {
	return m.parent
}

// ClassRefBuilder authors one side of a class-pair mapping.
type ClassRefBuilder struct {
	ref    *ClassRef
	parent *MappingBuilder
}

func (c *ClassRefBuilder) BeanFactory(factory string) *ClassRefBuilder {
	c.ref.BeanFactory = factory
	return c
}

func (c *ClassRefBuilder) FactoryBeanID(id string) *ClassRefBuilder {
	c.ref.FactoryBeanID = id
	return c
}

func (c *ClassRefBuilder) MapGetMethod(name string) *ClassRefBuilder {
	c.ref.MapGetMethod = name
	return c
}

func (c *ClassRefBuilder) MapSetMethod(name string) *ClassRefBuilder {
	c.ref.MapSetMethod = name
	return c
}

func (c *ClassRefBuilder) CreateMethod(name string) *ClassRefBuilder {
	c.ref.CreateMethod = name
	return c
}

func (c *ClassRefBuilder) MapNull(v bool) *ClassRefBuilder {
	c.ref.MapNull = tristate.Of(v)
	return c
}

func (c *ClassRefBuilder) MapEmptyString(v bool) *ClassRefBuilder {
	c.ref.MapEmptyString = tristate.Of(v)
	return c
}

func (c *ClassRefBuilder) Accessible(v bool) *ClassRefBuilder {
	c.ref.Accessible = tristate.Of(v)
	return c
}

// End returns to the mapping builder.
func (c *ClassRefBuilder) End() *MappingBuilder {
	return c.parent
}

// FieldPairBuilder authors a field pair.
type FieldPairBuilder struct {
	pair   *FieldPair
	parent *MappingBuilder
}

// A returns the builder for the A-side field reference.
func (f *FieldPairBuilder) A() *FieldRefBuilder[*FieldPairBuilder] {
	return &FieldRefBuilder[*FieldPairBuilder]{ref: f.pair.A, parent: f}
}

// B returns the builder for the B-side field reference.
func (f *FieldPairBuilder) B() *FieldRefBuilder[*FieldPairBuilder] {
	return &FieldRefBuilder[*FieldPairBuilder]{ref: f.pair.B, parent: f}
}

func (f *FieldPairBuilder) SrcHint(typeNames string) *FieldPairBuilder {
	f.pair.SrcHint = typeNames
	return f
}

func (f *FieldPairBuilder) DestHint(typeNames string) *FieldPairBuilder {
	f.pair.DestHint = typeNames
	return f
}

func (f *FieldPairBuilder) SrcDeepIndexHint(typeNames string) *FieldPairBuilder {
	f.pair.SrcDeepIndexHint = typeNames
	return f
}

func (f *FieldPairBuilder) DestDeepIndexHint(typeNames string) *FieldPairBuilder {
	f.pair.DestDeepIndexHint = typeNames
	return f
}

func (f *FieldPairBuilder) Relationship(r model.Relationship) *FieldPairBuilder {
	f.pair.RelationshipType = r
	return f
}

func (f *FieldPairBuilder) RemoveOrphans(v bool) *FieldPairBuilder {
	f.pair.RemoveOrphans = tristate.Of(v)
	return f
}

func (f *FieldPairBuilder) Direction(d model.Direction) *FieldPairBuilder {
	f.pair.Direction = d
	return f
}

func (f *FieldPairBuilder) MapID(id string) *FieldPairBuilder {
	f.pair.MapID = id
	return f
}

func (f *FieldPairBuilder) CopyByReference(v bool) *FieldPairBuilder {
	f.pair.CopyByReference = tristate.Of(v)
	return f
}

// CustomConverter sets the converter type name.
func (f *FieldPairBuilder) CustomConverter(typeName string) *FieldPairBuilder {
	f.pair.CustomConverter = typeName
	return f
}

// CustomConverterID refers to a converter instance registered with the engine.
func (f *FieldPairBuilder) CustomConverterID(id string) *FieldPairBuilder {
	f.pair.CustomConverterID = id
	return f
}

// CustomConverterParam is passed to the converter uninterpreted.
func (f *FieldPairBuilder) CustomConverterParam(param string) *FieldPairBuilder {
	f.pair.CustomConverterParam = param
	return f
}

// End returns to the mapping builder.
func (f *FieldPairBuilder) End() *MappingBuilder {
	return f.parent
}

// ExcludeBuilder authors a field exclude.
type ExcludeBuilder struct {
	exclude *FieldExclude
	parent  *MappingBuilder
}

func (e *ExcludeBuilder) A() *FieldRefBuilder[*ExcludeBuilder] {
	return &FieldRefBuilder[*ExcludeBuilder]{ref: e.exclude.A, parent: e}
}

func (e *ExcludeBuilder) B() *FieldRefBuilder[*ExcludeBuilder] {
	return &FieldRefBuilder[*ExcludeBuilder]{ref: e.exclude.B, parent: e}
}

func (e *ExcludeBuilder) Direction(d model.Direction) *ExcludeBuilder {
	e.exclude.Direction = d
	return e
}

// End returns to the mapping builder.
func (e *ExcludeBuilder) End() *MappingBuilder {
	return e.parent
}

// FieldRefBuilder authors one field reference. P is the enclosing entry builder.
type FieldRefBuilder[P any] struct {
	ref    *FieldRef
	parent P
}

func (f *FieldRefBuilder[P]) DateFormat(format string) *FieldRefBuilder[P] {
	f.ref.DateFormat = format
	return f
}

func (f *FieldRefBuilder[P]) GetMethod(name string) *FieldRefBuilder[P] {
	f.ref.GetMethod = name
	return f
}

func (f *FieldRefBuilder[P]) SetMethod(name string) *FieldRefBuilder[P] {
	f.ref.SetMethod = name
	return f
}

func (f *FieldRefBuilder[P]) MapGetMethod(name string) *FieldRefBuilder[P] {
	f.ref.MapGetMethod = name
	return f
}

func (f *FieldRefBuilder[P]) MapSetMethod(name string) *FieldRefBuilder[P] {
	f.ref.MapSetMethod = name
	return f
}

func (f *FieldRefBuilder[P]) Key(key string) *FieldRefBuilder[P] {
	f.ref.Key = key
	return f
}

func (f *FieldRefBuilder[P]) CreateMethod(name string) *FieldRefBuilder[P] {
	f.ref.CreateMethod = name
	return f
}

func (f *FieldRefBuilder[P]) Type(t model.FieldType) *FieldRefBuilder[P] {
	f.ref.Type = t
	return f
}

func (f *FieldRefBuilder[P]) Accessible(v bool) *FieldRefBuilder[P] {
	f.ref.Accessible = tristate.Of(v)
	return f
}

// End returns to the entry builder.
func (f *FieldRefBuilder[P]) End() P {
	return f.parent
}
