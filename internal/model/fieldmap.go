package model

import (
	"beanmap/internal/common"
	"beanmap/internal/tristate"
)

// FieldMapKind tags the field-copy strategy of a FieldMap.
type FieldMapKind int

const (
	// KindGeneric copies through convention-based property access.
	KindGeneric FieldMapKind = iota
	// KindCustomAccessor copies through explicitly named get/set methods.
	KindCustomAccessor
	// KindMapKeyed copies through map key lookup and insertion.
	KindMapKeyed
	// KindExclude suppresses wildcard matching of the field pair.
	KindExclude
)

// String returns a human-readable kind name.
func (k FieldMapKind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindCustomAccessor:
		return "custom_accessor"
	case KindMapKeyed:
		return "map_keyed"
	case KindExclude:
		return "exclude"
	default:
		return common.UnknownStr
	}
}

// Strategy is the per-variant payload of a FieldMap. The set of
// implementations is closed: Generic, CustomAccessor, MapKeyed and Exclude.
type Strategy interface {
	Kind() FieldMapKind
	sealed()
}

// Generic is the default property-access strategy.
type Generic struct{}

// CustomAccessor names the methods used instead of inferred accessors.
// Empty names fall back to convention for that side.
type CustomAccessor struct {
	SrcGetMethod  string
	SrcSetMethod  string
	DestGetMethod string
	DestSetMethod string
}

// MapKeyed describes map-based access on either side. Method names are the
// effective ones: the field's own when declared, else the owning class's.
type MapKeyed struct {
	SrcKey           string
	DestKey          string
	SrcMapGetMethod  string
	SrcMapSetMethod  string
	DestMapGetMethod string
	DestMapSetMethod string
	// SrcClassMapped and DestClassMapped record whether the owning class
	// itself is map-accessed.
	SrcClassMapped  bool
	DestClassMapped bool
}

// Exclude carries no payload.
type Exclude struct{}

func (Generic) Kind() FieldMapKind        { return KindGeneric }
func (CustomAccessor) Kind() FieldMapKind { return KindCustomAccessor }
func (MapKeyed) Kind() FieldMapKind       { return KindMapKeyed }
func (Exclude) Kind() FieldMapKind        { return KindExclude }

func (Generic) sealed()        {}
func (CustomAccessor) sealed() {}
func (MapKeyed) sealed()       {}
func (Exclude) sealed()        {}

// FieldDescriptor is one resolved side of a field pair.
type FieldDescriptor struct {
	// Name is the base name with any trailing index stripped.
	Name    string
	Indexed bool
	Index   int

	Type         FieldType
	DateFormat   string
	GetMethod    string
	SetMethod    string
	MapGetMethod string
	MapSetMethod string
	Key          string
	CreateMethod string
	Accessible   tristate.Bool
}

// IsMapAccessed reports whether the field declares map accessor methods.
func (f FieldDescriptor) IsMapAccessed() bool {
	return f.MapGetMethod != "" || f.MapSetMethod != ""
}

// HasCustomAccessor reports whether the field declares a custom get or set method.
func (f FieldDescriptor) HasCustomAccessor() bool {
	return f.GetMethod != "" || f.SetMethod != ""
}

// Hints holds the four optional hint slots of a field pair.
type Hints struct {
	Src           *HintContainer
	Dest          *HintContainer
	SrcDeepIndex  *HintContainer
	DestDeepIndex *HintContainer
}

// IsEmpty reports whether no hint slot is populated.
func (h Hints) IsEmpty() bool {
	return h.Src == nil && h.Dest == nil && h.SrcDeepIndex == nil && h.DestDeepIndex == nil
}

// ConverterRef references a custom converter for one field pair. Param is
// passed through to the converter uninterpreted.
type ConverterRef struct {
	ID       string
	TypeName string
	Param    string
}

// FieldMap is the compiled form of one field pair or field exclude.
type FieldMap struct {
	Strategy Strategy

	Src  FieldDescriptor
	Dest FieldDescriptor

	// Direction and RelationshipType are Inherit unless overridden on the field.
	Direction        Direction
	RelationshipType Relationship
	RemoveOrphans    bool
	CopyByReference  tristate.Bool
	MapID            string

	// Hints and Converter are always empty for KindExclude.
	Hints     Hints
	Converter *ConverterRef
}

// Kind returns the strategy tag.
func (f FieldMap) Kind() FieldMapKind {
	if f.Strategy == nil {
		return KindGeneric
	}

	return f.Strategy.Kind()
}

// EffectiveDirection resolves the field direction against its class map.
func (f FieldMap) EffectiveDirection(cm *ClassMap) Direction {
	return f.Direction.Or(cm.Direction)
}

// EffectiveRelationship resolves the field relationship against its class map.
func (f FieldMap) EffectiveRelationship(cm *ClassMap) Relationship {
	return f.RelationshipType.Or(cm.RelationshipType)
}
