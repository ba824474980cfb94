package model

import (
	"fmt"
	"strings"

	"beanmap/internal/common"
)

// Direction controls whether a mapping applies A->B only or both ways.
type Direction int

const (
	// DirectionInherit defers to the enclosing scope.
	DirectionInherit Direction = iota
	// Bidirectional maps A->B and B->A.
	Bidirectional
	// OneWay maps A->B only.
	OneWay
)

// String returns the textual form used in mapping files.
func (d Direction) String() string {
	switch d {
	case DirectionInherit:
		return ""
	case Bidirectional:
		return "bi-directional"
	case OneWay:
		return "one-way"
	default:
		return common.UnknownStr
	}
}

// Or returns d when set, otherwise fallback.
func (d Direction) Or(fallback Direction) Direction {
	if d == DirectionInherit {
		return fallback
	}

	return d
}

// ParseDirection parses "bi-directional" or "one-way". Blank input yields
// DirectionInherit.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DirectionInherit, nil
	case "bi-directional", "bidirectional":
		return Bidirectional, nil
	case "one-way", "oneway":
		return OneWay, nil
	default:
		return DirectionInherit, fmt.Errorf("invalid direction %q (expected 'bi-directional' or 'one-way')", s)
	}
}

// Relationship is the collection policy for collection-valued fields.
type Relationship int

const (
	// RelationshipInherit defers to the enclosing scope.
	RelationshipInherit Relationship = iota
	// Cumulative appends elements to the destination collection.
	Cumulative
	// NonCumulative updates matching elements and adds the rest.
	NonCumulative
)

// String returns the textual form used in mapping files.
func (r Relationship) String() string {
	switch r {
	case RelationshipInherit:
		return ""
	case Cumulative:
		return "cumulative"
	case NonCumulative:
		return "non-cumulative"
	default:
		return common.UnknownStr
	}
}

// Or returns r when set, otherwise fallback.
func (r Relationship) Or(fallback Relationship) Relationship {
	if r == RelationshipInherit {
		return fallback
	}

	return r
}

// ParseRelationship parses "cumulative" or "non-cumulative". Blank input
// yields RelationshipInherit.
func ParseRelationship(s string) (Relationship, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return RelationshipInherit, nil
	case "cumulative":
		return Cumulative, nil
	case "non-cumulative", "noncumulative":
		return NonCumulative, nil
	default:
		return RelationshipInherit, fmt.Errorf("invalid relationship type %q (expected 'cumulative' or 'non-cumulative')", s)
	}
}

// FieldType marks how the engine should treat a field value.
type FieldType string

const (
	// FieldTypeDefault lets the engine infer the field type.
	FieldTypeDefault FieldType = ""
	// FieldTypeIterate treats the field as an iterable to walk element by element.
	FieldTypeIterate FieldType = "iterate"
	// FieldTypeGeneric treats the field as an opaque generic value.
	FieldTypeGeneric FieldType = "generic"
)

// ParseFieldType parses a field type marker.
func ParseFieldType(s string) (FieldType, error) {
	switch ft := FieldType(strings.ToLower(strings.TrimSpace(s))); ft {
	case FieldTypeDefault, FieldTypeIterate, FieldTypeGeneric:
		return ft, nil
	default:
		return FieldTypeDefault, fmt.Errorf("invalid field type %q (expected 'iterate' or 'generic')", s)
	}
}

// System defaults applied when no configuration level sets a value.
const (
	DefaultMapNull        = true
	DefaultMapEmptyString = true
	DefaultTrimStrings    = false
	DefaultWildcard       = true
	DefaultStopOnErrors   = true
	DefaultDirection      = Bidirectional
	DefaultRelationship   = Cumulative
)
