package specfile

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"beanmap/internal/model"
	"beanmap/internal/spec"
	"beanmap/internal/tristate"
)

// ToMappingSet converts a document into a spec tree. Enum values are
// validated here; names and types are left to the compiler.
func ToMappingSet(doc *Document) (*spec.MappingSet, error) {
	if doc == nil {
		return &spec.MappingSet{}, nil
	}

	set := &spec.MappingSet{}

	if doc.Configuration != nil {
		cfg, err := toGlobalConfig(doc.Configuration)
		if err != nil {
			return nil, fmt.Errorf("configuration: %w", err)
		}

		set.Configuration = cfg
	}

	for i := range doc.Mappings {
		m, err := toMapping(&doc.Mappings[i])
		if err != nil {
			return nil, fmt.Errorf("mappings[%d]: %w", i, err)
		}

		set.Mappings = append(set.Mappings, m)
	}

	return set, nil
}

func toGlobalConfig(c *ConfigDoc) (*spec.GlobalConfig, error) {
	rel, err := model.ParseRelationship(c.RelationshipType)
	if err != nil {
		return nil, err
	}

	return &spec.GlobalConfig{
		DateFormat:       c.DateFormat,
		BeanFactory:      c.BeanFactory,
		MapNull:          tristate.FromPtr(c.MapNull),
		MapEmptyString:   tristate.FromPtr(c.MapEmptyString),
		TrimStrings:      tristate.FromPtr(c.TrimStrings),
		Wildcard:         tristate.FromPtr(c.Wildcard),
		StopOnErrors:     tristate.FromPtr(c.StopOnErrors),
		RelationshipType: rel,
		CustomConverters: mapOrNil(c.CustomConverters, func(d ConverterDoc, _ int) spec.CustomConverterSpec {
			return spec.CustomConverterSpec{Type: d.Type, ClassA: d.ClassA, ClassB: d.ClassB}
		}),
		CopyByReferences:  c.CopyByReferences,
		AllowedExceptions: c.AllowedExceptions,
		Variables: mapOrNil(c.Variables, func(v VariableDoc, _ int) spec.Variable {
			return spec.Variable{Name: v.Name, Value: v.Value}
		}),
	}, nil
}

func toMapping(d *MappingDoc) (*spec.ClassPairMapping, error) {
	dir, err := model.ParseDirection(d.Direction)
	if err != nil {
		return nil, err
	}

	rel, err := model.ParseRelationship(d.RelationshipType)
	if err != nil {
		return nil, err
	}

	m := &spec.ClassPairMapping{
		A:                toClassRef(d.ClassA),
		B:                toClassRef(d.ClassB),
		DateFormat:       d.DateFormat,
		BeanFactory:      d.BeanFactory,
		MapID:            d.MapID,
		StopOnErrors:     tristate.FromPtr(d.StopOnErrors),
		Wildcard:         tristate.FromPtr(d.Wildcard),
		TrimStrings:      tristate.FromPtr(d.TrimStrings),
		MapNull:          tristate.FromPtr(d.MapNull),
		MapEmptyString:   tristate.FromPtr(d.MapEmptyString),
		Direction:        dir,
		RelationshipType: rel,
	}

	for i := range d.Fields {
		entry, err := toEntry(&d.Fields[i])
		if err != nil {
			return nil, fmt.Errorf("fields[%d]: %w", i, err)
		}

		m.Entries = append(m.Entries, entry)
	}

	return m, nil
}

func toClassRef(d *ClassRefDoc) *spec.ClassRef {
	if d == nil {
		return nil
	}

	return &spec.ClassRef{
		Name:           d.Name,
		BeanFactory:    d.BeanFactory,
		FactoryBeanID:  d.FactoryBeanID,
		MapGetMethod:   d.MapGetMethod,
		MapSetMethod:   d.MapSetMethod,
		CreateMethod:   d.CreateMethod,
		MapNull:        tristate.FromPtr(d.MapNull),
		MapEmptyString: tristate.FromPtr(d.MapEmptyString),
		Accessible:     tristate.FromPtr(d.Accessible),
	}
}

func toEntry(d *FieldDoc) (spec.Entry, error) {
	a, err := toFieldRef(d.A)
	if err != nil {
		return nil, fmt.Errorf("a: %w", err)
	}

	b, err := toFieldRef(d.B)
	if err != nil {
		return nil, fmt.Errorf("b: %w", err)
	}

	dir, err := model.ParseDirection(d.Direction)
	if err != nil {
		return nil, err
	}

	if d.Exclude {
		if err := checkExclude(d); err != nil {
			return nil, err
		}

		return &spec.FieldExclude{A: a, B: b, Direction: dir}, nil
	}

	rel, err := model.ParseRelationship(d.RelationshipType)
	if err != nil {
		return nil, err
	}

	return &spec.FieldPair{
		A:                    a,
		B:                    b,
		SrcHint:              d.AHint,
		DestHint:             d.BHint,
		SrcDeepIndexHint:     d.ADeepIndexHint,
		DestDeepIndexHint:    d.BDeepIndexHint,
		RelationshipType:     rel,
		RemoveOrphans:        tristate.FromPtr(d.RemoveOrphans),
		Direction:            dir,
		MapID:                d.MapID,
		CopyByReference:      tristate.FromPtr(d.CopyByReference),
		CustomConverter:      d.CustomConverter,
		CustomConverterID:    d.CustomConverterID,
		CustomConverterParam: d.CustomConverterParam,
	}, nil
}

// checkExclude rejects attributes an exclude cannot carry.
func checkExclude(d *FieldDoc) error {
	var errs []error

	if d.AHint != "" || d.BHint != "" || d.ADeepIndexHint != "" || d.BDeepIndexHint != "" {
		errs = append(errs, errors.New("an exclude cannot carry hints"))
	}

	if d.CustomConverter != "" || d.CustomConverterID != "" || d.CustomConverterParam != "" {
		errs = append(errs, errors.New("an exclude cannot carry a custom converter"))
	}

	if d.RelationshipType != "" || d.RemoveOrphans != nil || d.CopyByReference != nil || d.MapID != "" {
		errs = append(errs, errors.New("an exclude only accepts a, b and direction"))
	}

	return errors.Join(errs...)
}

func toFieldRef(d *FieldRefDoc) (*spec.FieldRef, error) {
	if d == nil {
		return nil, nil
	}

	ft, err := model.ParseFieldType(d.Type)
	if err != nil {
		return nil, err
	}

	return &spec.FieldRef{
		Name:         d.Name,
		DateFormat:   d.DateFormat,
		GetMethod:    d.GetMethod,
		SetMethod:    d.SetMethod,
		MapGetMethod: d.MapGetMethod,
		MapSetMethod: d.MapSetMethod,
		Key:          d.Key,
		CreateMethod: d.CreateMethod,
		Type:         ft,
		Accessible:   tristate.FromPtr(d.Accessible),
	}, nil
}

// FromMappingSet converts a spec tree into a document. Unknown entry kinds
// and nil nodes are skipped.
func FromMappingSet(set *spec.MappingSet) *Document {
	doc := &Document{}
	if set == nil {
		return doc
	}

	if c := set.Configuration; c != nil {
		doc.Configuration = &ConfigDoc{
			DateFormat:       c.DateFormat,
			BeanFactory:      c.BeanFactory,
			MapNull:          c.MapNull.Ptr(),
			MapEmptyString:   c.MapEmptyString.Ptr(),
			TrimStrings:      c.TrimStrings.Ptr(),
			Wildcard:         c.Wildcard.Ptr(),
			StopOnErrors:     c.StopOnErrors.Ptr(),
			RelationshipType: c.RelationshipType.String(),
			CustomConverters: mapOrNil(c.CustomConverters, func(s spec.CustomConverterSpec, _ int) ConverterDoc {
				return ConverterDoc{Type: s.Type, ClassA: s.ClassA, ClassB: s.ClassB}
			}),
			CopyByReferences:  c.CopyByReferences,
			AllowedExceptions: c.AllowedExceptions,
			Variables: mapOrNil(c.Variables, func(v spec.Variable, _ int) VariableDoc {
				return VariableDoc{Name: v.Name, Value: v.Value}
			}),
		}
	}

	for _, m := range lo.Compact(set.Mappings) {
		doc.Mappings = append(doc.Mappings, fromMapping(m))
	}

	return doc
}

func fromMapping(m *spec.ClassPairMapping) MappingDoc {
	d := MappingDoc{
		ClassA:           fromClassRef(m.A),
		ClassB:           fromClassRef(m.B),
		MapID:            m.MapID,
		DateFormat:       m.DateFormat,
		BeanFactory:      m.BeanFactory,
		Direction:        m.Direction.String(),
		RelationshipType: m.RelationshipType.String(),
		StopOnErrors:     m.StopOnErrors.Ptr(),
		Wildcard:         m.Wildcard.Ptr(),
		TrimStrings:      m.TrimStrings.Ptr(),
		MapNull:          m.MapNull.Ptr(),
		MapEmptyString:   m.MapEmptyString.Ptr(),
	}

	for _, entry := range m.Entries {
		switch e := entry.(type) {
		case *spec.FieldPair:
			if e == nil {
				continue
			}

			d.Fields = append(d.Fields, FieldDoc{
				A:                    fromFieldRef(e.A),
				B:                    fromFieldRef(e.B),
				AHint:                e.SrcHint,
				BHint:                e.DestHint,
				ADeepIndexHint:       e.SrcDeepIndexHint,
				BDeepIndexHint:       e.DestDeepIndexHint,
				Direction:            e.Direction.String(),
				RelationshipType:     e.RelationshipType.String(),
				RemoveOrphans:        e.RemoveOrphans.Ptr(),
				MapID:                e.MapID,
				CopyByReference:      e.CopyByReference.Ptr(),
				CustomConverter:      e.CustomConverter,
				CustomConverterID:    e.CustomConverterID,
				CustomConverterParam: e.CustomConverterParam,
			})
		case *spec.FieldExclude:
			if e == nil {
				continue
			}

			d.Fields = append(d.Fields, FieldDoc{
				A:         fromFieldRef(e.A),
				B:         fromFieldRef(e.B),
				Exclude:   true,
				Direction: e.Direction.String(),
			})
		}
	}

	return d
}

func fromClassRef(r *spec.ClassRef) *ClassRefDoc {
	if r == nil {
		return nil
	}

	return &ClassRefDoc{
		Name:           r.Name,
		BeanFactory:    r.BeanFactory,
		FactoryBeanID:  r.FactoryBeanID,
		MapGetMethod:   r.MapGetMethod,
		MapSetMethod:   r.MapSetMethod,
		CreateMethod:   r.CreateMethod,
		MapNull:        r.MapNull.Ptr(),
		MapEmptyString: r.MapEmptyString.Ptr(),
		Accessible:     r.Accessible.Ptr(),
	}
}

func fromFieldRef(r *spec.FieldRef) *FieldRefDoc {
	if r == nil {
		return nil
	}

	return &FieldRefDoc{
		Name:         r.Name,
		DateFormat:   r.DateFormat,
		GetMethod:    r.GetMethod,
		SetMethod:    r.SetMethod,
		MapGetMethod: r.MapGetMethod,
		MapSetMethod: r.MapSetMethod,
		Key:          r.Key,
		CreateMethod: r.CreateMethod,
		Type:         string(r.Type),
		Accessible:   r.Accessible.Ptr(),
	}
}

// mapOrNil is lo.Map that keeps empty input nil, so absent lists stay absent.
func mapOrNil[T, R any](in []T, f func(T, int) R) []R {
	if len(in) == 0 {
		return nil
	}

	return lo.Map(in, f)
}
