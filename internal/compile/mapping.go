package compile

import (
	"fmt"

	"beanmap/internal/diagnostic"
	"beanmap/internal/model"
	"beanmap/internal/spec"
)

// CompileMapping compiles one class-pair mapping. Any failing entry aborts
// the whole mapping.
func (c *Compiler) CompileMapping(m *spec.ClassPairMapping) (*model.ClassMap, error) {
	if m == nil {
		return nil, diagnostic.Errorf(diagnostic.CodeInvalidSpecification, "mapping is nil")
	}

	pair := mappingLabel(m)

	src, err := c.resolveClass(m.A, "A")
	if err != nil {
		return nil, withTypePair(err, pair)
	}

	dest, err := c.resolveClass(m.B, "B")
	if err != nil {
		return nil, withTypePair(err, pair)
	}

	cm := &model.ClassMap{
		Src:              src,
		Dest:             dest,
		Direction:        m.Direction.Or(model.DefaultDirection),
		RelationshipType: m.RelationshipType.Or(model.DefaultRelationship),
		DateFormat:       m.DateFormat,
		BeanFactory:      m.BeanFactory,
		MapID:            m.MapID,
		MapNull:          m.MapNull,
		MapEmptyString:   m.MapEmptyString,
		Wildcard:         m.Wildcard,
		TrimStrings:      m.TrimStrings,
		StopOnErrors:     m.StopOnErrors,
		FieldMaps:        make([]model.FieldMap, 0, len(m.Entries)),
	}

	for i, entry := range m.Entries {
		fm, err := c.compileEntry(cm, entry)
		if err != nil {
			return nil, withField(withTypePair(err, cm.Key()), entryLabel(i, entry))
		}

		cm.FieldMaps = append(cm.FieldMaps, fm)
	}

	c.logger.Debug().
		Str("class_map", cm.Key()).
		Str("direction", cm.Direction.String()).
		Int("fields", len(cm.FieldMaps)).
		Msg("class map compiled")

	return cm, nil
}

func (c *Compiler) compileEntry(cm *model.ClassMap, entry spec.Entry) (model.FieldMap, error) {
	switch e := entry.(type) {
	case *spec.FieldPair:
		if e == nil {
			break
		}

		return compileFieldPair(cm, e)
	case *spec.FieldExclude:
		if e == nil {
			break
		}

		return compileFieldExclude(e)
	}

	return model.FieldMap{}, diagnostic.Errorf(diagnostic.CodeInvalidSpecification,
		"unexpected entry %T, want a field pair or a field exclude", entry)
}

func compileFieldPair(cm *model.ClassMap, pair *spec.FieldPair) (model.FieldMap, error) {
	src, dest, err := compileFieldRefs(pair.A, pair.B)
	if err != nil {
		return model.FieldMap{}, err
	}

	kind := SelectKind(src, dest, cm.Src, cm.Dest)

	return model.FieldMap{
		Strategy:         buildStrategy(kind, src, dest, cm.Src, cm.Dest),
		Src:              src,
		Dest:             dest,
		Direction:        pair.Direction,
		RelationshipType: pair.RelationshipType,
		RemoveOrphans:    pair.RemoveOrphans.Resolve(false),
		CopyByReference:  pair.CopyByReference,
		MapID:            pair.MapID,
		Hints:            compileHints(pair),
		Converter:        compileConverterRef(pair),
	}, nil
}

// compileFieldExclude ignores class-level accessors: an exclude only
// suppresses wildcard matching.
func compileFieldExclude(ex *spec.FieldExclude) (model.FieldMap, error) {
	src, dest, err := compileFieldRefs(ex.A, ex.B)
	if err != nil {
		return model.FieldMap{}, err
	}

	return model.FieldMap{
		Strategy:  model.Exclude{},
		Src:       src,
		Dest:      dest,
		Direction: ex.Direction,
	}, nil
}

func compileFieldRefs(a, b *spec.FieldRef) (model.FieldDescriptor, model.FieldDescriptor, error) {
	src, err := compileFieldRef(a, "A")
	if err != nil {
		return model.FieldDescriptor{}, model.FieldDescriptor{}, err
	}

	dest, err := compileFieldRef(b, "B")
	if err != nil {
		return model.FieldDescriptor{}, model.FieldDescriptor{}, err
	}

	return src, dest, nil
}

// mappingLabel names a mapping before its classes are resolved.
func mappingLabel(m *spec.ClassPairMapping) string {
	name := func(r *spec.ClassRef) string {
		if r == nil || r.Name == "" {
			return "?"
		}

		return r.Name
	}

	return name(m.A) + "->" + name(m.B)
}

// entryLabel names an entry by its field names, or by position when a side
// is missing.
func entryLabel(i int, entry spec.Entry) string {
	switch e := entry.(type) {
	case *spec.FieldPair:
		if e != nil && e.A != nil && e.B != nil {
			return e.A.Name + "->" + e.B.Name
		}
	case *spec.FieldExclude:
		if e != nil && e.A != nil && e.B != nil {
			return "exclude " + e.A.Name + "->" + e.B.Name
		}
	}

	return fmt.Sprintf("entry #%d", i)
}

func withTypePair(err error, pair string) error {
	if de, ok := err.(*diagnostic.Error); ok {
		return de.WithTypePair(pair)
	}

	return err
}

func withField(err error, path string) error {
	if de, ok := err.(*diagnostic.Error); ok {
		return de.WithField(path)
	}

	return err
}
