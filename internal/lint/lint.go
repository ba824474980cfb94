// Package lint reports problems in a mapping specification that do not stop
// it from compiling, and folds compile failures into the same report.
package lint

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"beanmap/internal/compile"
	"beanmap/internal/diagnostic"
	"beanmap/internal/match"
	"beanmap/internal/model"
	"beanmap/internal/spec"
	"beanmap/internal/typeresolve"
)

// Diagnostic codes reported by Check.
const (
	CodeHintUnresolved      = "hint_unresolved"
	CodeDuplicateMapID      = "duplicate_map_id"
	CodeDuplicateField      = "duplicate_field"
	CodeConverterIDAndClass = "converter_id_and_class"
)

// Report is the outcome of Check.
type Report struct {
	// Result is nil when compilation failed.
	Result      *compile.Result
	Diagnostics diagnostic.Diagnostics
}

// Check compiles set and runs every rule over it. Rules run even when
// compilation fails, so one pass surfaces as many problems as possible.
func Check(set *spec.MappingSet, resolver typeresolve.Resolver, opts ...compile.Option) *Report {
	report := &Report{}

	res, err := compile.New(resolver, opts...).Compile(set)
	if err != nil {
		report.Diagnostics.AddFromError(err)
	} else {
		report.Result = res
	}

	if set == nil {
		return report
	}

	checkDuplicateMapIDs(set, &report.Diagnostics)

	for _, m := range set.Mappings {
		if m == nil {
			continue
		}

		pair := label(m)
		checkDuplicateFields(m, pair, &report.Diagnostics)

		for _, entry := range m.Entries {
			fp, ok := entry.(*spec.FieldPair)
			if !ok || fp == nil {
				continue
			}

			checkConverter(fp, pair, &report.Diagnostics)
			checkHints(fp, pair, resolver, &report.Diagnostics)
		}
	}

	return report
}

func checkDuplicateMapIDs(set *spec.MappingSet, d *diagnostic.Diagnostics) {
	ids := lo.FilterMap(set.Mappings, func(m *spec.ClassPairMapping, _ int) (string, bool) {
		return mapID(m), mapID(m) != ""
	})

	for _, id := range lo.FindDuplicates(ids) {
		d.AddError(CodeDuplicateMapID, fmt.Sprintf("map-id %q is used by more than one mapping", id), "", "")
	}
}

func mapID(m *spec.ClassPairMapping) string {
	if m == nil {
		return ""
	}

	return m.MapID
}

// checkDuplicateFields flags A-side fields listed more than once. The last
// entry wins in the engine, which is legal but often unintended.
func checkDuplicateFields(m *spec.ClassPairMapping, pair string, d *diagnostic.Diagnostics) {
	names := lo.FilterMap(m.Entries, func(e spec.Entry, _ int) (string, bool) {
		a := sideA(e)
		if a == nil || a.Name == "" {
			return "", false
		}

		return a.Name, true
	})

	for _, name := range lo.FindDuplicates(names) {
		d.AddInfo(CodeDuplicateField,
			fmt.Sprintf("field %q is mapped more than once; the last entry wins", name), pair, name)
	}
}

func checkConverter(fp *spec.FieldPair, pair string, d *diagnostic.Diagnostics) {
	if fp.CustomConverter != "" && fp.CustomConverterID != "" {
		d.AddWarning(CodeConverterIDAndClass,
			fmt.Sprintf("both converter id %q and converter class %q are set", fp.CustomConverterID, fp.CustomConverter),
			pair, fieldLabel(fp))
	}
}

// checkHints tries to load every hinted type now. Hints are loaded lazily by
// the engine, so a miss is only a warning.
func checkHints(fp *spec.FieldPair, pair string, resolver typeresolve.Resolver, d *diagnostic.Diagnostics) {
	if resolver == nil {
		return
	}

	slots := []struct {
		name string
		text string
	}{
		{"src-hint", fp.SrcHint},
		{"dest-hint", fp.DestHint},
		{"src-deep-index-hint", fp.SrcDeepIndexHint},
		{"dest-deep-index-hint", fp.DestDeepIndexHint},
	}

	for _, slot := range slots {
		for _, name := range model.NewHintContainer(slot.text).Names() {
			_, err := resolver.Resolve(name)
			if err == nil {
				continue
			}

			diag := diagnostic.Diagnostic{
				Severity:  diagnostic.SeverityWarning,
				Code:      CodeHintUnresolved,
				Message:   fmt.Sprintf("%s type %q cannot be resolved: %v", slot.name, name, err),
				TypePair:  pair,
				FieldPath: fieldLabel(fp),
			}

			if l, ok := resolver.(typeresolve.Lister); ok && errors.Is(err, typeresolve.ErrTypeNotFound) {
				diag.Suggestions = match.Closest(name, l.Names(), compile.DefaultMaxSuggestions)
			}

			d.Add(diag)
		}
	}
}

func label(m *spec.ClassPairMapping) string {
	name := func(r *spec.ClassRef) string {
		if r == nil || r.Name == "" {
			return "?"
		}

		return r.Name
	}

	return name(m.A) + "->" + name(m.B)
}

func fieldLabel(fp *spec.FieldPair) string {
	if fp.A == nil || fp.B == nil {
		return ""
	}

	return fp.A.Name + "->" + fp.B.Name
}

// sideA returns the A-side reference, tolerating nil entries.
func sideA(e spec.Entry) *spec.FieldRef {
	switch e := e.(type) {
	case *spec.FieldPair:
		if e != nil {
			return e.A
		}
	case *spec.FieldExclude:
		if e != nil {
			return e.A
		}
	}

	return nil
}
