package compile

import (
	"errors"
	"regexp"
	"strconv"

	"beanmap/internal/common"
	"beanmap/internal/diagnostic"
	"beanmap/internal/model"
	"beanmap/internal/spec"
)

var (
	indexedFieldPattern = regexp.MustCompile(`^(.+)\[(\d+)\]$`)
	trailingIndex       = regexp.MustCompile(`\[\d+\]$`)
)

// FieldName is a parsed field token.
type FieldName struct {
	Base    string
	Indexed bool
	// Index is meaningful only when Indexed is set.
	Index int
}

// ParseFieldName splits a token such as "items[2]" into its base name and
// index. Tokens without a trailing "[digits]" suffix are returned unchanged.
// A base that itself ends in an index ("a[1][2]") or an index that does not
// fit in 32 bits is rejected as malformed.
func ParseFieldName(token string) (FieldName, error) {
	if common.IsBlank(token) {
		return FieldName{}, diagnostic.Errorf(diagnostic.CodeMissingFieldName, "field name is empty")
	}

	m := indexedFieldPattern.FindStringSubmatch(token)
	if m == nil {
		return FieldName{Base: token}, nil
	}

	base, digits := m[1], m[2]

	if trailingIndex.MatchString(base) {
		err := diagnostic.Errorf(diagnostic.CodeMalformedIndexedField, "nested index in field name %q", token)
		err.Element = token

		return FieldName{}, err
	}

	idx, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		de := diagnostic.Errorf(diagnostic.CodeMalformedIndexedField, "invalid index in field name %q", token)
		de.Element = token
		de.Err = err

		return FieldName{}, de
	}

	return FieldName{Base: base, Indexed: true, Index: int(idx)}, nil
}

// compileFieldRef resolves one side of a field entry.
func compileFieldRef(ref *spec.FieldRef, side string) (model.FieldDescriptor, error) {
	if ref == nil {
		return model.FieldDescriptor{}, diagnostic.Errorf(diagnostic.CodeMissingFieldName, "field %s is missing", side)
	}

	name, err := ParseFieldName(ref.Name)
	if err != nil {
		var de *diagnostic.Error
		if errors.As(err, &de) && de.Code == diagnostic.CodeMissingFieldName {
			de.Message = "field " + side + " name is empty"
		}

		return model.FieldDescriptor{}, err
	}

	return model.FieldDescriptor{
		Name:         name.Base,
		Indexed:      name.Indexed,
		Index:        name.Index,
		Type:         ref.Type,
		DateFormat:   ref.DateFormat,
		GetMethod:    ref.GetMethod,
		SetMethod:    ref.SetMethod,
		MapGetMethod: ref.MapGetMethod,
		MapSetMethod: ref.MapSetMethod,
		Key:          ref.Key,
		CreateMethod: ref.CreateMethod,
		Accessible:   ref.Accessible,
	}, nil
}
