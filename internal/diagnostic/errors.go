package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies a category of compile failure.
type Code string

const (
	CodeMissingFieldName      Code = "missing_field_name"
	CodeClassResolution       Code = "class_resolution"
	CodeAllowedException      Code = "allowed_exception_must_be_runtime_exception"
	CodeMalformedIndexedField Code = "malformed_indexed_field_name"
	CodeInvalidSpecification  Code = "invalid_specification_shape"
)

// Sentinels for errors.Is. They match any *Error with the same code.
var (
	ErrMissingFieldName      = &Error{Code: CodeMissingFieldName, Message: "missing field name"}
	ErrClassResolution       = &Error{Code: CodeClassResolution, Message: "class resolution failed"}
	ErrAllowedException      = &Error{Code: CodeAllowedException, Message: "allowed exception must be a runtime exception"}
	ErrMalformedIndexedField = &Error{Code: CodeMalformedIndexedField, Message: "malformed indexed field name"}
	ErrInvalidSpecification  = &Error{Code: CodeInvalidSpecification, Message: "invalid specification shape"}
)

// Error is a compile failure with enough context to locate it in the input.
type Error struct {
	Code    Code
	Message string
	// TypePair is the class pair being compiled, e.g. "a.Foo->b.Bar".
	TypePair string
	// FieldPath names the field entry, if any.
	FieldPath string
	// Element is the offending name or text.
	Element string
	// Suggestions are close alternatives for an unresolved name.
	Suggestions []string
	// Err is the underlying cause.
	Err error
}

// Errorf builds an *Error with a formatted message.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Error implements error.
func (e *Error) Error() string {
	var b strings.Builder

	if e.TypePair != "" {
		b.WriteString("[" + e.TypePair + "] ")
	}

	if e.FieldPath != "" {
		b.WriteString(e.FieldPath + ": ")
	}

	b.WriteString(e.Message)

	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}

	if len(e.Suggestions) > 0 {
		b.WriteString(" (did you mean " + strings.Join(e.Suggestions, ", ") + "?)")
	}

	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Code == e.Code
}

// WithTypePair returns e with the class pair set, unless already set.
func (e *Error) WithTypePair(pair string) *Error {
	if e.TypePair == "" {
		e.TypePair = pair
	}

	return e
}

// WithField returns e with the field path set, unless already set.
func (e *Error) WithField(path string) *Error {
	if e.FieldPath == "" {
		e.FieldPath = path
	}

	return e
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}

	return ""
}
