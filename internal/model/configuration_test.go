package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beanmap/internal/typeresolve"
)

func TestDefaultConfiguration(t *testing.T) {
	c := DefaultConfiguration()
	assert.True(t, c.MapNull)
	assert.True(t, c.MapEmptyString)
	assert.False(t, c.TrimStrings)
	assert.True(t, c.Wildcard)
	assert.True(t, c.StopOnErrors)
	assert.Equal(t, Cumulative, c.RelationshipType)
}

func TestConfiguration_Variable(t *testing.T) {
	c := &Configuration{Variables: []Variable{
		{Name: "pkg", Value: "com.acme"},
		{Name: "suffix", Value: "DTO"},
		{Name: "pkg", Value: "org.acme"},
	}}

	v, ok := c.Variable("pkg")
	require.True(t, ok)
	assert.Equal(t, "org.acme", v)

	_, ok = c.Variable("missing")
	assert.False(t, ok)
}

func TestCopyByReference_Matches(t *testing.T) {
	assert.True(t, CopyByReference("java.util.Date").Matches("java.util.Date"))
	assert.False(t, CopyByReference("java.util.Date").Matches("java.util.Dates"))
	assert.True(t, CopyByReference("com.acme.*").Matches("com.acme.Money"))
	assert.False(t, CopyByReference("com.acme.*").Matches("org.acme.Money"))

	c := &Configuration{CopyByReferences: []CopyByReference{"com.acme.*"}}
	assert.True(t, c.IsCopyByReference("com.acme.Money"))
	assert.False(t, c.IsCopyByReference("java.lang.String"))
}

func TestConfiguration_ConverterFor(t *testing.T) {
	conv := CustomConverter{
		Converter: &typeresolve.Handle{Name: "c.MoneyConverter"},
		ClassA:    &typeresolve.Handle{Name: "a.Cents"},
		ClassB:    &typeresolve.Handle{Name: "b.Amount"},
	}
	c := &Configuration{CustomConverters: []CustomConverter{conv}}

	got, ok := c.ConverterFor("b.Amount", "a.Cents")
	require.True(t, ok)
	assert.Equal(t, "c.MoneyConverter", got.Converter.Name)

	_, ok = c.ConverterFor("a.Cents", "a.Cents")
	assert.False(t, ok)
	assert.False(t, CustomConverter{}.Applies("a", "b"))
}

func TestConfiguration_IsAllowedException(t *testing.T) {
	c := &Configuration{AllowedExceptions: []*typeresolve.Handle{{Name: "java.lang.IllegalStateException"}}}
	assert.True(t, c.IsAllowedException("java.lang.IllegalStateException"))
	assert.False(t, c.IsAllowedException("java.lang.RuntimeException"))
}
