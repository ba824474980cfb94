package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("  \t"))
	assert.False(t, IsBlank(" a "))
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected []string
	}{
		{name: "blank", in: "  ", expected: nil},
		{name: "single", in: "java.lang.String", expected: []string{"java.lang.String"}},
		{name: "chain", in: "a.B, c.D ,e.F", expected: []string{"a.B", "c.D", "e.F"}},
		{name: "empty items dropped", in: "a.B,,  ,c.D", expected: []string{"a.B", "c.D"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(tt.in))
		})
	}
}

func TestSimpleName(t *testing.T) {
	assert.Equal(t, "Order", SimpleName("beanmap/store.Order"))
	assert.Equal(t, "IOException", SimpleName("java.io.IOException"))
	assert.Equal(t, "Plain", SimpleName("Plain"))
}
