package typeresolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beanmap/internal/analyze"
)

func buildTestGraph() *analyze.TypeGraph {
	graph := analyze.NewTypeGraph()

	exc := analyze.TypeID{PkgPath: "example.com/shop/store", Name: "Exception"}
	rte := analyze.TypeID{PkgPath: "example.com/shop/store", Name: "RuntimeException"}
	state := analyze.TypeID{PkgPath: "example.com/shop/store", Name: "StateException"}
	order := analyze.TypeID{PkgPath: "example.com/shop/store", Name: "Order"}
	whOrder := analyze.TypeID{PkgPath: "example.com/shop/warehouse", Name: "Order"}

	graph.Add(&analyze.TypeInfo{ID: exc, Kind: analyze.TypeKindStruct})
	graph.Add(&analyze.TypeInfo{ID: rte, Kind: analyze.TypeKindStruct, Embeds: []analyze.TypeID{exc}})
	graph.Add(&analyze.TypeInfo{ID: state, Kind: analyze.TypeKindStruct, Embeds: []analyze.TypeID{rte}})
	graph.Add(&analyze.TypeInfo{ID: order, Kind: analyze.TypeKindStruct})
	graph.Add(&analyze.TypeInfo{ID: whOrder, Kind: analyze.TypeKindStruct})

	return graph
}

func TestGraphResolver_NameForms(t *testing.T) {
	r := NewGraphResolver(buildTestGraph())

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "full path", input: "example.com/shop/warehouse.Order", expected: "example.com/shop/warehouse.Order"},
		{name: "suffix", input: "warehouse.Order", expected: "example.com/shop/warehouse.Order"},
		{name: "name only picks sorted first", input: "Order", expected: "example.com/shop/store.Order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := r.Resolve(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, h.Name)
			assert.Equal(t, "go", h.Origin)
		})
	}
}

func TestGraphResolver_Ancestors(t *testing.T) {
	r := NewGraphResolver(buildTestGraph())

	h, err := r.Resolve("store.StateException")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"example.com/shop/store.RuntimeException",
		"example.com/shop/store.Exception",
	}, h.Ancestors)
	assert.True(t, h.IsSubtypeOf("example.com/shop/store.RuntimeException"))
}

func TestGraphResolver_NotFound(t *testing.T) {
	r := NewGraphResolver(buildTestGraph())

	for _, name := range []string{"", "store.", ".Order", "billing.Order", "Missing"} {
		_, err := r.Resolve(name)
		assert.ErrorIs(t, err, ErrTypeNotFound, name)
	}

	_, err := NewGraphResolver(nil).Resolve("Order")
	assert.ErrorIs(t, err, ErrTypeNotFound)
}

func TestGraphResolver_Names(t *testing.T) {
	names := NewGraphResolver(buildTestGraph()).Names()
	require.Len(t, names, 5)
	assert.Equal(t, "example.com/shop/store.Exception", names[0])
	assert.Nil(t, NewGraphResolver(nil).Names())
}
