package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beanmap/internal/model"
	"beanmap/internal/tristate"
)

func TestBuilder_FullTree(t *testing.T) {
	set := NewBuilder().
		Configuration().
		StopOnErrors(false).
		Wildcard(true).
		Relationship(model.NonCumulative).
		CustomConverter("com.acme.MoneyConverter", "com.acme.Cents", "com.acme.Amount").
		CopyByReference("java.util.Date", "com.acme.*").
		AllowedException("java.lang.IllegalStateException").
		Variable("pkg", "com.acme").
		End().
		Mapping().
		ClassA("com.acme.Foo").MapGetMethod("get").Accessible(true).End().
		ClassB("com.acme.Bar").BeanFactory("factory").End().
		MapID("foo-bar").
		Direction(model.OneWay).
		Fields("items[2]", "list[2]").
		A().GetMethod("fetchItems").Type(model.FieldTypeIterate).End().
		B().Key("k").End().
		DestHint("com.acme.Line").
		RemoveOrphans(true).
		CustomConverterID("money").
		End().
		Exclude("secret", "secret").Direction(model.OneWay).End().
		Fields("name", "fullName").End().
		End().
		Build()

	require.NotNil(t, set.Configuration)
	cfg := set.Configuration
	assert.Equal(t, tristate.No, cfg.StopOnErrors)
	assert.Equal(t, tristate.Yes, cfg.Wildcard)
	assert.Equal(t, tristate.Inherit, cfg.MapNull)
	assert.Equal(t, model.NonCumulative, cfg.RelationshipType)
	assert.Equal(t, []CustomConverterSpec{{Type: "com.acme.MoneyConverter", ClassA: "com.acme.Cents", ClassB: "com.acme.Amount"}}, cfg.CustomConverters)
	assert.Equal(t, []string{"java.util.Date", "com.acme.*"}, cfg.CopyByReferences)
	assert.Equal(t, []Variable{{Name: "pkg", Value: "com.acme"}}, cfg.Variables)

	require.Len(t, set.Mappings, 1)
	m := set.Mappings[0]
	assert.Equal(t, "com.acme.Foo", m.A.Name)
	assert.Equal(t, "get", m.A.MapGetMethod)
	assert.Equal(t, tristate.Yes, m.A.Accessible)
	assert.Equal(t, "factory", m.B.BeanFactory)
	assert.Equal(t, "foo-bar", m.MapID)
	assert.Equal(t, model.OneWay, m.Direction)

	require.Len(t, m.Entries, 3)

	pair, ok := m.Entries[0].(*FieldPair)
	require.True(t, ok)
	assert.Equal(t, "items[2]", pair.A.Name)
	assert.Equal(t, "fetchItems", pair.A.GetMethod)
	assert.Equal(t, model.FieldTypeIterate, pair.A.Type)
	assert.Equal(t, "k", pair.B.Key)
	assert.Equal(t, "com.acme.Line", pair.DestHint)
	assert.Equal(t, tristate.Yes, pair.RemoveOrphans)
	assert.Equal(t, "money", pair.CustomConverterID)

	ex, ok := m.Entries[1].(*FieldExclude)
	require.True(t, ok)
	a, b := ex.Refs()
	assert.Equal(t, "secret", a.Name)
	assert.Equal(t, "secret", b.Name)
	assert.Equal(t, model.OneWay, ex.Direction)

	last, ok := m.Entries[2].(*FieldPair)
	require.True(t, ok)
	assert.Equal(t, "fullName", last.B.Name)
}

func TestBuilder_ConfigurationIsShared(t *testing.T) {
	b := NewBuilder()
	b.Configuration().MapNull(false)
	b.Configuration().TrimStrings(true)

	set := b.Build()
	assert.Equal(t, tristate.No, set.Configuration.MapNull)
	assert.Equal(t, tristate.Yes, set.Configuration.TrimStrings)
}

func TestBuilder_NoConfiguration(t *testing.T) {
	set := NewBuilder().Mapping().ClassA("a.Foo").End().ClassB("b.Bar").End().End().Build()

	assert.Nil(t, set.Configuration)
	require.Len(t, set.Mappings, 1)
	assert.Empty(t, set.Mappings[0].Entries)
}
