package compile

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beanmap/internal/diagnostic"
	"beanmap/internal/model"
	"beanmap/internal/spec"
	"beanmap/internal/tristate"
	"beanmap/internal/typeresolve"
)

func testRegistry(t *testing.T) *typeresolve.Registry {
	t.Helper()

	r := typeresolve.NewJVMRegistry()
	for _, name := range []string{
		"com.acme.Foo",
		"com.acme.Bar",
		"com.acme.Line",
		"com.acme.MoneyConverter",
		"com.acme.Cents",
		"com.acme.Amount",
	} {
		require.NoError(t, r.Register(name, "java.lang.Object"))
	}

	return r
}

func TestCompile_FooBarGeneric(t *testing.T) {
	set := spec.NewBuilder().
		Mapping().
		ClassA("com.acme.Foo").End().
		ClassB("com.acme.Bar").End().
		Fields("name", "fullName").End().
		End().
		Build()

	res, err := New(testRegistry(t)).Compile(set)
	require.NoError(t, err)

	require.Len(t, res.ClassMaps, 1)
	cm := res.ClassMaps[0]
	assert.Equal(t, "com.acme.Foo", cm.Src.Name())
	assert.Equal(t, "com.acme.Bar", cm.Dest.Name())
	assert.Equal(t, model.Bidirectional, cm.Direction)
	assert.Equal(t, model.Cumulative, cm.RelationshipType)

	require.Len(t, cm.FieldMaps, 1)
	fm := cm.FieldMaps[0]
	assert.Equal(t, model.KindGeneric, fm.Kind())
	assert.Equal(t, "name", fm.Src.Name)
	assert.Equal(t, "fullName", fm.Dest.Name)
	assert.False(t, fm.RemoveOrphans)
	assert.Equal(t, model.DirectionInherit, fm.Direction)
	assert.Equal(t, model.Bidirectional, fm.EffectiveDirection(cm))
	assert.True(t, fm.Hints.IsEmpty())
	assert.Nil(t, fm.Converter)

	// Absent global configuration compiles to the defaults.
	assert.Equal(t, model.DefaultConfiguration(), res.Configuration)
}

func TestCompile_IndexedFields(t *testing.T) {
	set := spec.NewBuilder().
		Mapping().
		ClassA("com.acme.Foo").End().
		ClassB("com.acme.Bar").End().
		Fields("items[2]", "list[2]").End().
		End().
		Build()

	res, err := New(testRegistry(t)).Compile(set)
	require.NoError(t, err)

	fm := res.ClassMaps[0].FieldMaps[0]
	assert.Equal(t, model.FieldDescriptor{Name: "items", Indexed: true, Index: 2}, fm.Src)
	assert.Equal(t, model.FieldDescriptor{Name: "list", Indexed: true, Index: 2}, fm.Dest)
}

func TestCompile_ExcludeIgnoresClassAccessors(t *testing.T) {
	set := spec.NewBuilder().
		Mapping().
		ClassA("com.acme.Foo").MapGetMethod("get").MapSetMethod("put").End().
		ClassB("com.acme.Bar").End().
		Exclude("secret", "secret").End().
		End().
		Build()

	res, err := New(testRegistry(t)).Compile(set)
	require.NoError(t, err)

	cm := res.ClassMaps[0]
	require.Len(t, cm.FieldMaps, 1)

	fm := cm.FieldMaps[0]
	assert.Equal(t, model.KindExclude, fm.Kind())
	assert.Equal(t, model.Exclude{}, fm.Strategy)
	assert.True(t, fm.Hints.IsEmpty())
	assert.Nil(t, fm.Converter)
	assert.Equal(t, "secret", fm.Src.Name)
	assert.True(t, cm.IsSrcMapAccessed())
}

func TestCompile_FieldPairAttributes(t *testing.T) {
	set := spec.NewBuilder().
		Mapping().
		ClassA("com.acme.Foo").End().
		ClassB("com.acme.Bar").End().
		Fields("lines", "entries").
		A().GetMethod("fetchLines").Type(model.FieldTypeIterate).End().
		B().DateFormat("yyyy-MM-dd").Accessible(true).End().
		SrcHint("com.acme.Line").
		DestDeepIndexHint("com.acme.Line, com.acme.Missing").
		Relationship(model.NonCumulative).
		Direction(model.OneWay).
		RemoveOrphans(true).
		CopyByReference(false).
		MapID("lines").
		CustomConverter("com.acme.MoneyConverter").
		CustomConverterParam("scale=2").
		End().
		End().
		Build()

	res, err := New(testRegistry(t)).Compile(set)
	require.NoError(t, err)

	fm := res.ClassMaps[0].FieldMaps[0]
	assert.Equal(t, model.KindCustomAccessor, fm.Kind())
	assert.Equal(t, model.CustomAccessor{SrcGetMethod: "fetchLines"}, fm.Strategy)
	assert.Equal(t, model.FieldTypeIterate, fm.Src.Type)
	assert.Equal(t, "yyyy-MM-dd", fm.Dest.DateFormat)
	assert.Equal(t, tristate.Yes, fm.Dest.Accessible)
	assert.Equal(t, model.NonCumulative, fm.RelationshipType)
	assert.Equal(t, model.OneWay, fm.Direction)
	assert.True(t, fm.RemoveOrphans)
	assert.Equal(t, tristate.No, fm.CopyByReference)
	assert.Equal(t, "lines", fm.MapID)
	assert.Equal(t, &model.ConverterRef{TypeName: "com.acme.MoneyConverter", Param: "scale=2"}, fm.Converter)

	// Hints stay as text; the unknown type does not fail compilation.
	require.NotNil(t, fm.Hints.Src)
	assert.Nil(t, fm.Hints.Dest)
	assert.Nil(t, fm.Hints.SrcDeepIndex)
	require.NotNil(t, fm.Hints.DestDeepIndex)
	assert.Equal(t, []string{"com.acme.Line", "com.acme.Missing"}, fm.Hints.DestDeepIndex.Names())
}

func TestCompile_MapKeyedFromClass(t *testing.T) {
	set := spec.NewBuilder().
		Mapping().
		ClassA("java.util.HashMap").MapGetMethod("get").MapSetMethod("put").End().
		ClassB("com.acme.Bar").End().
		Fields("name", "fullName").A().Key("full-name").End().End().
		End().
		Build()

	res, err := New(testRegistry(t)).Compile(set)
	require.NoError(t, err)

	fm := res.ClassMaps[0].FieldMaps[0]
	require.Equal(t, model.KindMapKeyed, fm.Kind())

	mk, ok := fm.Strategy.(model.MapKeyed)
	require.True(t, ok)
	assert.Equal(t, "full-name", mk.SrcKey)
	assert.Equal(t, "get", mk.SrcMapGetMethod)
	assert.True(t, mk.SrcClassMapped)
	assert.False(t, mk.DestClassMapped)
}

func TestCompile_MappingOverrides(t *testing.T) {
	set := spec.NewBuilder().
		Mapping().
		ClassA("com.acme.Foo").MapNull(false).End().
		ClassB("com.acme.Bar").Accessible(true).End().
		Direction(model.OneWay).
		Relationship(model.NonCumulative).
		DateFormat("dd/MM/yyyy").
		BeanFactory("beans").
		MapID("foo-bar").
		Wildcard(false).
		StopOnErrors(true).
		End().
		Build()

	res, err := New(testRegistry(t)).Compile(set)
	require.NoError(t, err)

	cm := res.ClassMaps[0]
	assert.Equal(t, model.OneWay, cm.Direction)
	assert.Equal(t, model.NonCumulative, cm.RelationshipType)
	assert.Equal(t, "dd/MM/yyyy", cm.DateFormat)
	assert.Equal(t, "beans", cm.BeanFactory)
	assert.Equal(t, "foo-bar", cm.MapID)
	assert.Equal(t, tristate.No, cm.Wildcard)
	assert.Equal(t, tristate.Yes, cm.StopOnErrors)
	assert.Equal(t, tristate.Inherit, cm.MapNull)
	assert.Equal(t, tristate.Inherit, cm.TrimStrings)
	assert.Equal(t, tristate.No, cm.Src.MapNull)
	assert.Equal(t, tristate.Yes, cm.Dest.Accessible)
	assert.Empty(t, cm.FieldMaps)
}

func TestCompile_EntryOrderPreserved(t *testing.T) {
	set := spec.NewBuilder().
		Mapping().
		ClassA("com.acme.Foo").End().
		ClassB("com.acme.Bar").End().
		Fields("a", "a").End().
		Exclude("b", "b").End().
		Fields("c", "c").End().
		Fields("a", "z").End().
		End().
		Build()

	res, err := New(testRegistry(t)).Compile(set)
	require.NoError(t, err)

	var got []string
	for _, fm := range res.ClassMaps[0].FieldMaps {
		got = append(got, fm.Kind().String()+":"+fm.Src.Name+"->"+fm.Dest.Name)
	}

	assert.Equal(t, []string{"generic:a->a", "exclude:b->b", "generic:c->c", "generic:a->z"}, got)
}

func TestCompile_MappingsInDeclarationOrder(t *testing.T) {
	b := spec.NewBuilder()
	b.Mapping().ClassA("com.acme.Foo").End().ClassB("com.acme.Bar").End()
	b.Mapping().ClassA("com.acme.Cents").End().ClassB("com.acme.Amount").End()
	b.Mapping().ClassA("com.acme.Bar").End().ClassB("com.acme.Foo").End()

	res, err := New(testRegistry(t)).Compile(b.Build())
	require.NoError(t, err)

	keys := make([]string, 0, len(res.ClassMaps))
	for _, cm := range res.ClassMaps {
		keys = append(keys, cm.Key())
	}

	assert.Equal(t, []string{
		"com.acme.Foo->com.acme.Bar",
		"com.acme.Cents->com.acme.Amount",
		"com.acme.Bar->com.acme.Foo",
	}, keys)
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name      string
		set       *spec.MappingSet
		expected  error
		typePair  string
		fieldPath string
	}{
		{
			name:     "nil set",
			set:      nil,
			expected: diagnostic.ErrInvalidSpecification,
		},
		{
			name:     "nil mapping",
			set:      &spec.MappingSet{Mappings: []*spec.ClassPairMapping{nil}},
			expected: diagnostic.ErrInvalidSpecification,
		},
		{
			name: "unknown class",
			set: spec.NewBuilder().Mapping().
				ClassA("com.acme.Fooo").End().
				ClassB("com.acme.Bar").End().
				End().Build(),
			expected: diagnostic.ErrClassResolution,
			typePair: "com.acme.Fooo->com.acme.Bar",
		},
		{
			name: "missing class B",
			set: &spec.MappingSet{Mappings: []*spec.ClassPairMapping{
				{A: &spec.ClassRef{Name: "com.acme.Foo"}},
			}},
			expected: diagnostic.ErrClassResolution,
			typePair: "com.acme.Foo->?",
		},
		{
			name: "blank field name",
			set: spec.NewBuilder().Mapping().
				ClassA("com.acme.Foo").End().
				ClassB("com.acme.Bar").End().
				Fields("name", "").End().
				End().Build(),
			expected:  diagnostic.ErrMissingFieldName,
			typePair:  "com.acme.Foo->com.acme.Bar",
			fieldPath: "name->",
		},
		{
			name: "missing field side",
			set: &spec.MappingSet{Mappings: []*spec.ClassPairMapping{{
				A:       &spec.ClassRef{Name: "com.acme.Foo"},
				B:       &spec.ClassRef{Name: "com.acme.Bar"},
				Entries: []spec.Entry{&spec.FieldExclude{A: spec.Field("secret")}},
			}}},
			expected:  diagnostic.ErrMissingFieldName,
			typePair:  "com.acme.Foo->com.acme.Bar",
			fieldPath: "entry #0",
		},
		{
			name: "malformed index",
			set: spec.NewBuilder().Mapping().
				ClassA("com.acme.Foo").End().
				ClassB("com.acme.Bar").End().
				Fields("ok", "ok").End().
				Fields("a[1][2]", "b").End().
				End().Build(),
			expected:  diagnostic.ErrMalformedIndexedField,
			typePair:  "com.acme.Foo->com.acme.Bar",
			fieldPath: "a[1][2]->b",
		},
		{
			name: "nil entry",
			set: &spec.MappingSet{Mappings: []*spec.ClassPairMapping{{
				A:       &spec.ClassRef{Name: "com.acme.Foo"},
				B:       &spec.ClassRef{Name: "com.acme.Bar"},
				Entries: []spec.Entry{nil},
			}}},
			expected:  diagnostic.ErrInvalidSpecification,
			fieldPath: "entry #0",
		},
		{
			name: "typed nil entry",
			set: &spec.MappingSet{Mappings: []*spec.ClassPairMapping{{
				A:       &spec.ClassRef{Name: "com.acme.Foo"},
				B:       &spec.ClassRef{Name: "com.acme.Bar"},
				Entries: []spec.Entry{(*spec.FieldPair)(nil)},
			}}},
			expected: diagnostic.ErrInvalidSpecification,
		},
		{
			name: "global configuration fails before mappings",
			set: spec.NewBuilder().
				Configuration().AllowedException("java.io.IOException").End().
				Mapping().ClassA("com.acme.Nope").End().ClassB("com.acme.Bar").End().End().
				Build(),
			expected: diagnostic.ErrAllowedException,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := New(testRegistry(t)).Compile(tt.set)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.expected)

			de, ok := err.(*diagnostic.Error)
			require.True(t, ok, "want *diagnostic.Error, got %T", err)

			if tt.typePair != "" {
				assert.Equal(t, tt.typePair, de.TypePair)
			}

			if tt.fieldPath != "" {
				assert.Equal(t, tt.fieldPath, de.FieldPath)
			}
		})
	}
}

func TestCompile_ClassResolutionSuggestions(t *testing.T) {
	set := spec.NewBuilder().Mapping().
		ClassA("com.acme.Fooo").End().
		ClassB("com.acme.Bar").End().
		End().Build()

	_, err := New(testRegistry(t)).Compile(set)
	require.Error(t, err)

	de, ok := err.(*diagnostic.Error)
	require.True(t, ok)
	assert.Equal(t, "com.acme.Fooo", de.Element)
	require.NotEmpty(t, de.Suggestions)
	assert.Equal(t, "com.acme.Foo", de.Suggestions[0])
	assert.ErrorIs(t, err, typeresolve.ErrTypeNotFound)

	_, err = New(testRegistry(t), WithMaxSuggestions(0)).Compile(set)
	require.Error(t, err)
	assert.Empty(t, err.(*diagnostic.Error).Suggestions)
}

func TestCompile_Idempotent(t *testing.T) {
	set := spec.NewBuilder().
		Configuration().
		StopOnErrors(false).
		AllowedException("java.lang.IllegalStateException").
		CustomConverter("com.acme.MoneyConverter", "com.acme.Cents", "com.acme.Amount").
		Variable("pkg", "com.acme").
		End().
		Mapping().
		ClassA("com.acme.Foo").End().
		ClassB("com.acme.Bar").End().
		Fields("items[2]", "list[2]").SrcHint("com.acme.Line").End().
		Exclude("secret", "secret").End().
		End().
		Build()

	c := New(testRegistry(t))

	first, err := c.Compile(set)
	require.NoError(t, err)

	second, err := c.Compile(set)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCompile_LogsDebugEvents(t *testing.T) {
	var buf bytes.Buffer

	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	set := spec.NewBuilder().
		Mapping().
		ClassA("com.acme.Foo").End().
		ClassB("com.acme.Bar").End().
		Fields("name", "fullName").End().
		End().
		Build()

	_, err := New(testRegistry(t), WithLogger(logger)).Compile(set)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"class_map":"com.acme.Foo->com.acme.Bar"`)
	assert.Contains(t, buf.String(), `"fields":1`)
	assert.Contains(t, buf.String(), "compilation finished")
}

func TestCompile_NoResolver(t *testing.T) {
	set := spec.NewBuilder().Mapping().ClassA("com.acme.Foo").End().ClassB("com.acme.Bar").End().End().Build()

	_, err := New(nil).Compile(set)
	assert.ErrorIs(t, err, diagnostic.ErrClassResolution)
}
