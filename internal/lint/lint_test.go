package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beanmap/internal/diagnostic"
	"beanmap/internal/spec"
	"beanmap/internal/typeresolve"
)

func testRegistry(t *testing.T) *typeresolve.Registry {
	t.Helper()

	r := typeresolve.NewJVMRegistry()
	for _, name := range []string{"com.acme.Foo", "com.acme.Bar", "com.acme.Line"} {
		require.NoError(t, r.Register(name, "java.lang.Object"))
	}

	return r
}

func codes(diags []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Code)
	}

	return out
}

func TestCheck_Clean(t *testing.T) {
	set := spec.NewBuilder().
		Mapping().
		ClassA("com.acme.Foo").End().
		ClassB("com.acme.Bar").End().
		Fields("lines", "lines").SrcHint("com.acme.Line").End().
		End().
		Build()

	report := Check(set, testRegistry(t))
	require.NotNil(t, report.Result)
	assert.Empty(t, report.Diagnostics.All())
}

func TestCheck_Rules(t *testing.T) {
	b := spec.NewBuilder()
	b.Mapping().
		ClassA("com.acme.Foo").End().
		ClassB("com.acme.Bar").End().
		MapID("shared").
		Fields("name", "fullName").End().
		Fields("lines", "lines").DestDeepIndexHint("com.acme.Line, com.acme.Lne").End().
		Fields("name", "alias").CustomConverter("com.acme.Conv").CustomConverterID("conv").End()
	b.Mapping().
		ClassA("com.acme.Bar").End().
		ClassB("com.acme.Foo").End().
		MapID("shared")

	report := Check(b.Build(), testRegistry(t))
	require.NotNil(t, report.Result, "lint findings do not fail compilation")

	d := report.Diagnostics
	assert.Equal(t, []string{CodeDuplicateMapID}, codes(d.Errors))
	assert.Equal(t, []string{CodeHintUnresolved, CodeConverterIDAndClass}, codes(d.Warnings))
	assert.Equal(t, []string{CodeDuplicateField}, codes(d.Infos))

	hint := d.Warnings[0]
	assert.Equal(t, "com.acme.Foo->com.acme.Bar", hint.TypePair)
	assert.Equal(t, "lines->lines", hint.FieldPath)
	assert.Contains(t, hint.Message, `"com.acme.Lne"`)
	require.NotEmpty(t, hint.Suggestions)
	assert.Equal(t, "com.acme.Line", hint.Suggestions[0])

	assert.Equal(t, "name", d.Infos[0].FieldPath)
}

func TestCheck_FoldsCompileError(t *testing.T) {
	set := spec.NewBuilder().
		Mapping().
		ClassA("com.acme.Fooo").End().
		ClassB("com.acme.Bar").End().
		Fields("a", "a").End().
		Fields("a", "b").End().
		End().
		Build()

	report := Check(set, testRegistry(t))
	assert.Nil(t, report.Result)

	d := report.Diagnostics
	require.Len(t, d.Errors, 1)
	assert.Equal(t, string(diagnostic.CodeClassResolution), d.Errors[0].Code)
	assert.Equal(t, "com.acme.Fooo->com.acme.Bar", d.Errors[0].TypePair)
	assert.Contains(t, d.Errors[0].Suggestions, "com.acme.Foo")

	// Spec rules still ran.
	assert.Equal(t, []string{CodeDuplicateField}, codes(d.Infos))
}

func TestCheck_NilAndMalformedInput(t *testing.T) {
	report := Check(nil, testRegistry(t))
	require.Len(t, report.Diagnostics.Errors, 1)
	assert.Equal(t, string(diagnostic.CodeInvalidSpecification), report.Diagnostics.Errors[0].Code)

	set := &spec.MappingSet{Mappings: []*spec.ClassPairMapping{
		nil,
		{
			A:       &spec.ClassRef{Name: "com.acme.Foo"},
			B:       &spec.ClassRef{Name: "com.acme.Bar"},
			Entries: []spec.Entry{nil, (*spec.FieldPair)(nil)},
		},
	}}

	report = Check(set, testRegistry(t))
	require.Len(t, report.Diagnostics.Errors, 1)
	assert.Empty(t, report.Diagnostics.Warnings)
}
