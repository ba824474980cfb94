package analyze

import (
	"errors"
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph *TypeGraph
	// Dir is the working directory for package resolution; empty means the
	// current directory.
	Dir string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph: NewTypeGraph(),
	}
}

// LoadPackages loads the specified packages and adds their exported named
// types to the graph. Patterns are standard Go package patterns
// (e.g., "./model", "example.com/shop/...").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	if len(patterns) == 0 {
		return a.graph, nil
	}

	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage extracts exported named types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() {
			continue
		}

		info := &TypeInfo{
			ID: TypeID{PkgPath: pkg.PkgPath, Name: name},
		}

		switch ut := typeName.Type().Underlying().(type) {
		case *types.Struct:
			info.Kind = TypeKindStruct
			info.Embeds = embeddedStructTypes(ut)
		case *types.Interface:
			info.Kind = TypeKindInterface
			info.Embeds = embeddedInterfaces(ut)
		default:
			info.Kind = TypeKindAlias
		}

		a.graph.Add(info)
		pkgInfo.Types = append(pkgInfo.Types, info.ID)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo
}

// embeddedStructTypes returns the named types embedded in a struct, with
// pointer embeddings unwrapped.
func embeddedStructTypes(st *types.Struct) []TypeID {
	var out []TypeID

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if !field.Embedded() {
			continue
		}

		if id, ok := namedID(field.Type()); ok {
			out = append(out, id)
		}
	}

	return out
}

func embeddedInterfaces(it *types.Interface) []TypeID {
	var out []TypeID

	for i := 0; i < it.NumEmbeddeds(); i++ {
		if id, ok := namedID(it.EmbeddedType(i)); ok {
			out = append(out, id)
		}
	}

	return out
}

func namedID(t types.Type) (TypeID, bool) {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}

	named, ok := t.(*types.Named)
	if !ok {
		return TypeID{}, false
	}

	obj := named.Obj()
	if obj.Pkg() == nil {
		// Universe types such as error.
		return TypeID{Name: obj.Name()}, true
	}

	return TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}, true
}
