package typeresolve

import (
	"strings"

	"github.com/samber/lo"

	"beanmap/internal/analyze"
)

// GraphResolver resolves Go type names against an analyzed type graph.
// Embedded types are reported as ancestors.
//
// Accepted name forms:
//   - "example.com/shop/store.Order" (full import path)
//   - "store.Order" (package path suffix)
//   - "Order" (name only; first match in sorted order)
type GraphResolver struct {
	graph *analyze.TypeGraph
}

// NewGraphResolver creates a resolver over graph.
func NewGraphResolver(graph *analyze.TypeGraph) *GraphResolver {
	return &GraphResolver{graph: graph}
}

// Resolve implements Resolver.
func (g *GraphResolver) Resolve(name string) (*Handle, error) {
	info := g.lookup(strings.TrimSpace(name))
	if info == nil {
		return nil, notFound(name)
	}

	return &Handle{
		Name: info.ID.String(),
		Ancestors: lo.Map(g.graph.Ancestors(info.ID), func(id analyze.TypeID, _ int) string {
			return id.String()
		}),
		Origin: "go",
	}, nil
}

// Names implements Lister.
func (g *GraphResolver) Names() []string {
	if g.graph == nil {
		return nil
	}

	return lo.Map(g.graph.SortedIDs(), func(id analyze.TypeID, _ int) string {
		return id.String()
	})
}

func (g *GraphResolver) lookup(name string) *analyze.TypeInfo {
	if g.graph == nil || name == "" {
		return nil
	}

	lastDot := strings.LastIndex(name, ".")
	if lastDot < 0 {
		for _, id := range g.graph.SortedIDs() {
			if id.Name == name {
				return g.graph.GetType(id)
			}
		}

		return nil
	}

	pkgStr, typeName := name[:lastDot], name[lastDot+1:]
	if pkgStr == "" || typeName == "" {
		return nil
	}

	if t := g.graph.GetType(analyze.TypeID{PkgPath: pkgStr, Name: typeName}); t != nil {
		return t
	}

	for _, id := range g.graph.SortedIDs() {
		if id.Name == typeName && strings.HasSuffix(id.PkgPath, "/"+pkgStr) {
			return g.graph.GetType(id)
		}
	}

	return nil
}
