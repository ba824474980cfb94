package analyze

import (
	"sort"

	"beanmap/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "beanmap/internal/fixtures/store"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a named type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindStruct             // struct type
	TypeKindInterface          // interface type
	TypeKindAlias              // named type over a basic, slice, map, etc.
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindStruct:
		return "struct"
	case TypeKindInterface:
		return "interface"
	case TypeKindAlias:
		return "alias"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a named Go type in the type graph.
type TypeInfo struct {
	ID   TypeID
	Kind TypeKind
	// Embeds lists the named types embedded directly in a struct, or the
	// interfaces embedded in an interface, in declaration order. Embedding
	// is how the graph models a supertype relation.
	Embeds []TypeID
}

// TypeGraph holds all analyzed named types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all exported named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Add registers a type, replacing any previous entry with the same ID.
func (g *TypeGraph) Add(info *TypeInfo) {
	g.Types[info.ID] = info
}

// Ancestors returns every type reachable through embedding, breadth-first,
// nearest first. Embedded types outside the graph are still reported but
// not expanded further. Cycles are ignored.
func (g *TypeGraph) Ancestors(id TypeID) []TypeID {
	root := g.Types[id]
	if root == nil {
		return nil
	}

	seen := map[TypeID]bool{id: true}
	queue := append([]TypeID{}, root.Embeds...)

	var out []TypeID

	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		if seen[next] {
			continue
		}

		seen[next] = true
		out = append(out, next)

		if info := g.Types[next]; info != nil {
			queue = append(queue, info.Embeds...)
		}
	}

	return out
}

// SortedIDs returns all type IDs ordered by their string form.
func (g *TypeGraph) SortedIDs() []TypeID {
	ids := make([]TypeID, 0, len(g.Types))
	for id := range g.Types {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})

	return ids
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}
