package typeresolve

import (
	"errors"
	"fmt"
	"slices"
)

// ErrTypeNotFound is wrapped by every resolver when a name cannot be loaded.
var ErrTypeNotFound = errors.New("type not found")

// Resolver resolves a type name to a loadable type handle.
// Implementations must be deterministic for a given name.
type Resolver interface {
	Resolve(name string) (*Handle, error)
}

// Lister is implemented by resolvers that can enumerate the names they know.
// It is used to build suggestions for unresolved names.
type Lister interface {
	Names() []string
}

// Handle is a resolved type. Handles are immutable once returned.
type Handle struct {
	// Name is the canonical type name.
	Name string
	// Ancestors lists supertypes, nearest first.
	Ancestors []string
	// Origin names the resolver that produced the handle (e.g. "registry", "go").
	Origin string
}

// IsSubtypeOf reports whether the handle is name itself or extends it.
func (h *Handle) IsSubtypeOf(name string) bool {
	if h == nil {
		return false
	}

	return h.Name == name || slices.Contains(h.Ancestors, name)
}

// String returns the canonical name.
func (h *Handle) String() string {
	if h == nil {
		return "<nil>"
	}

	return h.Name
}

func notFound(name string) error {
	return fmt.Errorf("%w: %q", ErrTypeNotFound, name)
}

// Chain returns a resolver that tries each resolver in order and returns the
// first successful resolution. Errors other than ErrTypeNotFound stop the walk.
func Chain(resolvers ...Resolver) Resolver {
	return chain(resolvers)
}

type chain []Resolver

func (c chain) Resolve(name string) (*Handle, error) {
	for _, r := range c {
		h, err := r.Resolve(name)
		if err == nil {
			return h, nil
		}

		if !errors.Is(err, ErrTypeNotFound) {
			return nil, err
		}
	}

	return nil, notFound(name)
}

func (c chain) Names() []string {
	var out []string

	for _, r := range c {
		if l, ok := r.(Lister); ok {
			out = append(out, l.Names()...)
		}
	}

	slices.Sort(out)

	return slices.Compact(out)
}
