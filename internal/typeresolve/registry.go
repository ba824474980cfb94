package typeresolve

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry is an in-memory Resolver. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]*Handle),
	}
}

// NewJVMRegistry creates a registry seeded with the JVM throwable hierarchy
// and common value types.
func NewJVMRegistry() *Registry {
	r := NewRegistry()
	for _, b := range jvmBuiltins {
		// Builtins are ordered parent first and cannot fail.
		_ = r.Register(b.name, b.parent)
	}

	return r
}

// Register adds name with the given direct supertype. An empty parent makes
// name a root. The parent must already be registered. Registering the same
// name twice with the same parent is a no-op.
func (r *Registry) Register(name, parent string) error {
	name = strings.TrimSpace(name)
	parent = strings.TrimSpace(parent)

	if name == "" {
		return fmt.Errorf("register: empty type name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var ancestors []string

	if parent != "" {
		p, ok := r.types[parent]
		if !ok {
			return fmt.Errorf("register %q: parent %w", name, notFound(parent))
		}

		ancestors = append([]string{p.Name}, p.Ancestors...)
	}

	if existing, ok := r.types[name]; ok {
		if slices.Equal(existing.Ancestors, ancestors) {
			return nil
		}

		return fmt.Errorf("register %q: already registered with a different supertype", name)
	}

	r.types[name] = &Handle{Name: name, Ancestors: ancestors, Origin: "registry"}

	return nil
}

// Resolve implements Resolver.
func (r *Registry) Resolve(name string) (*Handle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.types[strings.TrimSpace(name)]
	if !ok {
		return nil, notFound(name)
	}

	return h, nil
}

// Names implements Lister. The result is sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.types))
	for name := range r.types {
		out = append(out, name)
	}

	slices.Sort(out)

	return out
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.types)
}

type builtin struct {
	name   string
	parent string
}

var jvmBuiltins = []builtin{
	{"java.lang.Object", ""},
	{"java.lang.Throwable", "java.lang.Object"},
	{"java.lang.Exception", "java.lang.Throwable"},
	{"java.lang.Error", "java.lang.Throwable"},
	{"java.lang.RuntimeException", "java.lang.Exception"},
	{"java.lang.IllegalStateException", "java.lang.RuntimeException"},
	{"java.lang.IllegalArgumentException", "java.lang.RuntimeException"},
	{"java.lang.NumberFormatException", "java.lang.IllegalArgumentException"},
	{"java.lang.NullPointerException", "java.lang.RuntimeException"},
	{"java.lang.UnsupportedOperationException", "java.lang.RuntimeException"},
	{"java.lang.ClassCastException", "java.lang.RuntimeException"},
	{"java.lang.ArithmeticException", "java.lang.RuntimeException"},
	{"java.lang.IndexOutOfBoundsException", "java.lang.RuntimeException"},
	{"java.lang.InterruptedException", "java.lang.Exception"},
	{"java.io.IOException", "java.lang.Exception"},
	{"java.io.FileNotFoundException", "java.io.IOException"},
	{"java.sql.SQLException", "java.lang.Exception"},
	{"java.lang.Number", "java.lang.Object"},
	{"java.lang.Integer", "java.lang.Number"},
	{"java.lang.Long", "java.lang.Number"},
	{"java.lang.Double", "java.lang.Number"},
	{"java.math.BigDecimal", "java.lang.Number"},
	{"java.lang.String", "java.lang.Object"},
	{"java.lang.Boolean", "java.lang.Object"},
	{"java.util.Date", "java.lang.Object"},
	{"java.util.ArrayList", "java.lang.Object"},
	{"java.util.HashMap", "java.lang.Object"},
	{"java.util.HashSet", "java.lang.Object"},
}
