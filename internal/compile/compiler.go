package compile

import (
	"github.com/rs/zerolog"

	"beanmap/internal/diagnostic"
	"beanmap/internal/model"
	"beanmap/internal/spec"
	"beanmap/internal/typeresolve"
)

// DefaultRuntimeExceptionRoot is the supertype every allowed exception must extend.
const DefaultRuntimeExceptionRoot = "java.lang.RuntimeException"

// DefaultMaxSuggestions bounds the "did you mean" list on resolution errors.
const DefaultMaxSuggestions = 3

// Result is the compiled model handed to the copy engine.
type Result struct {
	Configuration *model.Configuration
	// ClassMaps follow the declaration order of the mappings.
	ClassMaps []*model.ClassMap
}

// Compiler compiles mapping sets against a type resolver. A Compiler holds
// no per-compilation state; it is safe for concurrent use when its resolver is.
type Compiler struct {
	resolver             typeresolve.Resolver
	logger               zerolog.Logger
	runtimeExceptionRoot string
	maxSuggestions       int
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithLogger sets the logger used for debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Compiler) {
		c.logger = l
	}
}

// WithRuntimeExceptionRoot overrides the supertype allowed exceptions must extend.
func WithRuntimeExceptionRoot(name string) Option {
	return func(c *Compiler) {
		if name != "" {
			c.runtimeExceptionRoot = name
		}
	}
}

// WithMaxSuggestions bounds the suggestions attached to resolution errors.
// Zero disables suggestions.
func WithMaxSuggestions(n int) Option {
	return func(c *Compiler) {
		c.maxSuggestions = max(n, 0)
	}
}

// New creates a Compiler.
func New(resolver typeresolve.Resolver, opts ...Option) *Compiler {
	c := &Compiler{
		resolver:             resolver,
		logger:               zerolog.Nop(),
		runtimeExceptionRoot: DefaultRuntimeExceptionRoot,
		maxSuggestions:       DefaultMaxSuggestions,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile compiles the global configuration, then every mapping in order.
// It stops at the first error; no partial result is returned.
func (c *Compiler) Compile(set *spec.MappingSet) (*Result, error) {
	if set == nil {
		return nil, diagnostic.Errorf(diagnostic.CodeInvalidSpecification, "mapping set is nil")
	}

	cfg, err := c.CompileConfiguration(set.Configuration)
	if err != nil {
		return nil, err
	}

	classMaps := make([]*model.ClassMap, 0, len(set.Mappings))

	for i, m := range set.Mappings {
		if m == nil {
			return nil, diagnostic.Errorf(diagnostic.CodeInvalidSpecification, "mapping #%d is nil", i)
		}

		cm, err := c.CompileMapping(m)
		if err != nil {
			return nil, err
		}

		classMaps = append(classMaps, cm)
	}

	c.logger.Debug().
		Int("class_maps", len(classMaps)).
		Msg("compilation finished")

	return &Result{Configuration: cfg, ClassMaps: classMaps}, nil
}
