package compile

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"beanmap/internal/diagnostic"
	"beanmap/internal/model"
	"beanmap/internal/spec"
	"beanmap/internal/typeresolve"
)

// CompileConfiguration compiles the global configuration. A nil spec yields
// the default configuration. The steps run in a fixed order and variables
// always come first.
func (c *Compiler) CompileConfiguration(g *spec.GlobalConfig) (*model.Configuration, error) {
	if g == nil {
		c.logger.Debug().Msg("no global configuration, using defaults")

		return model.DefaultConfiguration(), nil
	}

	cfg := &model.Configuration{
		Variables: compileVariables(g.Variables),
	}

	cfg.BeanFactory = g.BeanFactory
	cfg.DateFormat = g.DateFormat

	cfg.MapEmptyString = g.MapEmptyString.Resolve(model.DefaultMapEmptyString)
	cfg.MapNull = g.MapNull.Resolve(model.DefaultMapNull)
	cfg.TrimStrings = g.TrimStrings.Resolve(model.DefaultTrimStrings)
	cfg.Wildcard = g.Wildcard.Resolve(model.DefaultWildcard)
	cfg.StopOnErrors = g.StopOnErrors.Resolve(model.DefaultStopOnErrors)
	cfg.RelationshipType = g.RelationshipType.Or(model.DefaultRelationship)

	allowed, err := c.compileAllowedExceptions(g.AllowedExceptions)
	if err != nil {
		return nil, err
	}

	cfg.AllowedExceptions = allowed
	cfg.CopyByReferences = compileCopyByReferences(g.CopyByReferences)

	converters, err := c.compileConverters(g.CustomConverters)
	if err != nil {
		return nil, err
	}

	cfg.CustomConverters = converters

	c.logger.Debug().
		Int("variables", len(cfg.Variables)).
		Int("allowed_exceptions", len(cfg.AllowedExceptions)).
		Int("converters", len(cfg.CustomConverters)).
		Bool("stop_on_errors", cfg.StopOnErrors).
		Msg("configuration compiled")

	return cfg, nil
}

// compileVariables passes variables through in declaration order.
func compileVariables(vars []spec.Variable) []model.Variable {
	if len(vars) == 0 {
		return nil
	}

	return lo.Map(vars, func(v spec.Variable, _ int) model.Variable {
		return model.Variable{Name: v.Name, Value: v.Value}
	})
}

func (c *Compiler) compileAllowedExceptions(names []string) ([]*typeresolve.Handle, error) {
	if len(names) == 0 {
		return nil, nil
	}

	out := make([]*typeresolve.Handle, 0, len(names))

	for _, name := range names {
		h, err := c.resolveType(name, "allowed exception")
		if err != nil {
			return nil, err
		}

		if !h.IsSubtypeOf(c.runtimeExceptionRoot) {
			de := diagnostic.Errorf(diagnostic.CodeAllowedException,
				"allowed exception %q must extend %s", h.Name, c.runtimeExceptionRoot)
			de.Element = h.Name

			return nil, de
		}

		out = append(out, h)
	}

	return out, nil
}

func compileCopyByReferences(names []string) []model.CopyByReference {
	names = lo.Compact(lo.Map(names, func(n string, _ int) string { return strings.TrimSpace(n) }))
	if len(names) == 0 {
		return nil
	}

	return lo.Map(names, func(n string, _ int) model.CopyByReference {
		return model.CopyByReference(n)
	})
}

func (c *Compiler) compileConverters(specs []spec.CustomConverterSpec) ([]model.CustomConverter, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	out := make([]model.CustomConverter, 0, len(specs))

	for i, s := range specs {
		role := fmt.Sprintf("converter #%d", i)

		conv, err := c.resolveType(s.Type, role+" type")
		if err != nil {
			return nil, err
		}

		a, err := c.resolveType(s.ClassA, role+" class A")
		if err != nil {
			return nil, err
		}

		b, err := c.resolveType(s.ClassB, role+" class B")
		if err != nil {
			return nil, err
		}

		out = append(out, model.CustomConverter{Converter: conv, ClassA: a, ClassB: b})
	}

	return out, nil
}
