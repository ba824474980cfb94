package compile

import (
	"errors"

	"beanmap/internal/common"
	"beanmap/internal/diagnostic"
	"beanmap/internal/match"
	"beanmap/internal/model"
	"beanmap/internal/spec"
	"beanmap/internal/typeresolve"
)

// resolveClass resolves one side of a class-pair mapping. The tri-state
// flags are copied through unresolved.
func (c *Compiler) resolveClass(ref *spec.ClassRef, side string) (model.ClassDescriptor, error) {
	if ref == nil || common.IsBlank(ref.Name) {
		return model.ClassDescriptor{}, diagnostic.Errorf(diagnostic.CodeClassResolution, "class %s is not set", side)
	}

	h, err := c.resolveType(ref.Name, "class "+side)
	if err != nil {
		return model.ClassDescriptor{}, err
	}

	return model.ClassDescriptor{
		Type:           h,
		BeanFactory:    ref.BeanFactory,
		FactoryBeanID:  ref.FactoryBeanID,
		MapGetMethod:   ref.MapGetMethod,
		MapSetMethod:   ref.MapSetMethod,
		CreateMethod:   ref.CreateMethod,
		MapNull:        ref.MapNull,
		MapEmptyString: ref.MapEmptyString,
		Accessible:     ref.Accessible,
	}, nil
}

// resolveType loads name through the resolver. Failures become class
// resolution errors naming role and the type, with suggestions when the
// resolver can list what it knows.
func (c *Compiler) resolveType(name, role string) (*typeresolve.Handle, error) {
	if c.resolver == nil {
		return nil, diagnostic.Errorf(diagnostic.CodeClassResolution, "cannot resolve %s %q: no type resolver", role, name)
	}

	h, err := c.resolver.Resolve(name)
	if err != nil {
		de := diagnostic.Errorf(diagnostic.CodeClassResolution, "cannot resolve %s %q", role, name)
		de.Element = name
		de.Err = err

		if errors.Is(err, typeresolve.ErrTypeNotFound) {
			de.Suggestions = c.suggest(name)
		}

		return nil, de
	}

	return h, nil
}

func (c *Compiler) suggest(name string) []string {
	if c.maxSuggestions == 0 {
		return nil
	}

	l, ok := c.resolver.(typeresolve.Lister)
	if !ok {
		return nil
	}

	return match.Closest(name, l.Names(), c.maxSuggestions)
}
