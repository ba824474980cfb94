package typeresolve

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RegistryFile is the YAML form of a set of type declarations:
//
//	types:
//	  - name: com.acme.Order
//	    extends: java.lang.Object
//	  - name: com.acme.OrderException
//	    extends: java.lang.RuntimeException
type RegistryFile struct {
	Types []TypeDecl `yaml:"types"`
}

// TypeDecl declares one type and its direct supertype.
type TypeDecl struct {
	Name    string `yaml:"name"`
	Extends string `yaml:"extends,omitempty"`
}

// LoadFile reads a registry file and registers its types into r.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read type registry %s: %w", path, err)
	}

	if err := r.Load(data); err != nil {
		return fmt.Errorf("type registry %s: %w", path, err)
	}

	return nil
}

// Load parses YAML registry data and registers its types into r.
// Declarations may appear in any order; a supertype declared later in the
// same file is registered first.
func (r *Registry) Load(data []byte) error {
	var rf RegistryFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return fmt.Errorf("failed to parse type registry YAML: %w", err)
	}

	pending := rf.Types

	for len(pending) > 0 {
		var (
			deferred []TypeDecl
			lastErr  error
		)

		for _, decl := range pending {
			if err := r.Register(decl.Name, decl.Extends); err != nil {
				deferred = append(deferred, decl)
				lastErr = err
			}
		}

		if len(deferred) == len(pending) {
			return lastErr
		}

		pending = deferred
	}

	return nil
}
