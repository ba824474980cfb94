package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"beanmap/internal/analyze"
	"beanmap/internal/settings"
	"beanmap/internal/typeresolve"
)

// buildResolver assembles the class loader for a run: the built-in JVM
// registry extended by the configured type files, then any analyzed Go
// packages.
func buildResolver(s *settings.Settings, dir string) (typeresolve.Resolver, error) {
	registry := typeresolve.NewJVMRegistry()

	for _, path := range s.TypeFiles {
		if err := registry.LoadFile(path); err != nil {
			return nil, err
		}
	}

	log.Debug().Int("types", registry.Len()).Strs("files", s.TypeFiles).Msg("Type registry ready")

	if len(s.Packages) == 0 {
		return registry, nil
	}

	a := analyze.NewAnalyzer()
	a.Dir = dir

	graph, err := a.LoadPackages(s.Packages...)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze packages: %w", err)
	}

	log.Debug().Strs("packages", s.Packages).Msg("Go packages analyzed")

	return typeresolve.Chain(registry, typeresolve.NewGraphResolver(graph)), nil
}
