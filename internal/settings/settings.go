// Package settings loads CLI settings from defaults, an optional settings
// file, BEANMAP_ environment variables and explicit flag overrides.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"beanmap/internal/compile"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "BEANMAP_"

// DefaultFiles are probed in the working directory when no explicit settings
// file is given.
var DefaultFiles = []string{"beanmap.toml", "beanmap.yaml", "beanmap.yml"}

// Output formats accepted by the compile command.
const (
	OutputSummary = "summary"
	OutputSpew    = "spew"
	OutputYAML    = "yaml"
)

var outputs = []string{OutputSummary, OutputSpew, OutputYAML}

// Settings drives the CLI.
type Settings struct {
	RuntimeExceptionRoot string   `koanf:"runtime_exception_root"`
	TypeFiles            []string `koanf:"type_files"`
	Packages             []string `koanf:"packages"`
	Output               string   `koanf:"output"`
	MaxSuggestions       int      `koanf:"max_suggestions"`

	// Source is the settings file that was merged, empty when none was.
	Source string `koanf:"-"`
}

// Defaults returns the built-in settings layer.
func Defaults() map[string]any {
	return map[string]any{
		"runtime_exception_root": compile.DefaultRuntimeExceptionRoot,
		"type_files":             []string{},
		"packages":               []string{},
		"output":                 OutputSummary,
		"max_suggestions":        compile.DefaultMaxSuggestions,
	}
}

// Load merges the layers in order. path names an explicit settings file;
// when empty, DefaultFiles are probed in dir. overrides holds flag values
// keyed like the koanf tags and wins over everything else.
func Load(path, dir string, overrides map[string]any) (*Settings, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Settings file
	source, err := locate(path, dir)
	if err != nil {
		return nil, err
	}
	if source != "" {
		if err := k.Load(file.Provider(source), parserFor(source)); err != nil {
			return nil, fmt.Errorf("failed to load settings from %s: %w", source, err)
		}
	}

	// 3. Env vars
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load flag overrides: %w", err)
		}
	}

	var s Settings
	conf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &s, conf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	s.Source = source

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the merged values.
func (s *Settings) Validate() error {
	var errs []error
	if !slices.Contains(outputs, s.Output) {
		errs = append(errs, fmt.Errorf("output %q is not one of %s", s.Output, strings.Join(outputs, ", ")))
	}
	if strings.TrimSpace(s.RuntimeExceptionRoot) == "" {
		errs = append(errs, errors.New("runtime_exception_root must not be empty"))
	}
	if s.MaxSuggestions < 0 {
		errs = append(errs, fmt.Errorf("max_suggestions must not be negative, got %d", s.MaxSuggestions))
	}
	return errors.Join(errs...)
}

// CompileOptions turns the settings into compiler options.
func (s *Settings) CompileOptions() []compile.Option {
	return []compile.Option{
		compile.WithRuntimeExceptionRoot(s.RuntimeExceptionRoot),
		compile.WithMaxSuggestions(s.MaxSuggestions),
	}
}

func locate(path, dir string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("settings file: %w", err)
		}
		return path, nil
	}
	for _, name := range DefaultFiles {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
