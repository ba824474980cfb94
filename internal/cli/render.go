package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"beanmap/internal/compile"
	"beanmap/internal/model"
	"beanmap/internal/settings"
	"beanmap/internal/typeresolve"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func render(w io.Writer, res *compile.Result, format string) error {
	switch format {
	case settings.OutputSpew:
		dumper.Fdump(w, res)
		return nil
	case settings.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newReport(res)); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	case settings.OutputSummary, "":
		return writeSummary(w, res)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeSummary(w io.Writer, res *compile.Result) error {
	cfg := res.Configuration
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	_, _ = fmt.Fprintf(tw, "configuration\n")
	_, _ = fmt.Fprintf(tw, "  wildcard\t%t\n", cfg.Wildcard)
	_, _ = fmt.Fprintf(tw, "  map-null\t%t\n", cfg.MapNull)
	_, _ = fmt.Fprintf(tw, "  map-empty-string\t%t\n", cfg.MapEmptyString)
	_, _ = fmt.Fprintf(tw, "  trim-strings\t%t\n", cfg.TrimStrings)
	_, _ = fmt.Fprintf(tw, "  stop-on-errors\t%t\n", cfg.StopOnErrors)
	_, _ = fmt.Fprintf(tw, "  relationship-type\t%s\n", cfg.RelationshipType)
	if len(cfg.AllowedExceptions) > 0 {
		_, _ = fmt.Fprintf(tw, "  allowed-exceptions\t%s\n", strings.Join(handleNames(cfg.AllowedExceptions), ", "))
	}
	if len(cfg.CustomConverters) > 0 {
		_, _ = fmt.Fprintf(tw, "  custom-converters\t%d\n", len(cfg.CustomConverters))
	}

	for _, cm := range res.ClassMaps {
		_, _ = fmt.Fprintf(tw, "\n%s\t(%s, %s)\n", cm.Key(), cm.Direction, cm.RelationshipType)
		for _, fm := range cm.FieldMaps {
			_, _ = fmt.Fprintf(tw, "  %s\t%s -> %s\n", fm.Kind(), fieldText(fm.Src), fieldText(fm.Dest))
		}
	}

	return tw.Flush()
}

func fieldText(f model.FieldDescriptor) string {
	if f.Indexed {
		return fmt.Sprintf("%s[%d]", f.Name, f.Index)
	}
	return f.Name
}

func handleNames(hs []*typeresolve.Handle) []string {
	return lo.Map(hs, func(h *typeresolve.Handle, _ int) string { return h.String() })
}

// report is the YAML view of a compiled result.
type report struct {
	Configuration configReport     `yaml:"configuration"`
	ClassMaps     []classMapReport `yaml:"class-maps,omitempty"`
}

type configReport struct {
	DateFormat        string            `yaml:"date-format,omitempty"`
	BeanFactory       string            `yaml:"bean-factory,omitempty"`
	Wildcard          bool              `yaml:"wildcard"`
	MapNull           bool              `yaml:"map-null"`
	MapEmptyString    bool              `yaml:"map-empty-string"`
	TrimStrings       bool              `yaml:"trim-strings"`
	StopOnErrors      bool              `yaml:"stop-on-errors"`
	RelationshipType  string            `yaml:"relationship-type"`
	AllowedExceptions []string          `yaml:"allowed-exceptions,omitempty"`
	CopyByReferences  []string          `yaml:"copy-by-references,omitempty"`
	CustomConverters  []converterReport `yaml:"custom-converters,omitempty"`
	Variables         map[string]string `yaml:"variables,omitempty"`
}

type converterReport struct {
	Type   string `yaml:"type"`
	ClassA string `yaml:"class-a"`
	ClassB string `yaml:"class-b"`
}

type classMapReport struct {
	ClassA           string        `yaml:"class-a"`
	ClassB           string        `yaml:"class-b"`
	MapID            string        `yaml:"map-id,omitempty"`
	Direction        string        `yaml:"direction"`
	RelationshipType string        `yaml:"relationship-type"`
	Fields           []fieldReport `yaml:"fields,omitempty"`
}

type fieldReport struct {
	Kind         string   `yaml:"kind"`
	A            string   `yaml:"a"`
	B            string   `yaml:"b"`
	Direction    string   `yaml:"direction"`
	Relationship string   `yaml:"relationship-type"`
	Hints        []string `yaml:"hints,omitempty"`
	Converter    string   `yaml:"converter,omitempty"`
}

func newReport(res *compile.Result) report {
	cfg := res.Configuration

	r := report{
		Configuration: configReport{
			DateFormat:        cfg.DateFormat,
			BeanFactory:       cfg.BeanFactory,
			Wildcard:          cfg.Wildcard,
			MapNull:           cfg.MapNull,
			MapEmptyString:    cfg.MapEmptyString,
			TrimStrings:       cfg.TrimStrings,
			StopOnErrors:      cfg.StopOnErrors,
			RelationshipType:  cfg.RelationshipType.String(),
			AllowedExceptions: handleNames(cfg.AllowedExceptions),
			CopyByReferences: lo.Map(cfg.CopyByReferences, func(c model.CopyByReference, _ int) string {
				return string(c)
			}),
			CustomConverters: lo.Map(cfg.CustomConverters, func(c model.CustomConverter, _ int) converterReport {
				return converterReport{Type: c.Converter.String(), ClassA: c.ClassA.String(), ClassB: c.ClassB.String()}
			}),
		},
	}

	if len(cfg.Variables) > 0 {
		r.Configuration.Variables = make(map[string]string, len(cfg.Variables))
		for _, v := range cfg.Variables {
			r.Configuration.Variables[v.Name] = v.Value
		}
	}

	for _, cm := range res.ClassMaps {
		cmr := classMapReport{
			ClassA:           cm.Src.Name(),
			ClassB:           cm.Dest.Name(),
			MapID:            cm.MapID,
			Direction:        cm.Direction.String(),
			RelationshipType: cm.RelationshipType.String(),
		}

		for _, fm := range cm.FieldMaps {
			fr := fieldReport{
				Kind:         fm.Kind().String(),
				A:            fieldText(fm.Src),
				B:            fieldText(fm.Dest),
				Direction:    fm.EffectiveDirection(cm).String(),
				Relationship: fm.EffectiveRelationship(cm).String(),
				Hints:        hintTexts(fm.Hints),
			}
			if fm.Converter != nil {
				fr.Converter = lo.CoalesceOrEmpty(fm.Converter.ID, fm.Converter.TypeName)
			}
			cmr.Fields = append(cmr.Fields, fr)
		}

		r.ClassMaps = append(r.ClassMaps, cmr)
	}

	return r
}

func hintTexts(h model.Hints) []string {
	var out []string
	for _, c := range []*model.HintContainer{h.Src, h.Dest, h.SrcDeepIndex, h.DestDeepIndex} {
		if c != nil {
			out = append(out, c.Text)
		}
	}
	return out
}
