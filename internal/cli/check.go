package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"beanmap/internal/diagnostic"
	"beanmap/internal/lint"
	"beanmap/internal/specfile"
)

func newCheckCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Report problems in a mapping file",
		Long: `Compile a mapping file and run additional checks (unresolvable hints,
duplicate map ids, duplicate fields, conflicting converter references).
Exits non-zero when any error is reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadSettings(cmd)
			if err != nil {
				return err
			}

			set, err := specfile.LoadFile(args[0])
			if err != nil {
				return err
			}

			resolver, err := buildResolver(s, opts.dir)
			if err != nil {
				return err
			}

			report := lint.Check(set, resolver, s.CompileOptions()...)
			printDiagnostics(cmd, args[0], &report.Diagnostics)

			if report.Diagnostics.HasErrors() {
				return fmt.Errorf("%s: %d error(s)", args[0], len(report.Diagnostics.Errors))
			}

			return nil
		},
	}

	addResolverFlags(cmd)

	return cmd
}

func printDiagnostics(cmd *cobra.Command, file string, d *diagnostic.Diagnostics) {
	out := cmd.OutOrStdout()

	all := d.All()
	if len(all) == 0 {
		_, _ = fmt.Fprintf(out, "%s: ok\n", file)
		return
	}

	for _, diag := range all {
		_, _ = fmt.Fprintf(out, "%s: %s: %s\n", file, diag.Severity, diag.String())
	}

	_, _ = fmt.Fprintf(out, "%d error(s), %d warning(s), %d info\n",
		len(d.Errors), len(d.Warnings), len(d.Infos))
}
