package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"beanmap/internal/compile"
	"beanmap/internal/logging"
	"beanmap/internal/specfile"
)

func newCompileCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile FILE",
		Short: "Compile a mapping file and print the resulting model",
		Long: `Compile a mapping file (YAML or TOML) against the known types and print
the compiled model. Compilation stops at the first error.`,
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

			compileOpts := append(s.CompileOptions(), compile.WithLogger(logging.GetLogger("compile")))

			res, err := compile.New(resolver, compileOpts...).Compile(set)
			if err != nil {
				return err
			}

			log.Info().Int("class_maps", len(res.ClassMaps)).Msg("Compiled")

			return render(cmd.OutOrStdout(), res, s.Output)
		},
	}

	addResolverFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "output format: summary, spew or yaml")

	return cmd
}
