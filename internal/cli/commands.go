// Package cli implements the beanmap command line.
package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"beanmap/internal/logging"
	"beanmap/internal/settings"
	"beanmap/internal/version"
)

// options are the global flags shared by every subcommand.
type options struct {
	verbosity  int
	configFile string
	dir        string
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "beanmap",
		Short: "Compile declarative bean mappings",
		Long: `beanmap compiles declarative bean-mapping specifications (YAML or TOML)
into the validated model a copy engine consumes, and reports problems
with class names, field names and configuration.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "settings file (default is ./beanmap.toml or ./beanmap.yaml)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompileCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newConvertCmd())

	return rootCmd
}

// loadSettings merges the settings layers with the flags the user set
// explicitly on cmd.
func (o *options) loadSettings(cmd *cobra.Command) (*settings.Settings, error) {
	overrides := map[string]any{}

	flags := cmd.Flags()
	if f := flags.Lookup("types"); f != nil && f.Changed {
		v, _ := flags.GetStringSlice("types")
		overrides["type_files"] = v
	}
	if f := flags.Lookup("packages"); f != nil && f.Changed {
		v, _ := flags.GetStringSlice("packages")
		overrides["packages"] = v
	}
	if f := flags.Lookup("output"); f != nil && f.Changed {
		v, _ := flags.GetString("output")
		overrides["output"] = v
	}
	if f := flags.Lookup("exception-root"); f != nil && f.Changed {
		v, _ := flags.GetString("exception-root")
		overrides["runtime_exception_root"] = v
	}

	s, err := settings.Load(o.configFile, o.dir, overrides)
	if err != nil {
		return nil, err
	}

	if s.Source != "" {
		log.Info().Str("file", s.Source).Msg("Loaded settings")
	}

	return s, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "beanmap version %s\n", version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, "Built:  %s\n", version.Date)
			}
		},
	}
}

func addResolverFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("types", nil, "type registry YAML files (repeatable)")
	cmd.Flags().StringSlice("packages", nil, "Go package patterns whose types may be referenced")
	cmd.Flags().String("exception-root", "", "supertype every allowed exception must extend")
}
