package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"beanmap/internal/specfile"
)

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Convert a mapping file between YAML and TOML",
		Long: `Read a mapping file and write it back out in the format implied by the
output file extension (.yaml, .yml or .toml). No types are resolved.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := specfile.LoadFile(args[0])
			if err != nil {
				return err
			}

			if err := specfile.WriteFile(set, args[1]); err != nil {
				return err
			}

			log.Info().Str("from", args[0]).Str("to", args[1]).Msg("Converted")

			return nil
		},
	}
}
