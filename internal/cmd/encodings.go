package cmd

import (
	"github.com/spf13/cobra"

	"roundtrip/internal/commands"
	"roundtrip/internal/report"
)

func newEncodingsCommand(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "encodings",
		Short: "List supported character encodings",
		Long:  `List the canonical names of every character encoding roundtrip can benchmark.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings(cmd, *cfgFile, nil)
			if err != nil {
				return err
			}

			application, err := newApp(cmd, settings)
			if err != nil {
				return err
			}

			result := commands.NewEncodingsCommand(application.Logger).Execute(cmd.Context())
			return report.RenderEncodings(cmd.OutOrStdout(), settings.Output, result.Names)
		},
	}
}
