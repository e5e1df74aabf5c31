package commands

import (
	"github.com/spf13/cobra"

	"slcsp/internal/app"
)

// explain: per-ZIP outcome, region and rate as YAML or JSON.
func explainCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Show how each target ZIP's rate was decided",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Explain(cmd.OutOrStdout(), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", app.FormatYAML, "output format: yaml or json")
	return cmd
}
