package commands

import "github.com/spf13/cobra"

func calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc",
		Short: "Write the zipcode,rate report",
		Args:  cobra.NoArgs,
		RunE:  runCalc,
	}
}

// runCalc is shared by calc and the bare root command.
func runCalc(cmd *cobra.Command, args []string) error {
	return appCtx.Calc(appCtx.Sink(cmd.OutOrStdout()))
}
