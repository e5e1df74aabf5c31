package commands

import (
	"github.com/spf13/cobra"

	"slcsp/internal/app"
	"slcsp/internal/logger"
)

var (
	cfg     app.Config
	envFile string
	appCtx  *app.App
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "slcsp",
		Short: "Second-lowest-cost Silver plan rate per ZIP code",
		Long: "Reads zips.csv, plans.csv and slcsp.csv and prints, for every ZIP in slcsp.csv,\n" +
			"the second-lowest Silver plan rate of its rate area. ZIPs that span several\n" +
			"rate areas, or whose rate area has fewer than two Silver rates, are left blank.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := app.LoadEnvFile(envFile); err != nil {
				return err
			}
			logger.Setup()
			if cfg.DumpTo == nil {
				cfg.DumpTo = cmd.ErrOrStderr()
			}
			appCtx = app.New(cfg)
			return nil
		},
		RunE: runCalc,
	}

	cfg = app.Config{}
	root.PersistentFlags().StringVar(&cfg.Dir, "dir", "", "dataset directory (default \".\")")
	root.PersistentFlags().StringVar(&cfg.Zips, "zips", "", "postal-code table (default zips.csv)")
	root.PersistentFlags().StringVar(&cfg.Plans, "plans", "", "plan table (default plans.csv)")
	root.PersistentFlags().StringVar(&cfg.Targets, "targets", "", "target ZIP table (default slcsp.csv)")
	root.PersistentFlags().StringVarP(&cfg.Out, "out", "o", "", "write the report to this file instead of stdout")
	root.PersistentFlags().BoolVar(&cfg.Dump, "dump", false, "dump the rate index and ZIP resolutions to stderr")
	root.PersistentFlags().StringVar(&envFile, "env-file", app.DefaultEnvFile, "dotenv file with SLCSP_* settings")

	root.AddCommand(calcCmd(), explainCmd(), fingerprintCmd())
	return root
}
