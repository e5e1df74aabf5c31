package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print a short fingerprint of each input file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fps, err := appCtx.Fingerprints()
			if err != nil {
				return err
			}
			for _, fp := range fps {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s  %s\n", fp.Name, fp.Fingerprint, fp.Path)
			}
			return nil
		},
	}
}
