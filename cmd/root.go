package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/klippa-app/snapprint/version"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:     "snapprint",
		Short:   "Crop, brighten and print video snapshots",
		Long:    `snapprint crops the black borders off screenshots (for example VLC snapshots), lifts their shadows by a configurable amount and sends them to the default printer`,
		Version: version.VERSION,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Arguments are valid at this point, errors from here on are
			// not usage errors.
			cmd.SilenceUsage = true
		},
		SilenceErrors: true,
	}
)

// Execute executes the root command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd.SetOut(os.Stdout)
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		rootCmd.PrintErrf("error: %s\n", err)
	}
	return err
}
