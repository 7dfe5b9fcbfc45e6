package main

import (
	"errors"
	"os"

	"github.com/aretw0/fleetintake"
	"github.com/aretw0/fleetintake/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one fleet interview",
	Long: `Starts an interview on stdin/stdout. When stdin is a terminal the interview is
styled; with --headless every prompt and message is a JSON event and answers
are read as JSON strings, one per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		debug, _ := cmd.Flags().GetBool("debug")
		headless, _ := cmd.Flags().GetBool("headless")

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		err = cli.RunSession(ctx, cfg, cli.SessionOptions{
			Debug:       debug,
			Headless:    headless,
			Interactive: !headless && term.IsTerminal(int(os.Stdin.Fd())),
			Version:     fleetintake.Version,
			In:          os.Stdin,
			Out:         os.Stdout,
		})
		if errors.Is(err, cli.ErrInterrupted) && ctx.Signal() != nil {
			cmd.PrintErrln("\nInterview cancelled, nothing was saved.")
			os.Exit(130)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("headless", false, "Exchange JSON events instead of text (for automation)")
	runCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")

	// Running without a subcommand starts an interview.
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
