package main

import (
	"github.com/aretw0/fleetintake/internal/cli"
	"github.com/spf13/cobra"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Print the records stored so far",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		store, err := cli.OpenStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		asJSON, _ := cmd.Flags().GetBool("json")
		return cli.PrintRecords(cmd.Context(), cmd.OutOrStdout(), store, asJSON)
	},
}

func init() {
	rootCmd.AddCommand(recordsCmd)
	recordsCmd.Flags().Bool("json", false, "Print JSON lines instead of Markdown")
}
