package main

import (
	"fmt"

	"github.com/aretw0/fleetintake/internal/cli"
	"github.com/spf13/cobra"
)

var brandsCmd = &cobra.Command{
	Use:   "brands",
	Short: "List the known brands or test brand recognition",
	Example: `  fleetintake brands
  fleetintake brands --match "two volvos and a mercedez"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		brands, err := cli.LoadBrands(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		text, _ := cmd.Flags().GetString("match")
		if !cmd.Flags().Changed("match") {
			cli.PrintBrands(cmd.OutOrStdout(), brands)
			return nil
		}
		if cli.PrintMatch(cmd.OutOrStdout(), brands, cfg.MatchThreshold, text) == 0 {
			return fmt.Errorf("no brand recognized")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(brandsCmd)
	brandsCmd.Flags().String("match", "", "Answer text to run through the brand matcher")
}
