package main

import (
	"fmt"

	"github.com/aretw0/fleetintake"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fleetintake",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fleetintake version %s\n", fleetintake.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
