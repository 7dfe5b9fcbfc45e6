package main

import (
	"fmt"

	"github.com/aretw0/fleetintake/internal/presentation/graph"
	"github.com/aretw0/fleetintake/internal/validator"
	"github.com/aretw0/fleetintake/pkg/interview"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the interview state graph",
	Long: `Checks the interview states for unreachable or dead-end states and outputs a
Mermaid diagram (graph TD), including correction edges.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		edges := interview.Edges()
		if err := validator.ValidateGraph(edges, interview.AskName); err != nil {
			return fmt.Errorf("invalid interview graph: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(edges, nil))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
