package main

import (
	"log/slog"

	"github.com/aretw0/fleetintake/internal/cli"
	"github.com/aretw0/fleetintake/internal/logging"
	"github.com/aretw0/fleetintake/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server on stdio",
	Long: `Exposes brand recognition, record validation and the interview graph as MCP
tools, so agents can check answers and stored records without running an
interview. Logs go to stderr to keep the JSON-RPC stream on stdout clean.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		brands, err := cli.LoadBrands(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		debug, _ := cmd.Flags().GetBool("debug")
		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		logger := logging.New(level)

		logger.Info("starting MCP server (stdio)", "brands", len(brands))
		return mcp.NewServer(brands, cfg.MatchThreshold, logger).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
