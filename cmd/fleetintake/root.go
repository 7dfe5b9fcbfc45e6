package main

import (
	"fmt"
	"os"

	"github.com/aretw0/fleetintake/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fleetintake",
	Short: "fleetintake interviews truck owners about their fleet",
	Long: `fleetintake runs a conversational interview that collects a company's trucks by
brand and model, checks the answers for consistency and appends the result to a
JSON lines file or a Redis list.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", config.DefaultPath, "Path to the YAML config file")
	flags.String("brands", "", "File with one known truck brand per line")
	flags.String("data", "", "JSON lines file that receives records (file store)")
	flags.String("log-dir", "", "Directory for chat transcripts")
	flags.String("store", "", "Record store: file or redis")
	flags.String("redis-addr", "", "Redis address (redis store)")
	flags.Bool("debug", false, "Enable debug logging to stderr")
}

// loadConfig layers the config file, FLEETINTAKE_* variables and flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	cfg, err := config.Load(path, flags.Changed("config"))
	if err != nil {
		return cfg, err
	}

	overrides := []struct {
		flag   string
		target *string
	}{
		{"brands", &cfg.BrandsFile},
		{"data", &cfg.DataFile},
		{"log-dir", &cfg.LogDir},
		{"store", &cfg.Store},
		{"redis-addr", &cfg.Redis.Addr},
		{"metrics-addr", &cfg.MetricsAddr},
	}
	for _, o := range overrides {
		if flags.Lookup(o.flag) != nil && flags.Changed(o.flag) {
			*o.target, _ = flags.GetString(o.flag)
		}
	}

	return cfg, cfg.Validate()
}
