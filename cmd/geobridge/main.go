package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/geobridge/internal/cli"
	"github.com/example/geobridge/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "geobridge",
		Short:   "geobridge - GeoJSON bridge for federated landscape models",
		Version: version.String(),
		Long: `geobridge converts systems-model exports into GeoJSON, applies
stock-flow updates, extracts causal factor graphs, builds actor
relationship networks, and exchanges collections with a hosted feature
service.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.ConvertCmd())
	rootCmd.AddCommand(cli.SimulateCmd())
	rootCmd.AddCommand(cli.CausalCmd())
	rootCmd.AddCommand(cli.NetworkCmd())
	rootCmd.AddCommand(cli.PipelineCmd())
	rootCmd.AddCommand(cli.SyncCmd())
	rootCmd.AddCommand(cli.HistoryCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
