package cli

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/geobridge/internal/ports/primary"
	"github.com/example/geobridge/internal/wire"
)

// PipelineCmd returns the pipeline command
func PipelineCmd() *cobra.Command {
	var outputDir string
	var rainfall float64
	var changeLogPath string

	cmd := &cobra.Command{
		Use:   "pipeline [export.json]",
		Short: "Run convert, simulate, causal, and network in one pass",
		Long: `Run the whole local pipeline over one model export.

Stages run in order: conversion, stock-flow update, causal extraction,
relationship graph build. A failing stage after conversion is reported
and the remaining stages still run, so every artifact that can be
produced is produced.

Examples:
  geobridge pipeline model_export.json
  geobridge pipeline model_export.json --out results --changes workshop_changes.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.PipelineService().Run(cmd.Context(), primary.PipelineRequest{
				InputPath:     args[0],
				OutputDir:     outputDir,
				RainfallIndex: rainfall,
				ChangeLogPath: changeLogPath,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ convert:  %d features\n", resp.Convert.FeatureCount)
			if resp.StockFlow != nil {
				fmt.Printf("✓ simulate: %d updated, %d skipped\n", resp.StockFlow.UpdatedCount, resp.StockFlow.SkippedCount)
			}
			if resp.Causal != nil {
				fmt.Printf("✓ causal:   %d factors, %d links\n", len(resp.Causal.Factors), resp.Causal.LinkCount)
			}
			if resp.Network != nil {
				fmt.Printf("✓ network:  %d nodes, %d edges\n", resp.Network.NodeCount, resp.Network.EdgeCount)
			}

			if len(resp.StageErrors) > 0 {
				fmt.Println()
				stages := make([]string, 0, len(resp.StageErrors))
				for stage := range resp.StageErrors {
					stages = append(stages, stage)
				}
				sort.Strings(stages)
				warn := color.New(color.FgYellow).Sprint("⚠")
				for _, stage := range stages {
					fmt.Printf("%s %s stage failed: %s\n", warn, stage, resp.StageErrors[stage])
				}
			}

			fmt.Printf("\nArtifacts written to %s/\n", outputDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "out", "output", "artifact output directory")
	cmd.Flags().Float64Var(&rainfall, "rainfall", primary.DefaultRainfallIndex, "rainfall index scenario input")
	cmd.Flags().StringVar(&changeLogPath, "changes", "", "change-summary document for trust weighting")

	return cmd
}
