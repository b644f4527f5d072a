package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/geobridge/internal/ports/primary"
	"github.com/example/geobridge/internal/wire"
)

// SimulateCmd returns the simulate command
func SimulateCmd() *cobra.Command {
	var outputPath string
	var reportPath string
	var rainfall float64

	cmd := &cobra.Command{
		Use:   "simulate [model.geojson]",
		Short: "Apply one stock-flow update step to a feature collection",
		Long: `Apply one heuristic stock-flow update step to the collection.

Tracked quantities (biomass, fire risk, grazing capacity, water
availability, suitability) are recomputed feature by feature and written
back under sd_-prefixed attributes, alongside an old/new report. Features
carrying a non-numeric tracked attribute are skipped with a diagnostic.

Examples:
  geobridge simulate federated_model.geojson
  geobridge simulate federated_model.geojson --rainfall 0.8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			base := strings.TrimSuffix(inputPath, ".geojson")
			if outputPath == "" {
				outputPath = base + "_sd.geojson"
			}
			if reportPath == "" {
				reportPath = base + "_sd_report.json"
			}

			return wire.SimulateAdapter().Run(cmd.Context(), inputPath, outputPath, reportPath, rainfall)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "updated collection path (default: input with _sd suffix)")
	cmd.Flags().StringVar(&reportPath, "report", "", "old/new report path (default: input with _sd_report.json suffix)")
	cmd.Flags().Float64Var(&rainfall, "rainfall", primary.DefaultRainfallIndex, "rainfall index scenario input")

	return cmd
}
