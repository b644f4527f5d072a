package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/geobridge/internal/ports/primary"
	"github.com/example/geobridge/internal/wire"
)

// CausalCmd returns the causal command
func CausalCmd() *cobra.Command {
	var outputPath string
	var summaryPath string

	cmd := &cobra.Command{
		Use:   "causal [model.geojson]",
		Short: "Extract the causal factor graph from a feature collection",
		Long: `Extract the causal loop diagram from a feature collection.

Factors enter the graph when any feature carries a matching attribute;
links come from a fixed rule table and are included only when both
endpoint factors are present. The output is a visualization-ready causal
map plus a markdown summary.

Examples:
  geobridge causal federated_model_sd.geojson
  geobridge causal federated_model_sd.geojson --output cld.json --summary cld.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.CausalService().Extract(cmd.Context(), primary.CausalRequest{
				InputPath:   args[0],
				OutputPath:  outputPath,
				SummaryPath: summaryPath,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Extracted %d factors, %d causal links\n", len(resp.Factors), resp.LinkCount)
			for _, factor := range resp.Factors {
				fmt.Printf("  %-24s %.3f\n", factor.Name, factor.Value)
			}
			fmt.Printf("\nCausal map: %s\nSummary:    %s\n", resp.OutputPath, resp.SummaryPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "cld_network.json", "causal map JSON path")
	cmd.Flags().StringVar(&summaryPath, "summary", "cld_summary.md", "markdown summary path")

	return cmd
}
