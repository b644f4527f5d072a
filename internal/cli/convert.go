// Package cli contains the cobra command definitions. Commands parse flags,
// call into the wired services, and print results; all behavior lives in
// the service layer.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/geobridge/internal/ports/primary"
	"github.com/example/geobridge/internal/wire"
)

// ConvertCmd returns the convert command
func ConvertCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "convert [export.json]",
		Short: "Convert a model export to a GeoJSON feature collection",
		Long: `Convert a systems-model entity export into a GeoJSON FeatureCollection.

Each exported entity becomes one feature. Geometry is carried over verbatim
when present; entities without geometry get a null geometry. Entities
missing an id, or sharing an id with another entity, abort the conversion.

Examples:
  geobridge convert model_export.json
  geobridge convert model_export.json --output federated_model.geojson`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if outputPath == "" {
				outputPath = strings.TrimSuffix(inputPath, ".json") + ".geojson"
			}

			resp, err := wire.ConvertService().Convert(cmd.Context(), primary.ConvertRequest{
				InputPath:  inputPath,
				OutputPath: outputPath,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Converted %d entities to %s\n", resp.FeatureCount, resp.OutputPath)
			for _, f := range resp.Features {
				fmt.Printf("  %-28s %-20s node=%s\n", f.ID, f.Type, f.NetworkNodeID)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output GeoJSON path (default: input with .geojson extension)")

	return cmd
}
