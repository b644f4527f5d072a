package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/geobridge/internal/ports/primary"
	"github.com/example/geobridge/internal/wire"
)

// SyncCmd returns the sync command
func SyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Exchange feature collections with the hosted feature service",
		Long: `Push local collections to the hosted feature service, or pull the
current remote collection. The service endpoint and token come from
.geobridge/config.json or the GEOBRIDGE_SERVICE_URL and
GEOBRIDGE_SERVICE_TOKEN environment variables.`,
	}

	cmd.AddCommand(syncPushCmd())
	cmd.AddCommand(syncPullCmd())

	return cmd
}

func syncPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push [model.geojson]",
		Short: "Publish a local collection to the feature service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.SyncService().Push(cmd.Context(), primary.PushRequest{InputPath: args[0]})
			if err != nil {
				return err
			}
			if resp.ServiceError != "" {
				fmt.Printf("%s push failed: %s\n", color.New(color.FgYellow).Sprint("⚠"), resp.ServiceError)
				fmt.Println("The local collection is unchanged; retry when the service is reachable.")
				return nil
			}

			fmt.Printf("✓ Published %d features as item %s\n", resp.FeatureCount, resp.ItemID)
			if resp.ItemURL != "" {
				fmt.Printf("  %s\n", resp.ItemURL)
			}
			return nil
		},
	}
}

func syncPullCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Retrieve the current remote collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.SyncService().Pull(cmd.Context(), primary.PullRequest{OutputPath: outputPath})
			if err != nil {
				return err
			}
			if resp.ServiceError != "" {
				fmt.Printf("%s pull failed: %s\n", color.New(color.FgYellow).Sprint("⚠"), resp.ServiceError)
				return nil
			}

			fmt.Printf("✓ Pulled %d features to %s\n", resp.FeatureCount, resp.OutputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "pulled_model.geojson", "where to write the remote collection")

	return cmd
}
