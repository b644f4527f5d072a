package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/geobridge/internal/ports/primary"
	"github.com/example/geobridge/internal/wire"
)

// NetworkCmd returns the network command
func NetworkCmd() *cobra.Command {
	var changeLogPath string
	var nodesPath string
	var edgesPath string
	var graphMLPath string
	var kumuPath string
	var reportPath string

	cmd := &cobra.Command{
		Use:   "network [model.geojson]",
		Short: "Build the actor relationship graph from a feature collection",
		Long: `Build the actor relationship graph.

Features carrying a network node id become nodes; their declared
partnership references become undirected edges. An optional change log
from a participatory session adds trust weight to edges between named
participants. Exports cover CSV node/edge lists, GraphML, and a
network-visualization JSON, plus a text report.

Examples:
  geobridge network federated_model_sd.geojson
  geobridge network federated_model_sd.geojson --changes workshop_changes.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.NetworkAdapter().Build(cmd.Context(), primary.NetworkRequest{
				InputPath:     args[0],
				ChangeLogPath: changeLogPath,
				NodesCSVPath:  nodesPath,
				EdgesCSVPath:  edgesPath,
				GraphMLPath:   graphMLPath,
				KumuPath:      kumuPath,
				ReportPath:    reportPath,
			})
		},
	}

	cmd.Flags().StringVar(&changeLogPath, "changes", "", "change-summary document for trust weighting")
	cmd.Flags().StringVar(&nodesPath, "nodes", "sna_nodes.csv", "node list CSV path")
	cmd.Flags().StringVar(&edgesPath, "edges", "sna_edges.csv", "edge list CSV path")
	cmd.Flags().StringVar(&graphMLPath, "graphml", "sna_network.graphml", "GraphML export path")
	cmd.Flags().StringVar(&kumuPath, "kumu", "kumu_network.json", "network-visualization JSON path")
	cmd.Flags().StringVar(&reportPath, "report", "sna_report.txt", "text report path")

	return cmd
}
