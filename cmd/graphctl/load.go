package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arlojax/graphon/graphcore"
	"github.com/arlojax/graphon/loader"
)

// loadGraph opens path and parses it according to formatFlag.
func loadGraph(path string) (*graphcore.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphctl: %w", err)
	}
	defer f.Close()

	switch formatFlag {
	case "json":
		return loader.LoadJSON(f)
	case "csv-adj":
		return loader.LoadCSVAdjacency(f, loader.CSVAdjacencyConfig{})
	case "csv-edge":
		return loader.LoadCSVEdgeList(f, loader.CSVEdgeListConfig{})
	default:
		return nil, fmt.Errorf("graphctl: unrecognized --format %q (want json, csv-adj, or csv-edge)", formatFlag)
	}
}

var loadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Parse a graph file and print its node/edge counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(args[0])
		if err != nil {
			return err
		}
		stats := g.Stats()
		fmt.Printf("nodes=%d dir_edges=%d und_edges=%d mode=%s density=%.4f\n",
			stats.NrNodes, stats.NrDirEdges, stats.NrUndEdges, stats.Mode, stats.Density)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
}
