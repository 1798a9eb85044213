// Package main implements graphctl, a thin CLI wrapping the graphon
// library: load a graph file and run dijkstra, pagerank, or stats against
// it (SPEC_FULL.md ADDED CLI surface, grounded on dbgraph's cmd/ layout:
// one file per subcommand, a package-level rootCmd, Execute called from
// main).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "graphctl",
	Short: "Load and analyze graphs from the command line",
	Long:  `graphctl loads a graph from JSON or CSV and runs traversal, ranking, or summary commands against it.`,
}

// Execute runs the root command, exiting with status 1 on error.
func Execute(version string) {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var formatFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "json", "input format: json, csv-adj, or csv-edge")
}
