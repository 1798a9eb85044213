package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arlojax/graphon/pfs"
)

var (
	dijkstraFrom string
	dijkstraTo   string
)

var dijkstraCmd = &cobra.Command{
	Use:   "dijkstra <file>",
	Short: "Compute shortest paths from a source node",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if dijkstraFrom == "" {
			return fmt.Errorf("graphctl: --from is required")
		}
		g, err := loadGraph(args[0])
		if err != nil {
			return err
		}

		res, err := pfs.Dijkstra(context.Background(), g, dijkstraFrom, dijkstraTo)
		if err != nil {
			return err
		}

		if dijkstraTo != "" {
			state := res[dijkstraTo]
			fmt.Printf("%s -> %s: distance=%v parent=%s\n", dijkstraFrom, dijkstraTo, state.Distance, state.Parent)
			return nil
		}
		for _, id := range g.NodeIDs() {
			state := res[id]
			fmt.Printf("%s: distance=%v parent=%s\n", id, state.Distance, state.Parent)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dijkstraCmd)
	dijkstraCmd.Flags().StringVar(&dijkstraFrom, "from", "", "source node id (required)")
	dijkstraCmd.Flags().StringVar(&dijkstraTo, "to", "", "goal node id; stops the search early when reached")
}
