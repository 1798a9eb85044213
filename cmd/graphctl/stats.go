package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arlojax/graphon/bfs"
	"github.com/arlojax/graphon/pfs"
)

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Print node/edge counts, component count, and closeness centrality",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(args[0])
		if err != nil {
			return err
		}

		s := g.Stats()
		fmt.Printf("nodes=%d dir_edges=%d und_edges=%d mode=%s density=%.4f\n",
			s.NrNodes, s.NrDirEdges, s.NrUndEdges, s.Mode, s.Density)

		components, err := bfs.ComponentCount(g)
		if err != nil {
			return err
		}
		fmt.Printf("components=%d\n", components)

		closeness, err := pfs.ClosenessMatrix(g)
		if err != nil {
			return err
		}
		for _, id := range g.NodeIDs() {
			fmt.Printf("closeness[%s]=%.6f\n", id, closeness[id])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
