package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/arlojax/graphon/pagerank"
)

var (
	pagerankAlpha      float64
	pagerankIterations int
)

var pagerankCmd = &cobra.Command{
	Use:   "pagerank <file>",
	Short: "Run PageRank and print ranks in descending order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(args[0])
		if err != nil {
			return err
		}

		ranks, err := pagerank.Run(context.Background(), g, pagerank.Config{
			Alpha:      pagerankAlpha,
			Iterations: pagerankIterations,
		})
		if err != nil {
			return err
		}

		ids := make([]string, 0, len(ranks))
		for id := range ranks {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ranks[ids[i]] > ranks[ids[j]] })

		for _, id := range ids {
			fmt.Printf("%s: %.6f\n", id, ranks[id])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pagerankCmd)
	pagerankCmd.Flags().Float64Var(&pagerankAlpha, "alpha", 0.15, "teleport probability")
	pagerankCmd.Flags().IntVar(&pagerankIterations, "iterations", 1000, "maximum power-iteration rounds")
}
