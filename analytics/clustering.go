package analytics

import (
	"context"

	"github.com/arlojax/graphon/graphcore"
	"github.com/arlojax/graphon/matrix"
)

// ClusteringCoefficients computes the per-node clustering coefficient
// cc(i) = A³[i][i] / (deg·(deg−1)), doubled when directed is true (spec
// §4.6). Nodes with degree 0 or 1 (denominator 0) get coefficient 0.
func ClusteringCoefficients(ctx context.Context, g *graphcore.Graph, directed bool, mult matrix.Multiplier) (map[string]float64, error) {
	_, a3, order, err := computePowers(ctx, g, mult)
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(order))
	for i, id := range order {
		node, err := g.GetNodeByID(id)
		if err != nil {
			return nil, err
		}
		deg := float64(node.Degree())
		denom := deg * (deg - 1)
		if denom == 0 {
			out[id] = 0
			continue
		}
		diag, err := a3.At(i, i)
		if err != nil {
			return nil, err
		}
		cc := diag / denom
		if directed {
			cc *= 2
		}
		out[id] = cc
	}
	return out, nil
}
