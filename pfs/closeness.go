package pfs

import (
	"context"
	"math"

	"github.com/arlojax/graphon/compute"
	"github.com/arlojax/graphon/graphcore"
	"github.com/arlojax/graphon/matrix"
)

// ClosenessMatrix computes closeness centrality via Floyd–Warshall over
// the weighted adjacency matrix (spec §4.4 "closeness centrality", route
// a). For each node u, closeness[u] = (n-1) / Σ d(u,v) over finite,
// distinct v; nodes with no finite distance to any other node get 0.
func ClosenessMatrix(g *graphcore.Graph) (map[string]float64, error) {
	m, order, err := compute.AdjMatrixW(g, true, false, 0)
	if err != nil {
		return nil, err
	}
	n := len(order)
	out := make(map[string]float64, n)
	if n == 0 {
		return out, nil
	}

	if err := matrix.InitDistances(m); err != nil {
		return nil, err
	}
	if err := matrix.FloydWarshall(m); err != nil {
		return nil, err
	}

	for i, u := range order {
		sum := 0.0
		for j := range order {
			if j == i {
				continue
			}
			d, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			if !math.IsInf(d, 1) {
				sum += d
			}
		}
		if sum > 0 {
			out[u] = float64(n-1) / sum
		} else {
			out[u] = 0
		}
	}
	return out, nil
}

// ClosenessPFS computes closeness centrality via a per-source PFS run for
// every node (spec §4.4 "closeness centrality", route b). ClosenessMatrix
// treats every edge as traversable both ways, so the two agree on a
// connected graph when dirMode does too: DirAll on any graph, or DirUnd /
// DirMixed on a graph with only undirected edges.
func ClosenessPFS(ctx context.Context, g *graphcore.Graph, dirMode DirMode) (map[string]float64, error) {
	order := g.NodeIDs()
	n := len(order)
	out := make(map[string]float64, n)
	if n == 0 {
		return out, nil
	}

	for _, u := range order {
		res, err := Run(ctx, g, u, Config{DirMode: dirMode, Weighted: true})
		if err != nil {
			return nil, err
		}
		sum := 0.0
		for v, st := range res {
			if v == u {
				continue
			}
			if !math.IsInf(st.Distance, 1) {
				sum += st.Distance
			}
		}
		if sum > 0 {
			out[u] = float64(n-1) / sum
		} else {
			out[u] = 0
		}
	}
	return out, nil
}
