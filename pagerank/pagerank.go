package pagerank

import (
	"context"
	"fmt"
	"math"

	"github.com/arlojax/graphon/graphcore"
	"github.com/arlojax/graphon/graphlog"
)

// Run computes PageRank over g under cfg (spec §4.5), returning a mapping
// from node id to final rank. Preprocessing assigns each node an array
// index in insertion order (spec §8 invariant 1) into a transient
// side-table, never touching the node's feature bag.
//
// outDeg[i] is OutDegree(i) + UndDegree(i) (spec §9 "Mixed-graph
// semantics": an undirected edge counts once toward outDeg even though it
// also appears in the pull-set of both endpoints). pull[i] is the set of
// indices that push rank into i, drawn from PrevNodes(i) ∪ ConnNodes(i).
//
// Run fails with graphcore.ErrInvariantViolation if any pulling node has
// outDeg 0 — by construction this is unreachable, since a node only
// appears in a pull-set when it has an edge to the node pulling from it,
// which guarantees its outDeg is at least 1.
func Run(ctx context.Context, g *graphcore.Graph, cfg Config) (map[string]float64, error) {
	cfg = cfg.withDefaults()

	order := g.NodeIDs()
	n := len(order)
	if n == 0 {
		return map[string]float64{}, nil
	}

	prIndex := make(map[string]int, n)
	for i, id := range order {
		prIndex[id] = i
	}

	initVal := cfg.Init(g)
	damp := cfg.AlphaDamp(g)

	old := make([]float64, n)
	curr := make([]float64, n)
	for i := range old {
		old[i] = initVal
	}

	outDeg := make([]float64, n)
	pull := make([][]int, n)
	for i, id := range order {
		node, err := g.GetNodeByID(id)
		if err != nil {
			return nil, err
		}
		outDeg[i] = float64(node.OutDegree() + node.UndDegree())

		prev, err := g.PrevNodes(id, nil)
		if err != nil {
			return nil, err
		}
		conn, err := g.ConnNodes(id, nil)
		if err != nil {
			return nil, err
		}
		for _, ne := range prev {
			pull[i] = append(pull[i], prIndex[ne.Neighbor.ID])
		}
		for _, ne := range conn {
			pull[i] = append(pull[i], prIndex[ne.Neighbor.ID])
		}
	}

	for t := 0; t < cfg.Iterations; t++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("pagerank: %w", graphcore.ErrCancelled)
		}

		delta := 0.0
		for i := 0; i < n; i++ {
			s := 0.0
			for _, j := range pull[i] {
				if outDeg[j] == 0 {
					return nil, fmt.Errorf("pagerank: node %q has zero out-degree but appears in a pull-set: %w", order[j], graphcore.ErrInvariantViolation)
				}
				s += old[j] / outDeg[j]
			}
			curr[i] = (1-cfg.Alpha)*s + cfg.Alpha/damp
			delta += math.Abs(curr[i] - old[i])
		}

		old, curr = curr, old
		if delta <= cfg.Convergence {
			graphlog.Get().Debug().Int("iteration", t+1).Float64("delta", delta).Msg("pagerank: converged")
			break
		}
	}

	result := make(map[string]float64, n)
	for i, id := range order {
		result[id] = old[i]
	}
	return result, nil
}
