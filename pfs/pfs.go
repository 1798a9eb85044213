package pfs

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/arlojax/graphon/graphcore"
	"github.com/arlojax/graphon/graphlog"
)

// Run performs a priority-first search from source over g under cfg (spec
// §4.4). It returns a Result map covering every node currently in g;
// nodes PFS never reaches keep distance +Inf, parent "", counter -1.
//
// Run validates cfg and source before doing any work, returning
// graphcore.ErrConfigError for a malformed DirMode or empty source, and
// graphcore.ErrNotFound if source is absent from g. ctx is checked once per
// pop from the frontier; a cancelled ctx aborts the run with
// graphcore.ErrCancelled (spec §5 cancellation).
//
// Negative edge weights are out-of-contract (spec §9 open question
// "Negative-weight PFS: no guard") — Run does not detect them and may
// produce a result inconsistent with true shortest paths if they are
// present, exactly like the underlying Dijkstra relaxation it generalizes.
func Run(ctx context.Context, g *graphcore.Graph, source string, cfg Config) (Result, error) {
	if source == "" {
		return nil, fmt.Errorf("pfs: %w: %v", graphcore.ErrConfigError, ErrEmptySource)
	}
	if cfg.DirMode < DirOut || cfg.DirMode > DirAll {
		return nil, fmt.Errorf("pfs: %w: %v", graphcore.ErrConfigError, ErrBadDirMode)
	}
	if !g.HasNodeID(source) {
		return nil, fmt.Errorf("pfs: source %q: %w", source, graphcore.ErrNotFound)
	}

	result := newResult(g, source)
	visited := make(map[string]bool, g.NrNodes())
	visitor := cfg.visitor()
	evalPriority := cfg.evalPriority()
	counter := 1

	pq := make(itemPQ, 0, g.NrNodes())
	heap.Init(&pq)
	heap.Push(&pq, &item{id: source, priority: 0})

	visitor.InitPFS(Scope{Graph: g, Result: result})

	for pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("pfs: %w", graphcore.ErrCancelled)
		}

		popped := heap.Pop(&pq).(*item)
		current := popped.id
		if visited[current] {
			continue
		}
		visited[current] = true

		if cfg.GoalNode != "" && current == cfg.GoalNode {
			graphlog.Get().Debug().Str("source", source).Str("goal", current).
				Float64("distance", result[current].Distance).Msg("pfs: goal reached")
			visitor.GoalReached(Scope{Graph: g, Result: result, Current: current})
			return result, nil
		}

		neighbors, err := cfg.DirMode.Neighbors(g, current)
		if err != nil {
			return nil, err
		}

		for _, ne := range neighbors {
			target := ne.Neighbor.ID
			proposed := evalPriority(result[current].Distance, ne, cfg.Weighted)
			adj := result[target].Distance

			scope := Scope{Graph: g, Result: result, Current: current, Neighbor: ne, Proposed: proposed}

			switch {
			case math.IsInf(adj, 1):
				result[target] = &State{Distance: proposed, Parent: current, Counter: counter}
				counter++
				heap.Push(&pq, &item{id: target, priority: proposed})
				visitor.NotEncountered(scope)
				visitor.NodeOpen(scope)
			case proposed < adj:
				result[target].Distance = proposed
				result[target].Parent = current
				result[target].Counter = counter
				counter++
				heap.Push(&pq, &item{id: target, priority: proposed})
				visitor.BetterPath(scope)
				visitor.NodeOpen(scope)
			case proposed == adj:
				visitor.NodeClosed(scope)
			}
		}
	}

	return result, nil
}
