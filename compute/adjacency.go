// File: adjacency.go
// Role: AdjListW — the sparse weighted adjacency dictionary (spec §4.3).
package compute

import "github.com/arlojax/graphon/graphcore"

// AdjDict is the sparse adjacency representation { u -> { v -> weight } }.
type AdjDict map[string]map[string]float64

func ensureRow(d AdjDict, id string) map[string]float64 {
	row, ok := d[id]
	if !ok {
		row = make(map[string]float64)
		d[id] = row
	}
	return row
}

// AdjListW builds the per-node neighbor-weight mapping (spec §4.3).
//
// Iteration domain per node u is ReachNodes(u); when incoming is true the
// domain also includes PrevNodes(u), and every entry discovered that way
// is mirrored into result[v][u] as well — this is how an undirected
// edge's mutual reachability, and a directed edge's reverse weight, show
// up in the symmetric view used by adjMatrixW(incoming=true).
//
// When multiple edges connect u to the same v, the minimum weight wins.
// When includeSelf is set, result[u][u] is forced to selfDist regardless
// of any self-loop weight that iteration would otherwise have produced.
func AdjListW(g *graphcore.Graph, incoming, includeSelf bool, selfDist float64) (AdjDict, error) {
	result := make(AdjDict, g.NrNodes())

	relax := func(u, v string, w float64) {
		row := ensureRow(result, u)
		if cur, ok := row[v]; !ok || w < cur {
			row[v] = w
		}
	}

	for _, u := range g.NodeIDs() {
		ensureRow(result, u)

		domain, err := g.ReachNodes(u, nil)
		if err != nil {
			return nil, err
		}
		for _, ne := range domain {
			relax(u, ne.Neighbor.ID, ne.Edge.EffectiveWeight())
		}

		if incoming {
			prev, err := g.PrevNodes(u, nil)
			if err != nil {
				return nil, err
			}
			for _, ne := range prev {
				v := ne.Neighbor.ID
				w := ne.Edge.EffectiveWeight()
				relax(u, v, w)
				relax(v, u, w)
			}
		}

		if includeSelf {
			ensureRow(result, u)[u] = selfDist
		}
	}

	return result, nil
}
