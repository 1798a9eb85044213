// File: matrices.go
// Role: dense projections built on top of AdjListW — AdjMatrix,
// AdjMatrixW, NextArray (spec §4.3).
package compute

import (
	"math"

	"github.com/arlojax/graphon/graphcore"
	"github.com/arlojax/graphon/matrix"
)

func indexOf(order []string) map[string]int {
	idx := make(map[string]int, len(order))
	for i, id := range order {
		idx[id] = i
	}
	return idx
}

// AdjMatrix builds the binary adjacency matrix: cell (i,j) = 1 iff a
// finite weight exists between node i and node j, diagonal always 0.
// Row/column order is the graph's node insertion order.
func AdjMatrix(g *graphcore.Graph) (*matrix.Dense, []string, error) {
	order := g.NodeIDs()
	n := len(order)
	m, err := matrix.NewDense(maxOne(n), maxOne(n))
	if err != nil {
		return nil, nil, err
	}
	if n == 0 {
		return m, order, nil
	}

	adj, err := AdjListW(g, false, false, 0)
	if err != nil {
		return nil, nil, err
	}
	idx := indexOf(order)

	for u, row := range adj {
		i := idx[u]
		for v, w := range row {
			if v == u || math.IsInf(w, 0) || math.IsNaN(w) {
				continue
			}
			if err := m.Set(i, idx[v], 1); err != nil {
				return nil, nil, err
			}
		}
	}
	return m, order, nil
}

// AdjMatrixW builds the weighted adjacency matrix: selfDist on the
// diagonal when includeSelf is set, the edge weight where an edge exists,
// +Inf ("no edge") elsewhere.
func AdjMatrixW(g *graphcore.Graph, incoming, includeSelf bool, selfDist float64) (*matrix.Dense, []string, error) {
	order := g.NodeIDs()
	n := len(order)
	m, err := matrix.NewDense(maxOne(n), maxOne(n))
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < maxOne(n); i++ {
		for j := 0; j < maxOne(n); j++ {
			if err := m.Set(i, j, math.Inf(1)); err != nil {
				return nil, nil, err
			}
		}
	}
	if n == 0 {
		return m, order, nil
	}

	adj, err := AdjListW(g, incoming, includeSelf, selfDist)
	if err != nil {
		return nil, nil, err
	}
	idx := indexOf(order)

	for u, row := range adj {
		i := idx[u]
		for v, w := range row {
			if err := m.Set(i, idx[v], w); err != nil {
				return nil, nil, err
			}
		}
	}
	return m, order, nil
}

// maxOne avoids constructing a 0x0 Dense, which matrix.NewDense rejects;
// callers special-case n==0 and never read from the placeholder row/col.
func maxOne(n int) int {
	if n == 0 {
		return 1
	}
	return n
}

// NextArray builds the successor matrix used to seed Floyd–Warshall path
// reconstruction (spec §4.3): cell (i,j) is &j when i==j or j is directly
// reachable from i, else nil.
func NextArray(g *graphcore.Graph, incoming bool) ([][]*int, []string, error) {
	order := g.NodeIDs()
	n := len(order)

	adj, err := AdjListW(g, incoming, false, 0)
	if err != nil {
		return nil, nil, err
	}
	idx := indexOf(order)

	next := make([][]*int, n)
	for i := range next {
		next[i] = make([]*int, n)
	}
	for i := range order {
		ii := i
		next[i][i] = &ii
	}
	for u, row := range adj {
		i := idx[u]
		for v, w := range row {
			if math.IsInf(w, 0) {
				continue
			}
			j := idx[v]
			jj := j
			next[i][j] = &jj
		}
	}
	return next, order, nil
}
