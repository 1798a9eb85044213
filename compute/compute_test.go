package compute_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlojax/graphon/compute"
	"github.com/arlojax/graphon/graphcore"
)

func buildTriangleUndirected(t *testing.T) *graphcore.Graph {
	t.Helper()
	g := graphcore.NewGraph()
	_, err := g.AddEdgeByID("", "A", "B", graphcore.EdgeConfig{Weighted: true, Weight: 1})
	require.NoError(t, err)
	_, err = g.AddEdgeByID("", "B", "C", graphcore.EdgeConfig{Weighted: true, Weight: 2})
	require.NoError(t, err)
	_, err = g.AddEdgeByID("", "C", "A", graphcore.EdgeConfig{Weighted: true, Weight: 3})
	require.NoError(t, err)
	return g
}

func TestAdjListW_MinWeightWinsOnParallelEdges(t *testing.T) {
	g := graphcore.NewGraph()
	_, err := g.AddEdgeByID("e1", "A", "B", graphcore.EdgeConfig{Directed: true, Weighted: true, Weight: 5})
	require.NoError(t, err)
	_, err = g.AddEdgeByID("e2", "A", "B", graphcore.EdgeConfig{Directed: true, Weighted: true, Weight: 2})
	require.NoError(t, err)

	adj, err := compute.AdjListW(g, false, false, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, adj["A"]["B"])
}

func TestAdjListW_IncludeSelfForcesSelfDistance(t *testing.T) {
	g := buildTriangleUndirected(t)
	adj, err := compute.AdjListW(g, false, true, 0)
	require.NoError(t, err)
	for _, id := range []string{"A", "B", "C"} {
		assert.Equal(t, 0.0, adj[id][id])
	}
}

func TestAdjMatrix_DiagonalAlwaysZero(t *testing.T) {
	g := buildTriangleUndirected(t)
	m, order, err := compute.AdjMatrix(g)
	require.NoError(t, err)
	for i := range order {
		v, err := m.At(i, i)
		require.NoError(t, err)
		assert.Equal(t, 0.0, v)
	}
}

func TestAdjMatrixW_FinitenessMatchesAdjListW(t *testing.T) {
	g := buildTriangleUndirected(t)
	adj, err := compute.AdjListW(g, true, false, 0)
	require.NoError(t, err)
	m, order, err := compute.AdjMatrixW(g, true, false, 0)
	require.NoError(t, err)

	idx := make(map[string]int, len(order))
	for i, id := range order {
		idx[id] = i
	}

	for u, row := range adj {
		for v, w := range row {
			got, err := m.At(idx[u], idx[v])
			require.NoError(t, err)
			assert.Equal(t, w, got)
		}
	}
	// anything not present in adj[u] must read back as +Inf.
	for _, u := range order {
		for _, v := range order {
			if _, ok := adj[u][v]; !ok {
				got, err := m.At(idx[u], idx[v])
				require.NoError(t, err)
				assert.True(t, math.IsInf(got, 1))
			}
		}
	}
}

func TestAdjMatrixW_SymmetricOnUndirectedOnlyGraphWithIncoming(t *testing.T) {
	g := buildTriangleUndirected(t)
	m, order, err := compute.AdjMatrixW(g, true, false, 0)
	require.NoError(t, err)

	for i := range order {
		for j := range order {
			vij, err := m.At(i, j)
			require.NoError(t, err)
			vji, err := m.At(j, i)
			require.NoError(t, err)
			assert.Equal(t, vij, vji, "expected symmetry at (%d,%d)", i, j)
		}
	}
}

func TestNextArray_DirectEdgesAndSelf(t *testing.T) {
	g := graphcore.NewGraph()
	_, err := g.AddEdgeByID("", "A", "B", graphcore.EdgeConfig{Directed: true})
	require.NoError(t, err)

	next, order, err := compute.NextArray(g, false)
	require.NoError(t, err)
	idx := make(map[string]int, len(order))
	for i, id := range order {
		idx[id] = i
	}

	require.NotNil(t, next[idx["A"]][idx["A"]])
	assert.Equal(t, idx["A"], *next[idx["A"]][idx["A"]])
	require.NotNil(t, next[idx["A"]][idx["B"]])
	assert.Equal(t, idx["B"], *next[idx["A"]][idx["B"]])
	assert.Nil(t, next[idx["B"]][idx["A"]])
}
