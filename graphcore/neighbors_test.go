package graphcore_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlojax/graphon/graphcore"
)

func buildDiamond(t *testing.T) *graphcore.Graph {
	t.Helper()
	g := graphcore.NewGraph()
	// A -> B -> D, A -> C -> D (directed diamond), plus one undirected B-C.
	for id, e := range map[string][3]string{
		"AB": {"A", "B", "dir"},
		"AC": {"A", "C", "dir"},
		"BD": {"B", "D", "dir"},
		"CD": {"C", "D", "dir"},
		"BC": {"B", "C", "und"},
	} {
		directed := e[2] == "dir"
		_, err := g.AddEdgeByID(id, e[0], e[1], graphcore.EdgeConfig{Directed: directed})
		require.NoError(t, err)
	}
	return g
}

func neighborIDs(ne []graphcore.NeighborEdge) []string {
	out := make([]string, len(ne))
	for i, e := range ne {
		out[i] = e.Neighbor.ID
	}
	sort.Strings(out)
	return out
}

func TestNeighbors_PrevNextConnReach(t *testing.T) {
	g := buildDiamond(t)

	prev, err := g.PrevNodes("D", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, neighborIDs(prev))

	next, err := g.NextNodes("A", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, neighborIDs(next))

	conn, err := g.ConnNodes("B", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, neighborIDs(conn))

	reach, err := g.ReachNodes("B", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D"}, neighborIDs(reach))

	all, err := g.AllNeighbors("B", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D"}, neighborIDs(all))
}

func TestNeighbors_IdentityDedup(t *testing.T) {
	g := graphcore.NewGraph()
	_, err := g.AddEdgeByID("e1", "A", "B", graphcore.EdgeConfig{Directed: true})
	require.NoError(t, err)
	_, err = g.AddEdgeByID("e2", "A", "B", graphcore.EdgeConfig{Directed: true})
	require.NoError(t, err)

	byNeighbor := func(ne graphcore.NeighborEdge) string { return ne.Neighbor.ID }

	withoutDedup, err := g.NextNodes("A", nil)
	require.NoError(t, err)
	assert.Len(t, withoutDedup, 2)

	deduped, err := g.NextNodes("A", byNeighbor)
	require.NoError(t, err)
	assert.Len(t, deduped, 1)
}
