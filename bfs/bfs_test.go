package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlojax/graphon/bfs"
	"github.com/arlojax/graphon/graphcore"
	"github.com/arlojax/graphon/pfs"
)

func buildChain(t *testing.T) *graphcore.Graph {
	t.Helper()
	g := graphcore.NewGraph()
	edges := [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}}
	for _, e := range edges {
		_, err := g.AddEdgeByID("", e[0], e[1], graphcore.EdgeConfig{Directed: true})
		require.NoError(t, err)
	}
	return g
}

func TestBFS_ChainDepthsAndParents(t *testing.T) {
	g := buildChain(t)
	res, err := bfs.BFS(g, "A", bfs.WithDirMode(pfs.DirOut))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	assert.Equal(t, 1, res.Depth["B"])
	assert.Equal(t, 2, res.Depth["C"])
	assert.Equal(t, 3, res.Depth["D"])

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)
}

func TestBFS_StartNodeNotFound(t *testing.T) {
	g := buildChain(t)
	_, err := bfs.BFS(g, "Z")
	assert.ErrorIs(t, err, bfs.ErrStartNodeNotFound)
}

func TestBFS_MaxDepthLimitsTraversal(t *testing.T) {
	g := buildChain(t)
	res, err := bfs.BFS(g, "A", bfs.WithDirMode(pfs.DirOut), bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestBFS_NegativeMaxDepthIsOptionViolation(t *testing.T) {
	_, err := bfs.BFS(buildChain(t), "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_FilterNeighborSkipsEdges(t *testing.T) {
	g := buildChain(t)
	res, err := bfs.BFS(g, "A", bfs.WithDirMode(pfs.DirOut), bfs.WithFilterNeighbor(func(_, neighbor string) bool {
		return neighbor != "C"
	}))
	require.NoError(t, err)
	assert.NotContains(t, res.Order, "C")
	assert.NotContains(t, res.Order, "D") // only reachable through C
}

func TestBFS_OnVisitErrorAborts(t *testing.T) {
	g := buildChain(t)
	boom := errors.New("boom")
	_, err := bfs.BFS(g, "A", bfs.WithDirMode(pfs.DirOut), bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return boom
		}
		return nil
	}))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestBFS_CancelledContextIsReported(t *testing.T) {
	g := buildChain(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, graphcore.ErrCancelled)
}

func TestComponents_TwoDisjointChains(t *testing.T) {
	g := graphcore.NewGraph()
	_, err := g.AddEdgeByID("", "A", "B", graphcore.EdgeConfig{Directed: true})
	require.NoError(t, err)
	_, err = g.AddEdgeByID("", "X", "Y", graphcore.EdgeConfig{Directed: true})
	require.NoError(t, err)

	assignment, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, assignment["A"], assignment["B"])
	assert.Equal(t, assignment["X"], assignment["Y"])
	assert.NotEqual(t, assignment["A"], assignment["X"])

	count, err := bfs.ComponentCount(g)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestComponents_DirectedEdgeStillJoinsComponent(t *testing.T) {
	// Components uses DirAll, so a one-way edge still unifies both ends
	// into a single weakly-connected component.
	g := graphcore.NewGraph()
	_, err := g.AddEdgeByID("", "A", "B", graphcore.EdgeConfig{Directed: true})
	require.NoError(t, err)

	count, err := bfs.ComponentCount(g)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
