package pfs_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlojax/graphon/graphcore"
	"github.com/arlojax/graphon/pfs"
)

func buildS1(t *testing.T) *graphcore.Graph {
	t.Helper()
	g := graphcore.NewGraph()
	edges := []struct {
		a, b string
		w    float64
	}{
		{"A", "B", 1}, {"A", "C", 4}, {"B", "C", 2}, {"B", "D", 6}, {"C", "D", 3},
	}
	for _, e := range edges {
		_, err := g.AddEdgeByID("", e.a, e.b, graphcore.EdgeConfig{Directed: true, Weighted: true, Weight: e.w})
		require.NoError(t, err)
	}
	return g
}

func TestDijkstra_S1SmallDirectedWeightedGraph(t *testing.T) {
	g := buildS1(t)
	res, err := pfs.Dijkstra(context.Background(), g, "A", "")
	require.NoError(t, err)

	wantDist := map[string]float64{"A": 0, "B": 1, "C": 3, "D": 6}
	wantParent := map[string]string{"A": "A", "B": "A", "C": "B", "D": "C"}
	for id, d := range wantDist {
		assert.Equal(t, d, res[id].Distance, "distance to %s", id)
		assert.Equal(t, wantParent[id], res[id].Parent, "parent of %s", id)
	}
}

func TestRun_UnreachableNodeKeepsInfinity(t *testing.T) {
	g := graphcore.NewGraph()
	_, err := g.AddNode("isolated")
	require.NoError(t, err)
	_, err = g.AddEdgeByID("", "A", "B", graphcore.EdgeConfig{Directed: true, Weighted: true, Weight: 1})
	require.NoError(t, err)

	res, err := pfs.Run(context.Background(), g, "A", pfs.Config{DirMode: pfs.DirOut, Weighted: true})
	require.NoError(t, err)
	assert.True(t, math.IsInf(res["isolated"].Distance, 1))
	assert.Equal(t, "", res["isolated"].Parent)
	assert.Equal(t, -1, res["isolated"].Counter)
}

func TestRun_GoalNodeStopsEarlyAndFiresGoalReached(t *testing.T) {
	g := buildS1(t)
	var reached string
	v := &recordingVisitor{}
	_, err := pfs.Run(context.Background(), g, "A", pfs.Config{
		DirMode:  pfs.DirOut,
		Weighted: true,
		GoalNode: "C",
		Visitor:  v,
	})
	require.NoError(t, err)
	reached = v.goalReached
	assert.Equal(t, "C", reached)
}

func TestRun_EmptySourceIsConfigError(t *testing.T) {
	g := buildS1(t)
	_, err := pfs.Run(context.Background(), g, "", pfs.Config{DirMode: pfs.DirOut})
	assert.ErrorIs(t, err, graphcore.ErrConfigError)
}

func TestRun_BadDirModeIsConfigError(t *testing.T) {
	g := buildS1(t)
	_, err := pfs.Run(context.Background(), g, "A", pfs.Config{DirMode: pfs.DirMode(99)})
	assert.ErrorIs(t, err, graphcore.ErrConfigError)
}

func TestRun_CancelledContextIsReported(t *testing.T) {
	g := buildS1(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := pfs.Run(ctx, g, "A", pfs.Config{DirMode: pfs.DirOut, Weighted: true})
	assert.ErrorIs(t, err, graphcore.ErrCancelled)
}

type recordingVisitor struct {
	pfs.BaseVisitor
	goalReached string
}

func (v *recordingVisitor) GoalReached(s pfs.Scope) { v.goalReached = s.Current }
