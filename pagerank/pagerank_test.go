package pagerank_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlojax/graphon/graphcore"
	"github.com/arlojax/graphon/pagerank"
)

func TestRun_S2RingConvergesToUniform(t *testing.T) {
	g := graphcore.NewGraph()
	_, err := g.AddEdgeByID("", "A", "B", graphcore.EdgeConfig{Directed: true})
	require.NoError(t, err)
	_, err = g.AddEdgeByID("", "B", "C", graphcore.EdgeConfig{Directed: true})
	require.NoError(t, err)
	_, err = g.AddEdgeByID("", "C", "A", graphcore.EdgeConfig{Directed: true})
	require.NoError(t, err)

	cfg := pagerank.Config{Alpha: 0.15, Iterations: 100, Convergence: 1e-6}
	ranks, err := pagerank.Run(context.Background(), g, cfg)
	require.NoError(t, err)

	for _, id := range []string{"A", "B", "C"} {
		assert.InDelta(t, 1.0/3.0, ranks[id], 1e-4, "rank of %s", id)
	}
}

func TestRun_RanksAreNonNegative(t *testing.T) {
	g := graphcore.NewGraph()
	_, err := g.AddEdgeByID("", "A", "B", graphcore.EdgeConfig{Directed: true})
	require.NoError(t, err)
	_, err = g.AddEdgeByID("", "B", "A", graphcore.EdgeConfig{Directed: true})
	require.NoError(t, err)
	_, err = g.AddNode("isolated")
	require.NoError(t, err)

	ranks, err := pagerank.Run(context.Background(), g, pagerank.DefaultConfig())
	require.NoError(t, err)
	for id, r := range ranks {
		assert.GreaterOrEqual(t, r, 0.0, "rank of %s", id)
	}
}

func TestRun_EmptyGraphReturnsEmptyMap(t *testing.T) {
	g := graphcore.NewGraph()
	ranks, err := pagerank.Run(context.Background(), g, pagerank.DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, ranks)
}

func TestRun_CancelledContextIsReported(t *testing.T) {
	g := graphcore.NewGraph()
	_, err := g.AddEdgeByID("", "A", "B", graphcore.EdgeConfig{Directed: true})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pagerank.Run(ctx, g, pagerank.DefaultConfig())
	assert.ErrorIs(t, err, graphcore.ErrCancelled)
}
