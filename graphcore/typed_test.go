package graphcore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlojax/graphon/graphcore"
)

func TestTypedGraph_GenericBucketWhenLabelEqualsID(t *testing.T) {
	tg := graphcore.NewTypedGraph()
	_, err := tg.AddTypedNodeByID("A", "A", graphcore.NodeConfig{})
	require.NoError(t, err)

	typ, ok := tg.NodeType("A")
	require.True(t, ok)
	assert.Equal(t, graphcore.GenericType, typ)
	assert.Equal(t, []string{"A"}, tg.NodesOfType(graphcore.GenericType))
}

func TestTypedGraph_CanonicalizesToUppercase(t *testing.T) {
	tg := graphcore.NewTypedGraph()
	_, err := tg.AddTypedNodeByID("n1", "person", graphcore.NodeConfig{})
	require.NoError(t, err)

	typ, ok := tg.NodeType("n1")
	require.True(t, ok)
	assert.Equal(t, "PERSON", typ)
	assert.Equal(t, []string{"n1"}, tg.NodesOfType("person"))
}

func TestTypedGraph_DeleteNodePrunesEmptyBucket(t *testing.T) {
	tg := graphcore.NewTypedGraph()
	_, err := tg.AddTypedNodeByID("n1", "person", graphcore.NodeConfig{})
	require.NoError(t, err)

	require.NoError(t, tg.DeleteNode("n1"))
	_, ok := tg.NodeType("n1")
	assert.False(t, ok)
	assert.Empty(t, tg.NodesOfType("person"))
}

func TestTypedGraph_DeleteNodeCascadesTypedEdges(t *testing.T) {
	tg := graphcore.NewTypedGraph()
	_, err := tg.AddTypedNodeByID("A", "", graphcore.NodeConfig{})
	require.NoError(t, err)
	_, err = tg.AddTypedNodeByID("B", "", graphcore.NodeConfig{})
	require.NoError(t, err)
	_, err = tg.AddTypedEdgeByID("knows", "KNOWS", "A", "B", graphcore.EdgeConfig{Directed: true})
	require.NoError(t, err)

	require.NoError(t, tg.DeleteNode("A"))
	_, ok := tg.EdgeType("knows")
	assert.False(t, ok)
}
