// File: typed.go
// Role: TypedGraph — the optional type overlay from spec §3/§4.2. Every
// add/delete delegates to the embedded Graph and then mutates the
// overlay; a node/edge lives in exactly one bucket at a time, and an
// empty bucket is pruned (spec §3 invariant 6).
package graphcore

import "strings"

// canonicalType upper-cases a type label, or returns GenericType when the
// label is empty or equals the entity's own id (spec §3: "Untyped
// entities live under a reserved GENERIC bucket").
func canonicalType(label, id string) string {
	if label == "" || label == id {
		return GenericType
	}
	return strings.ToUpper(label)
}

// TypedGraph layers a type overlay on top of a Graph.
type TypedGraph struct {
	*Graph

	typedNodes map[string]*orderedIDs // type -> node ids
	nodeType   map[string]string      // node id -> type
	typedEdges map[string]*orderedIDs // type -> edge ids
	edgeType   map[string]string      // edge id -> type
}

// NewTypedGraph constructs an empty TypedGraph.
func NewTypedGraph() *TypedGraph {
	return &TypedGraph{
		Graph:      NewGraph(),
		typedNodes: make(map[string]*orderedIDs),
		nodeType:   make(map[string]string),
		typedEdges: make(map[string]*orderedIDs),
		edgeType:   make(map[string]string),
	}
}

func (tg *TypedGraph) addToNodeBucket(bucket, id string) {
	b, ok := tg.typedNodes[bucket]
	if !ok {
		b = newOrderedIDs()
		tg.typedNodes[bucket] = b
	}
	b.Add(id)
	tg.nodeType[id] = bucket
}

func (tg *TypedGraph) addToEdgeBucket(bucket, id string) {
	b, ok := tg.typedEdges[bucket]
	if !ok {
		b = newOrderedIDs()
		tg.typedEdges[bucket] = b
	}
	b.Add(id)
	tg.edgeType[id] = bucket
}

func (tg *TypedGraph) dropNode(id string) {
	t, ok := tg.nodeType[id]
	if !ok {
		return
	}
	if b := tg.typedNodes[t]; b != nil {
		b.Remove(id)
		if b.Len() == 0 {
			delete(tg.typedNodes, t)
		}
	}
	delete(tg.nodeType, id)
}

func (tg *TypedGraph) dropEdge(id string) {
	t, ok := tg.edgeType[id]
	if !ok {
		return
	}
	if b := tg.typedEdges[t]; b != nil {
		b.Remove(id)
		if b.Len() == 0 {
			delete(tg.typedEdges, t)
		}
	}
	delete(tg.edgeType, id)
}

// AddTypedNodeByID inserts a node under the given type label, canonicalized
// to uppercase (or GENERIC if label is empty or equal to id).
func (tg *TypedGraph) AddTypedNodeByID(id, typeLabel string, cfg NodeConfig) (*Node, error) {
	n, err := tg.Graph.AddNodeByID(id, cfg)
	if err != nil {
		return nil, err
	}
	tg.addToNodeBucket(canonicalType(typeLabel, id), id)
	return n, nil
}

// AddTypedEdgeByID inserts an edge under the given type label.
func (tg *TypedGraph) AddTypedEdgeByID(id, typeLabel, a, b string, cfg EdgeConfig) (*Edge, error) {
	e, err := tg.Graph.AddEdgeByID(id, a, b, cfg)
	if err != nil {
		return nil, err
	}
	tg.addToEdgeBucket(canonicalType(typeLabel, e.ID), e.ID)
	return e, nil
}

// DeleteNode overrides Graph.DeleteNode to also prune the type overlay.
func (tg *TypedGraph) DeleteNode(id string) error {
	n, err := tg.Graph.GetNodeByID(id)
	if err != nil {
		return err
	}
	for _, eid := range n.AllEdgeIDs() {
		tg.dropEdge(eid)
	}
	if err := tg.Graph.DeleteNode(id); err != nil {
		return err
	}
	tg.dropNode(id)
	return nil
}

// DeleteEdge overrides Graph.DeleteEdge to also prune the type overlay.
func (tg *TypedGraph) DeleteEdge(id string) error {
	if err := tg.Graph.DeleteEdge(id); err != nil {
		return err
	}
	tg.dropEdge(id)
	return nil
}

// NodeType returns the type bucket a node belongs to.
func (tg *TypedGraph) NodeType(id string) (string, bool) {
	t, ok := tg.nodeType[id]
	return t, ok
}

// EdgeType returns the type bucket an edge belongs to.
func (tg *TypedGraph) EdgeType(id string) (string, bool) {
	t, ok := tg.edgeType[id]
	return t, ok
}

// NodesOfType returns node ids in the given type bucket, in insertion
// order within that bucket. The type label is upper-cased before lookup;
// an empty label is not mapped to GenericType, so pass GenericType to list
// untyped nodes.
func (tg *TypedGraph) NodesOfType(typeLabel string) []string {
	b, ok := tg.typedNodes[strings.ToUpper(typeLabel)]
	if !ok {
		return nil
	}
	return b.Slice()
}

// EdgesOfType returns edge ids in the given type bucket.
func (tg *TypedGraph) EdgesOfType(typeLabel string) []string {
	b, ok := tg.typedEdges[strings.ToUpper(typeLabel)]
	if !ok {
		return nil
	}
	return b.Slice()
}
