// File: graph.go
// Role: Graph container (C2) — owns nodes/edges, enforces the invariants
// from spec §3, and exposes the construction/query/deletion surface from
// spec §4.2.
//
// Ordering: Nodes() and Edges() walk insertion order; every projection in
// the compute package and every index assignment in pagerank relies on
// this (spec §5, §8 invariant 1).
package graphcore

import (
	"fmt"
	"strconv"
)

// NodeConfig configures AddNodeByID.
type NodeConfig struct {
	Label    string
	Features map[string]interface{}
}

// EdgeConfig configures AddEdgeByID.
type EdgeConfig struct {
	Label    string
	Directed bool
	Weighted bool
	Weight   float64
}

// Stats is the snapshot returned by Graph.Stats (spec §6 result shapes).
type Stats struct {
	NrNodes    int     `json:"nr_nodes"`
	NrDirEdges int     `json:"nr_dir_edges"`
	NrUndEdges int     `json:"nr_und_edges"`
	Mode       string  `json:"mode"`
	Density    float64 `json:"density"`
}

// Graph is the in-memory container of nodes and edges (spec §3 Graph).
// It is not safe for concurrent mutation; callers needing that guarantee
// should serialize writes externally — the algorithms in this module
// never mutate a Graph's topology while running (spec §5).
type Graph struct {
	nodeOrder []string
	nodes     map[string]*Node

	edgeOrder []string
	edges     map[string]*Edge

	dirEdgeIDs *orderedIDs
	undEdgeIDs *orderedIDs

	nextEdgeSeq uint64
}

// NewGraph constructs an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:      make(map[string]*Node),
		edges:      make(map[string]*Edge),
		dirEdgeIDs: newOrderedIDs(),
		undEdgeIDs: newOrderedIDs(),
	}
}

// HasNodeID reports whether id names a node in the graph.
func (g *Graph) HasNodeID(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// GetNodeByID returns the node stored under id, or ErrNotFound.
func (g *Graph) GetNodeByID(id string) (*Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("graphcore: node %q: %w", id, ErrNotFound)
	}
	return n, nil
}

// AddNode inserts a node with the given id and default label/features. It
// is idempotent: adding an existing id returns the existing node and no
// error, mirroring the teacher's AddVertex idempotence policy.
func (g *Graph) AddNode(id string) (*Node, error) {
	return g.AddNodeByID(id, NodeConfig{})
}

// AddNodeByID inserts a node with explicit label/features. Label defaults
// to id when cfg.Label is empty (spec §3 "label defaults to id").
func (g *Graph) AddNodeByID(id string, cfg NodeConfig) (*Node, error) {
	if id == "" {
		return nil, fmt.Errorf("graphcore: empty node id: %w", ErrInvalidInput)
	}
	if n, ok := g.nodes[id]; ok {
		return n, nil
	}

	n := newNode(id)
	if cfg.Label != "" {
		n.Label = cfg.Label
	}
	for k, v := range cfg.Features {
		n.SetFeature(k, v)
	}

	g.nodes[id] = n
	g.nodeOrder = append(g.nodeOrder, id)
	return n, nil
}

// nextEdgeID generates a deterministic, monotonically increasing edge id
// used when AddEdgeByID's caller does not pin one explicitly.
func (g *Graph) nextEdgeID() string {
	g.nextEdgeSeq++
	return "e" + strconv.FormatUint(g.nextEdgeSeq, 10)
}

// AddEdgeByID creates and inserts an edge between a and b. Endpoints are
// auto-created if missing (spec permits parsers to pre-populate nodes;
// the core stays permissive here to keep construction ergonomic). An
// undirected self-loop (a==b, !directed) is rejected per spec §3
// invariant 4.
func (g *Graph) AddEdgeByID(id, a, b string, cfg EdgeConfig) (*Edge, error) {
	if a == "" || b == "" {
		return nil, fmt.Errorf("graphcore: edge endpoints must be non-empty: %w", ErrInvalidInput)
	}
	if !cfg.Directed && a == b {
		return nil, fmt.Errorf("graphcore: undirected self-loop %q: %w", a, ErrInvalidInput)
	}
	if id == "" {
		id = g.nextEdgeID()
	}
	if _, exists := g.edges[id]; exists {
		return nil, fmt.Errorf("graphcore: edge %q: %w", id, ErrDuplicate)
	}

	if _, err := g.AddNode(a); err != nil {
		return nil, err
	}
	if _, err := g.AddNode(b); err != nil {
		return nil, err
	}

	e := &Edge{
		ID:       id,
		Label:    cfg.Label,
		A:        a,
		B:        b,
		Directed: cfg.Directed,
		Weighted: cfg.Weighted,
		Weight:   cfg.Weight,
	}
	if e.Label == "" {
		e.Label = id
	}

	na := g.nodes[a]
	nb := g.nodes[b]
	if err := na.attachEdge(e); err != nil {
		return nil, err
	}
	// Self-loops only touch one node; avoid a second, redundant attach.
	if a != b {
		if err := nb.attachEdge(e); err != nil {
			na.detachEdge(e) // roll back the first attach
			return nil, err
		}
	}

	g.edges[id] = e
	g.edgeOrder = append(g.edgeOrder, id)
	if e.Directed {
		g.dirEdgeIDs.Add(id)
	} else {
		g.undEdgeIDs.Add(id)
	}
	return e, nil
}

// AddEdge inserts a pre-built Edge. Its ID, A, and B fields must already
// be set; AddEdge otherwise behaves exactly like AddEdgeByID.
func (g *Graph) AddEdge(e *Edge) (*Edge, error) {
	return g.AddEdgeByID(e.ID, e.A, e.B, EdgeConfig{
		Label:    e.Label,
		Directed: e.Directed,
		Weighted: e.Weighted,
		Weight:   e.Weight,
	})
}

// GetEdgeByID returns the edge stored under id, or ErrNotFound.
func (g *Graph) GetEdgeByID(id string) (*Edge, error) {
	e, ok := g.edges[id]
	if !ok {
		return nil, fmt.Errorf("graphcore: edge %q: %w", id, ErrNotFound)
	}
	return e, nil
}

// DeleteEdge removes edge id and updates both endpoints' buckets.
func (g *Graph) DeleteEdge(id string) error {
	e, ok := g.edges[id]
	if !ok {
		return fmt.Errorf("graphcore: edge %q: %w", id, ErrNotFound)
	}

	if na, ok := g.nodes[e.A]; ok {
		na.detachEdge(e)
	}
	if e.A != e.B {
		if nb, ok := g.nodes[e.B]; ok {
			nb.detachEdge(e)
		}
	}

	delete(g.edges, id)
	g.edgeOrder = removeString(g.edgeOrder, id)
	if e.Directed {
		g.dirEdgeIDs.Remove(id)
	} else {
		g.undEdgeIDs.Remove(id)
	}
	return nil
}

// DeleteNode removes a node and cascades deletion to every incident edge
// first (spec §3 invariant 5).
func (g *Graph) DeleteNode(id string) error {
	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("graphcore: node %q: %w", id, ErrNotFound)
	}

	for _, eid := range n.AllEdgeIDs() {
		if g.edges[eid] == nil {
			continue // a self-loop id can appear twice in AllEdgeIDs
		}
		_ = g.DeleteEdge(eid)
	}

	delete(g.nodes, id)
	g.nodeOrder = removeString(g.nodeOrder, id)
	return nil
}

// NrNodes returns the number of nodes.
func (g *Graph) NrNodes() int { return len(g.nodeOrder) }

// NrDirEdges returns the number of directed edges.
func (g *Graph) NrDirEdges() int { return g.dirEdgeIDs.Len() }

// NrUndEdges returns the number of undirected edges.
func (g *Graph) NrUndEdges() int { return g.undEdgeIDs.Len() }

// Mode classifies the graph from its current edge population (spec §4.2).
func (g *Graph) Mode() Mode {
	hasDir := g.NrDirEdges() > 0
	hasUnd := g.NrUndEdges() > 0
	switch {
	case hasDir && hasUnd:
		return ModeMixed
	case hasDir:
		return ModeDirected
	case hasUnd:
		return ModeUndirected
	default:
		return ModeInit
	}
}

// Stats returns a structural snapshot (spec §6 result shapes). Density is
// the edge count, with each undirected edge counted as two directed ones,
// over the maximum possible simple-directed-edge count n·(n−1); it is 0
// when there are fewer than two nodes.
func (g *Graph) Stats() Stats {
	n := g.NrNodes()
	density := 0.0
	if n > 1 {
		maxEdges := float64(n) * float64(n-1)
		density = float64(g.NrDirEdges()+2*g.NrUndEdges()) / maxEdges
	}
	return Stats{
		NrNodes:    n,
		NrDirEdges: g.NrDirEdges(),
		NrUndEdges: g.NrUndEdges(),
		Mode:       g.Mode().String(),
		Density:    density,
	}
}

// NodeIDs returns node ids in insertion order.
func (g *Graph) NodeIDs() []string {
	out := make([]string, len(g.nodeOrder))
	copy(out, g.nodeOrder)
	return out
}

// EdgeIDs returns edge ids in insertion order.
func (g *Graph) EdgeIDs() []string {
	out := make([]string, len(g.edgeOrder))
	copy(out, g.edgeOrder)
	return out
}

// Nodes returns nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, g.nodes[id])
	}
	return out
}

// Edges returns edges in insertion order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		out = append(out, g.edges[id])
	}
	return out
}

func removeString(s []string, v string) []string {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
