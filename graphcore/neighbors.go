// File: neighbors.go
// Role: the neighborhood views from spec §4.1 — PrevNodes/NextNodes/
// ConnNodes/ReachNodes/AllNeighbors — each resolving a node's edge
// buckets into {neighbor, edge} pairs via the owning Graph.
package graphcore

import "fmt"

// IdentityFunc lets a caller deduplicate multi-edges in a neighbor view by
// mapping a NeighborEdge to a comparable key; entries sharing a key after
// the first are dropped (spec §4.1 "optional identity function").
type IdentityFunc func(NeighborEdge) string

func dedup(entries []NeighborEdge, identity IdentityFunc) []NeighborEdge {
	if identity == nil {
		return entries
	}
	seen := make(map[string]struct{}, len(entries))
	out := entries[:0]
	for _, ne := range entries {
		key := identity(ne)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, ne)
	}
	return out
}

func (g *Graph) resolve(ids []string, self string) ([]NeighborEdge, error) {
	out := make([]NeighborEdge, 0, len(ids))
	for _, eid := range ids {
		e, ok := g.edges[eid]
		if !ok {
			return nil, fmt.Errorf("graphcore: dangling edge id %q on node %q: %w", eid, self, ErrInvariantViolation)
		}
		otherID := e.Other(self)
		other, ok := g.nodes[otherID]
		if !ok {
			return nil, fmt.Errorf("graphcore: dangling endpoint %q: %w", otherID, ErrInvariantViolation)
		}
		out = append(out, NeighborEdge{Neighbor: other, Edge: e})
	}
	return out, nil
}

// PrevNodes returns nodes that reach id via a directed edge (id is the
// edge's target), paired with that edge.
func (g *Graph) PrevNodes(id string, identity IdentityFunc) ([]NeighborEdge, error) {
	n, err := g.GetNodeByID(id)
	if err != nil {
		return nil, err
	}
	ne, err := g.resolve(n.InEdgeIDs(), id)
	if err != nil {
		return nil, err
	}
	return dedup(ne, identity), nil
}

// NextNodes returns nodes reachable from id via a directed edge (id is
// the edge's source), paired with that edge.
func (g *Graph) NextNodes(id string, identity IdentityFunc) ([]NeighborEdge, error) {
	n, err := g.GetNodeByID(id)
	if err != nil {
		return nil, err
	}
	ne, err := g.resolve(n.OutEdgeIDs(), id)
	if err != nil {
		return nil, err
	}
	return dedup(ne, identity), nil
}

// ConnNodes returns nodes connected to id via an undirected edge.
func (g *Graph) ConnNodes(id string, identity IdentityFunc) ([]NeighborEdge, error) {
	n, err := g.GetNodeByID(id)
	if err != nil {
		return nil, err
	}
	ne, err := g.resolve(n.UndEdgeIDs(), id)
	if err != nil {
		return nil, err
	}
	return dedup(ne, identity), nil
}

// ReachNodes returns NextNodes(id) ∪ ConnNodes(id) — everything id can
// walk to in one hop while respecting directedness (spec §4.1, used by
// PFS's MIXED dir_mode and by compute's adjacency projections).
func (g *Graph) ReachNodes(id string, identity IdentityFunc) ([]NeighborEdge, error) {
	next, err := g.NextNodes(id, nil)
	if err != nil {
		return nil, err
	}
	conn, err := g.ConnNodes(id, nil)
	if err != nil {
		return nil, err
	}
	out := append(next, conn...)
	return dedup(out, identity), nil
}

// AllNeighbors returns PrevNodes(id) ∪ NextNodes(id) ∪ ConnNodes(id).
func (g *Graph) AllNeighbors(id string, identity IdentityFunc) ([]NeighborEdge, error) {
	prev, err := g.PrevNodes(id, nil)
	if err != nil {
		return nil, err
	}
	reach, err := g.ReachNodes(id, nil)
	if err != nil {
		return nil, err
	}
	out := append(prev, reach...)
	return dedup(out, identity), nil
}
