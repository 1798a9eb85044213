package graphcore

// Clone returns a structural deep copy of g: every node and edge is
// recreated in the same insertion order, with feature maps shallow-copied
// per node (see graphutil.Clone for a deep clone of an individual feature
// value). This is distinct from C7's generic Clone(value), which clones
// plain values rather than graph topology (spec §4.7, §9 "supplemented
// features" — grounded on the teacher's core/methods_clone.go).
func (g *Graph) Clone() *Graph {
	out := NewGraph()
	for _, id := range g.nodeOrder {
		src := g.nodes[id]
		n, _ := out.AddNodeByID(id, NodeConfig{Label: src.Label})
		for k, v := range src.Features {
			n.SetFeature(k, v)
		}
	}
	for _, id := range g.edgeOrder {
		src := g.edges[id]
		_, _ = out.AddEdgeByID(id, src.A, src.B, EdgeConfig{
			Label:    src.Label,
			Directed: src.Directed,
			Weighted: src.Weighted,
			Weight:   src.Weight,
		})
	}
	return out
}
