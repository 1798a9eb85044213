package graphcore

// GenericType is the reserved TypedGraph bucket name for nodes/edges whose
// label equals their id (spec §3, glossary "GENERIC type").
const GenericType = "GENERIC"

// DefaultWeight is substituted for an edge's weight wherever an algorithm
// needs a number but the edge is unweighted (spec §4.3 adjListW).
const DefaultWeight = 1.0

// Mode classifies a Graph by the kinds of edges it currently holds.
type Mode int

const (
	// ModeInit is the mode of a graph with no edges yet.
	ModeInit Mode = iota
	// ModeDirected is the mode of a graph with only directed edges.
	ModeDirected
	// ModeUndirected is the mode of a graph with only undirected edges.
	ModeUndirected
	// ModeMixed is the mode of a graph with both directed and undirected edges.
	ModeMixed
)

// String renders a Mode for logs and test failure messages.
func (m Mode) String() string {
	switch m {
	case ModeInit:
		return "INIT"
	case ModeDirected:
		return "DIRECTED"
	case ModeUndirected:
		return "UNDIRECTED"
	case ModeMixed:
		return "MIXED"
	default:
		return "UNKNOWN"
	}
}

// Node is a single vertex in a Graph. Its ID is stable and unique within
// the owning Graph; Label defaults to ID when unset. Features carries an
// opaque, caller-defined key/value bag (spec §3 "features").
//
// The four edge buckets (in/out/und/self) are maintained exclusively by
// the owning Graph via attachEdge/detachEdge; callers must not mutate
// them directly. Degree accessors report bucket sizes directly, so the
// "counters equal bucket sizes" invariant (spec §3 invariant 7) holds by
// construction rather than needing separate synchronized counters.
type Node struct {
	ID       string
	Label    string
	Features map[string]interface{}

	inEdges  *orderedIDs // directed edges where this node is the target
	outEdges *orderedIDs // directed edges where this node is the source
	undEdges *orderedIDs // undirected edges incident to this node
	selfLoop *orderedIDs // directed self-loop edges (also present in in/out)
}

func newNode(id string) *Node {
	return &Node{
		ID:       id,
		Label:    id,
		Features: make(map[string]interface{}),
		inEdges:  newOrderedIDs(),
		outEdges: newOrderedIDs(),
		undEdges: newOrderedIDs(),
		selfLoop: newOrderedIDs(),
	}
}

// InDegree returns the number of directed edges terminating at this node,
// including directed self-loops.
func (n *Node) InDegree() int { return n.inEdges.Len() }

// OutDegree returns the number of directed edges originating at this node,
// including directed self-loops.
func (n *Node) OutDegree() int { return n.outEdges.Len() }

// UndDegree returns the number of undirected edges incident to this node.
func (n *Node) UndDegree() int { return n.undEdges.Len() }

// SelfDegree returns the number of directed self-loop edges at this node.
func (n *Node) SelfDegree() int { return n.selfLoop.Len() }

// Degree returns the total incidence count: in + out + und. Self-loops
// are counted twice (once via in, once via out), matching the directed
// self-loop invariant in spec §3 invariant 4.
func (n *Node) Degree() int { return n.InDegree() + n.OutDegree() + n.UndDegree() }

// Feature returns the value stored under key and whether it was present.
func (n *Node) Feature(key string) (interface{}, bool) {
	v, ok := n.Features[key]
	return v, ok
}

// SetFeature stores value under key, overwriting any prior value.
func (n *Node) SetFeature(key string, value interface{}) {
	if n.Features == nil {
		n.Features = make(map[string]interface{})
	}
	n.Features[key] = value
}

// DeleteFeature removes key from the feature bag, if present.
func (n *Node) DeleteFeature(key string) {
	delete(n.Features, key)
}

// ClearFeatures empties the feature bag.
func (n *Node) ClearFeatures() {
	n.Features = make(map[string]interface{})
}

// InEdgeIDs returns incoming directed edge ids in attachment order.
func (n *Node) InEdgeIDs() []string { return n.inEdges.Slice() }

// OutEdgeIDs returns outgoing directed edge ids in attachment order.
func (n *Node) OutEdgeIDs() []string { return n.outEdges.Slice() }

// UndEdgeIDs returns undirected edge ids in attachment order.
func (n *Node) UndEdgeIDs() []string { return n.undEdges.Slice() }

// AllEdgeIDs returns in, then out, then undirected edge ids. Self-loops
// appear in both the in and out segments, matching spec §3's bucketing.
func (n *Node) AllEdgeIDs() []string {
	out := make([]string, 0, n.InDegree()+n.OutDegree()+n.UndDegree())
	out = append(out, n.InEdgeIDs()...)
	out = append(out, n.OutEdgeIDs()...)
	out = append(out, n.UndEdgeIDs()...)
	return out
}

// HasEdge reports whether edgeID is attached to this node in any bucket.
func (n *Node) HasEdge(edgeID string) bool {
	return n.inEdges.Has(edgeID) || n.outEdges.Has(edgeID) || n.undEdges.Has(edgeID)
}

// attachEdge registers e against this node's buckets, implementing the
// addEdge rules from spec §4.1:
//   - e must touch this node (ErrInvalidInput otherwise).
//   - directed: add to out if A==id; add to in if B==id; a self-loop
//     (A==B==id) hits both and is additionally recorded in selfLoop.
//   - undirected: rejected with ErrDuplicate if already attached.
func (n *Node) attachEdge(e *Edge) error {
	touchesA := e.A == n.ID
	touchesB := e.B == n.ID
	if !touchesA && !touchesB {
		return ErrInvalidInput
	}

	if e.Directed {
		if touchesA {
			n.outEdges.Add(e.ID)
		}
		if touchesB {
			n.inEdges.Add(e.ID)
		}
		if touchesA && touchesB {
			n.selfLoop.Add(e.ID)
		}
		return nil
	}

	if touchesA && touchesB {
		// Undirected self-loops are forbidden entirely (spec §3 invariant 4);
		// the Graph layer rejects these before attachEdge is ever called.
		return ErrInvalidInput
	}
	if n.undEdges.Has(e.ID) {
		return ErrDuplicate
	}
	n.undEdges.Add(e.ID)
	return nil
}

// detachEdge removes e from every bucket it may occupy. It is a no-op for
// buckets where e was never present.
func (n *Node) detachEdge(e *Edge) {
	n.inEdges.Remove(e.ID)
	n.outEdges.Remove(e.ID)
	n.undEdges.Remove(e.ID)
	n.selfLoop.Remove(e.ID)
}

// Edge connects node A to node B. For undirected edges (A,B) and (B,A)
// denote the same edge. Weight is meaningful only when Weighted is true;
// algorithms that need a number regardless substitute DefaultWeight.
type Edge struct {
	ID       string
	Label    string
	A, B     string
	Directed bool
	Weighted bool
	Weight   float64
}

// Other returns the endpoint of e that is not id. Behavior is undefined
// (returns id itself) if e is not incident to id — callers only invoke
// this after confirming incidence via a node's edge buckets.
func (e *Edge) Other(id string) string {
	if e.A == id {
		return e.B
	}
	return e.A
}

// EffectiveWeight returns Weight if e is Weighted, else DefaultWeight,
// per spec §4.3's "NaN → DEFAULT_WEIGHT" rule generalized to any
// unweighted edge.
func (e *Edge) EffectiveWeight() float64 {
	if e.Weighted {
		return e.Weight
	}
	return DefaultWeight
}

// NeighborEdge pairs a neighboring Node with the Edge that reaches it,
// the return element of every Graph neighbor-iteration method (spec
// §4.1: PrevNodes/NextNodes/ConnNodes/ReachNodes/AllNeighbors).
type NeighborEdge struct {
	Neighbor *Node
	Edge     *Edge
}
