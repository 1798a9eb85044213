package pfs

import (
	"errors"
	"math"

	"github.com/arlojax/graphon/graphcore"
)

// Sentinel errors for PFS configuration and execution (spec §7 error
// kinds, reusing graphcore's shared vocabulary).
var (
	// ErrEmptySource indicates Run was called with an empty source id.
	ErrEmptySource = errors.New("pfs: source node id is empty")

	// ErrBadDirMode indicates an unrecognized DirMode value.
	ErrBadDirMode = errors.New("pfs: unrecognized dir mode")
)

// DirMode selects which of a node's directional neighborhoods PFS follows
// (spec §4.4 "dir_mode").
type DirMode int

const (
	// DirOut follows NextNodes only (directed edges leaving the node).
	DirOut DirMode = iota
	// DirIn follows PrevNodes only (directed edges entering the node).
	DirIn
	// DirUnd follows ConnNodes only (undirected edges).
	DirUnd
	// DirMixed follows ReachNodes (NextNodes ∪ ConnNodes).
	DirMixed
	// DirAll follows AllNeighbors (PrevNodes ∪ NextNodes ∪ ConnNodes),
	// i.e. every edge touching the node regardless of direction. Not part
	// of spec.md's PFS dir_mode vocabulary; added for consumers (bfs's
	// weakly-connected Components) that need to treat directed edges as
	// traversable in both directions.
	DirAll
)

func (m DirMode) String() string {
	switch m {
	case DirOut:
		return "OUT"
	case DirIn:
		return "IN"
	case DirUnd:
		return "UND"
	case DirMixed:
		return "MIXED"
	case DirAll:
		return "ALL"
	default:
		return "UNKNOWN"
	}
}

// Neighbors resolves the directional neighborhood m selects for id in g:
// DirOut -> NextNodes, DirIn -> PrevNodes, DirUnd -> ConnNodes, DirMixed ->
// ReachNodes. Exported so other packages (e.g. bfs) can reuse the same
// direction vocabulary without duplicating the dispatch.
func (m DirMode) Neighbors(g *graphcore.Graph, id string) ([]graphcore.NeighborEdge, error) {
	switch m {
	case DirOut:
		return g.NextNodes(id, nil)
	case DirIn:
		return g.PrevNodes(id, nil)
	case DirUnd:
		return g.ConnNodes(id, nil)
	case DirMixed:
		return g.ReachNodes(id, nil)
	case DirAll:
		return g.AllNeighbors(id, nil)
	default:
		return nil, ErrBadDirMode
	}
}

// State is a node's record in the PFS result map (spec §4.4 "state per
// node"). Counter records relaxation order and is useful for diagnostics
// and tie-breaking in downstream consumers; it plays no role in the
// algorithm's correctness.
type State struct {
	Distance float64
	Parent   string
	Counter  int
}

// Result is the PFS output: node id -> final state. Unreached nodes keep
// their initial state: Distance == +Inf, Parent == "", Counter == -1.
type Result map[string]*State

// EvalPriorityFunc computes the push priority for a candidate relaxation;
// the default is currentDistance + the edge's EffectiveWeight when weighted
// is true, and currentDistance + 1 otherwise.
type EvalPriorityFunc func(currentDistance float64, ne graphcore.NeighborEdge, weighted bool) float64

func defaultEvalPriority(currentDistance float64, ne graphcore.NeighborEdge, weighted bool) float64 {
	if weighted {
		return currentDistance + ne.Edge.EffectiveWeight()
	}
	return currentDistance + 1
}

// Scope is passed to every Visitor method, carrying enough context for a
// visitor to inspect the run without reaching into PFS internals (spec
// §4.4 "scope").
type Scope struct {
	Graph    *graphcore.Graph
	Result   Result
	Current  string               // node id being processed this step
	Neighbor graphcore.NeighborEdge // the edge relaxation that triggered this callback; zero value for InitPFS/GoalReached
	Proposed float64              // candidate distance for Neighbor.Neighbor.ID
}

// Visitor is the six-joinpoint trait a caller hooks into a PFS run (spec
// §9 "prefer the trait form"). BaseVisitor supplies no-op defaults so a
// caller only overrides what it needs.
type Visitor interface {
	InitPFS(s Scope)
	NotEncountered(s Scope)
	NodeOpen(s Scope)
	NodeClosed(s Scope)
	BetterPath(s Scope)
	GoalReached(s Scope)
}

// BaseVisitor implements Visitor with no-op methods; embed it and override
// only the joinpoints a caller cares about.
type BaseVisitor struct{}

func (BaseVisitor) InitPFS(Scope)        {}
func (BaseVisitor) NotEncountered(Scope) {}
func (BaseVisitor) NodeOpen(Scope)       {}
func (BaseVisitor) NodeClosed(Scope)     {}
func (BaseVisitor) BetterPath(Scope)     {}
func (BaseVisitor) GoalReached(Scope)    {}

// Config configures a Run (spec §4.4).
type Config struct {
	DirMode      DirMode
	GoalNode     string // optional early-termination target; "" disables
	Weighted     bool
	EvalPriority EvalPriorityFunc // nil uses defaultEvalPriority
	Visitor      Visitor          // nil uses BaseVisitor{}
}

func (c Config) evalPriority() EvalPriorityFunc {
	if c.EvalPriority != nil {
		return c.EvalPriority
	}
	return defaultEvalPriority
}

func (c Config) visitor() Visitor {
	if c.Visitor != nil {
		return c.Visitor
	}
	return BaseVisitor{}
}

func newResult(g *graphcore.Graph, source string) Result {
	r := make(Result, g.NrNodes())
	for _, id := range g.NodeIDs() {
		r[id] = &State{Distance: math.Inf(1), Parent: "", Counter: -1}
	}
	r[source] = &State{Distance: 0, Parent: source, Counter: 0}
	return r
}
