// Package pfs implements priority-first search, the generalized best-first
// traversal from which Dijkstra, all-pairs shortest paths, and closeness
// centrality derive (spec §4.4, C4).
//
// Six lifecycle joinpoints — InitPFS, NotEncountered, NodeOpen, NodeClosed,
// BetterPath, GoalReached — are exposed through a single Visitor trait with
// default no-op methods (spec §9 "Callback-heavy PFS": "prefer the trait
// form — it enables zero-cost dispatch per joinpoint"), rather than a list
// of optional callback fields the way the distilled spec first described
// it.
package pfs
