// Package bfs provides breadth-first traversal over a graphcore.Graph,
// returning unweighted visit depth, parent links, and visit order
// (SPEC_FULL.md ADDED — a natural, low-risk companion to pfs that exercises
// the same DirMode/neighbor-iteration surface without duplicating pfs's
// priority-queue machinery).
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Returns a Result containing Order (visit sequence), Depth (node ->
//     hop count), and Parent (node -> predecessor in the BFS tree).
//   - Supports functional hooks at three stages: OnEnqueue, OnDequeue,
//     OnVisit (may abort with an error) and neighbor filtering via
//     WithFilterNeighbor — grounded on the teacher's bfs package, which
//     names these hooks identically over core.Graph.
//   - Honors MaxDepth (d>0) or explicit "no limit" (d==0).
//   - Follows whichever of pfs.DirOut/DirIn/DirUnd/DirMixed/DirAll the
//     caller configures, reusing pfs's DirMode rather than reimplementing
//     direction handling. Components uses DirAll so a directed edge still
//     joins both endpoints into one weakly-connected component.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs and connected components; cmd/graphctl's
//     stats subcommand prints the component count next to Graph.Stats().
package bfs
