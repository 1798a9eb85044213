// Package pagerank implements the array-based PageRank power iteration
// described in spec §4.5 (C5): an index side-table maps each node to a
// dense array slot, so the iteration runs on two plain []float64 buffers
// rather than node-keyed maps. This mirrors how the teacher's lineage
// favors flat arrays over map-of-map state in hot loops, and avoids
// smuggling the PR_index into the node feature bag (spec §9 "Feature
// bag" design note) the way a naive port of the distilled spec would.
package pagerank
