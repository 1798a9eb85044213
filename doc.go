// Package graphon is an in-memory graph analytics engine: build a graph,
// project it into dense or sparse numeric forms, run priority-first
// search, PageRank, and structural analytics over it.
//
// Under the hood, the module is organized into focused packages:
//
//	graphcore/  — Node, Edge, Graph primitives; insertion-ordered, single-threaded
//	compute/    — adjacency projections (sparse weighted dict, dense matrices)
//	matrix/     — dense matrix type, multiplication, Floyd–Warshall
//	pfs/        — priority-first search, Dijkstra, closeness centrality
//	pagerank/   — array-based PageRank power iteration
//	analytics/  — triad/triangle counts, transitivity, clustering coefficients
//	graphutil/  — plain-value merge and clone helpers
//	bfs/        — breadth-first search and connected components
//	loader/     — JSON and CSV graph readers
//	graphlog/   — structured logging for long-running runs
//	cmd/graphctl/ — a thin CLI over the library
//
// Every algorithm package reads a *graphcore.Graph but never mutates its
// topology; node and edge iteration everywhere follows the graph's
// insertion order, which downstream numeric code relies on to map matrix
// indices back to node ids.
package graphon
