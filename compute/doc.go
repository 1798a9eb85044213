// Package compute derives the dense/sparse numeric projections of a
// graphcore.Graph described in spec §4.3 (C3): a weighted adjacency
// dictionary, a binary adjacency matrix, a weighted adjacency matrix, and
// a successor ("next") array seeding Floyd–Warshall path reconstruction.
//
// Every projection shares the graph's node insertion order as its
// canonical index (spec §4.3 "Rationale"), so downstream numeric code in
// analytics and pfs can map matrix indices back to node ids without
// an extra lookup table.
package compute
