// Package graphcore defines the canonical in-memory graph data model:
// Node and Edge primitives (C1) and the Graph container that owns them (C2).
//
// A Graph holds nodes and edges in insertion order — every iteration
// surface (Nodes, Edges, and the projections built on top of them in the
// compute package) walks that same order, which is a hard contract relied
// on by index-aligned consumers such as pagerank.
//
// Edges may be directed or undirected and carry an optional weight; a
// Graph's Mode() is derived lazily from what has been added so far
// (INIT, DIRECTED, UNDIRECTED, or MIXED).
//
// TypedGraph layers a type overlay on top of a Graph: every node/edge also
// lives in exactly one named bucket (the reserved GENERIC bucket holds
// untyped entities).
//
// Algorithms elsewhere in this module (pfs, pagerank, analytics) read a
// Graph but never mutate its topology; they are documented to only ever
// touch the side-channel state they own.
package graphcore
