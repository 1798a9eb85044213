// Package analytics computes structural graph statistics (spec §4.6, C6):
// triad counts, triangle counts via injected matrix powers, transitivity,
// and per-node clustering coefficients. Triangle counting and clustering
// are the one place in this module that suspends on an external
// collaborator — the matrix.Multiplier — per spec §5's "suspension points"
// note; everything else in this package is synchronous arithmetic, over
// node degrees (TriadCount) or the compute.AdjMatrix projection.
package analytics
