// Package matrix provides the dense numeric primitives backing the
// ComputeGraph projections (compute package, spec §4.3) and the
// structural analytics (analytics package, spec §4.6): a row-major Dense
// matrix type, standard multiplication, and an in-place Floyd–Warshall
// all-pairs-shortest-path closure.
//
// Adapted from the teacher's matrix package: this module keeps Dense,
// Mul, and FloydWarshall verbatim in spirit (same flat row-major layout,
// same fixed loop order for determinism) but drops incidence matrices,
// eigendecomposition, LU/QR, and elementwise ops — nothing in this
// module's spec exercises them (see DESIGN.md).
package matrix
