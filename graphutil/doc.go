// Package graphutil provides the structural utilities from spec §4.7
// (C7): shallow object merge, identity-deduplicated array merge, and a
// deep clone of plain values. These are generic helpers with no
// dependency on graphcore, for combining feature-bag-shaped data without
// reaching for a third-party deep-copy library, grounded on the teacher's preference for small, dependency-free
// primitives at the bottom of the stack (core/methods_clone.go).
package graphutil
