// SPDX-License-Identifier: MIT

// Package lucache is the LUCache component: a cached LU factorization of
// the current rational basis matrix, with an incremental-update protocol
// that replays a small number of differing columns against the cached
// basis rather than paying for a full refactorization (§4.3).
//
// The factorization itself is a dense, fully-pivoted Gaussian elimination
// over numeric.Mpq — grounded on the teacher's matrix/ops/lu.go Doolittle
// decomposition, generalized with row *and* column pivoting so that any
// nonsingular basis matrix factors regardless of which entry a zero
// pivot lands on.
//
// Scope note: the update path honors the full state-machine contract from
// §4.3 (5% mismatch threshold, transient 128-bit direction computation,
// largest-pivot reordering, refactor-on-failure, deep-copy commit) but
// re-triangularizes by re-factoring the small cached basis matrix rather
// than applying a true O(nnz) Forrest–Tomlin eta update — see DESIGN.md
// for the reasoning.
package lucache
