// SPDX-License-Identifier: MIT

// Package simplex defines the pivot-engine contract the Driver consumes
// (§4.2) and ships one reference implementation of it: a textbook
// two-phase bounded-variable primal simplex, generic over the numeric
// flavor (the Driver runs it over numeric.Dbl and numeric.Mpf).
//
// The reference solver exists to give the Driver and its tests something
// concrete to call; it is explicitly not a production pivot engine (no
// Bland's-rule anti-cycling beyond a conservative iteration cap, no
// steepest-edge pricing, no numerical anti-degeneracy safeguards beyond
// what bounded ratio-testing already gives for free). Swapping in a
// faster Solver[T] is an intentional extension point, not a gap to fill
// here.
package simplex
