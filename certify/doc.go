// SPDX-License-Identifier: MIT

// Package certify is the Certifier component: given a basis the Driver
// believes is optimal or infeasible, it independently proves that claim
// in exact rational arithmetic — or rejects it (§4.4).
//
// Optimal and Infeasible are grounded on QSexact_optimal_test and
// QSexact_infeasible_test's own signatures: exact.c's originals take a
// candidate primal/dual solution (p_sol/d_sol) as parameters and project
// or clamp it, rather than re-deriving one from the basis alone. Both
// operations here keep that contract — they check the candidate the
// Driver's inexact solver actually produced.
//
// BasisStatus is the complementary, candidate-free operation (§4.4.3): it
// re-derives x, pi, and every reduced cost from the basis's own LU
// factorization, with no candidate consulted at all. The Driver calls it
// as a fallback when a candidate-driven certification is rejected.
//
// A rejection never indicates the LP itself is malformed; it means the
// claimed basis (and, for Optimal/Infeasible, the supplied candidate)
// does not actually prove what it claims to, most often because the
// precision-escalation round that produced it was still numerically
// approximate. The Driver treats a rejection as "try again at higher
// precision," not as a solver failure.
package certify
