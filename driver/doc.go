// SPDX-License-Identifier: MIT

// Package driver is the top-level Driver component (§4.5): it runs the
// precision-escalation loop that ties simplex, lucache and certify
// together into a single Solve call over an exact rational LP.
//
// Open question resolution: the original C sources reset a block of
// implicit global state between precision rounds (QScopy_prob_mpq_dbl and
// its neighbors) because every round reused the same global mpq_/mpf_
// workspace. Solve has no equivalent reset step. Each round's Dbl or Mpf
// working copy is a local value built fresh by lp.CopyMpqToDbl /
// lp.CopyMpqToMpf and dropped when the round's stack frame returns —
// there is no global workspace left over to reset. The precision guard
// (numeric.WithPrecision) follows the same stack-scoped discipline via
// its restore closure.
package driver
