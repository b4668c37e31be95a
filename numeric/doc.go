// SPDX-License-Identifier: MIT

// Package numeric implements the uniform numeric backend that the rest of
// qsxact is generic over: machine double (Dbl), extended binary floating
// point at a process-wide configurable mantissa width (Mpf), and exact
// rational (Mpq).
//
// The lp and simplex packages are parameterized over the Num[T] trait
// declared here instead of being duplicated once per flavor — the generic
// realization of the "NumBackend" design note. certify and lucache work on
// Mpq (lucache also has a generic triangular solve used for its Mpf
// direction computation).
//
// Dbl and Mpq are safe for concurrent read-only use once constructed; Mpf
// additionally depends on the process-wide precision set by WithPrecision,
// so concurrent Mpf arithmetic at different precisions on different
// goroutines is not supported (see WithPrecision).
package numeric
