// SPDX-License-Identifier: MIT

package numeric

import "math/big"

// MpqToDbl converts a rational to the nearest machine double — lossy.
func MpqToDbl(m Mpq) Dbl {
	f, _ := m.r.Float64()
	return Dbl(f)
}

// MpqToMpf converts a rational to an extended float at the given
// precision — lossy in general, exact when m's denominator divides a
// power of two representable in prec bits.
func MpqToMpf(m Mpq, prec uint) Mpf {
	return mpfFromBigRatAtPrec(&m.r, prec)
}

// DblToMpq lifts a machine double into an exact rational. This is exact:
// every float64 is itself a dyadic rational, and big.Rat.SetFloat64
// recovers it precisely.
func DblToMpq(d Dbl) Mpq {
	var m Mpq
	m.r.SetFloat64(float64(d))
	return m
}

// MpfToMpq lifts an extended float into an exact rational. Exact: every
// big.Float with finite precision denotes a dyadic rational, and
// big.Float.Rat recovers it precisely.
func MpfToMpq(v Mpf) Mpq {
	var m Mpq
	r, _ := v.v.Rat(nil)
	if r == nil {
		// v is ±Inf or NaN; represent as the Mpq infinity sentinel with the
		// matching sign, rather than silently producing 0.
		if v.v.Sign() < 0 {
			return MpqNegInf()
		}
		return MpqPosInf()
	}
	m.r.Set(r)
	return m
}

// mpfFromBigRatAtPrec is the shared core of MpqToMpf kept as a named
// helper so lucache's direction computation (which repeatedly re-derives
// an Mpf factorization from a cached Mpq one) can call it without
// re-deriving the big.Rat plumbing.
func mpfFromBigRatAtPrec(r *big.Rat, prec uint) Mpf {
	var z Mpf
	z.v.SetPrec(prec)
	z.v.SetRat(r)
	return z
}
