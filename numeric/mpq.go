// SPDX-License-Identifier: MIT

package numeric

import "math/big"

// Mpq is the exact-rational numeric flavor used by the rational LP, the
// Certifier, and the authoritative LUCache factorization. It wraps
// math/big.Rat by value; the zero value Mpq{} is the rational 0, matching
// big.Rat's own documented zero value.
type Mpq struct {
	r big.Rat
}

// MpqFromInt64 builds the exact rational p/q. Division by zero panics
// (programmer error, not user input — see DblFromInt64).
func MpqFromInt64(p, q int64) Mpq {
	if q == 0 {
		panic("numeric: MpqFromInt64: zero denominator")
	}
	var m Mpq
	m.r.SetFrac64(p, q)
	return m
}

// MpqFromRat adopts an existing *big.Rat by value (copying it), letting
// callers that already hold a big.Rat (e.g. from a parser) cross into the
// qsxact numeric trait without re-deriving it from numerator/denominator.
func MpqFromRat(v *big.Rat) Mpq {
	var m Mpq
	m.r.Set(v)
	return m
}

// Rat exposes the underlying *big.Rat for call sites that need the full
// math/big surface (e.g. RatString for printing, or Float64 for display).
// The returned pointer aliases m's internal state; callers must not mutate
// it — take a copy via MpqFromRat if mutation is needed.
func (m Mpq) Rat() *big.Rat { return &m.r }

func (m Mpq) Add(o Mpq) Mpq { var z Mpq; z.r.Add(&m.r, &o.r); return z }
func (m Mpq) Sub(o Mpq) Mpq { var z Mpq; z.r.Sub(&m.r, &o.r); return z }
func (m Mpq) Mul(o Mpq) Mpq { var z Mpq; z.r.Mul(&m.r, &o.r); return z }
func (m Mpq) Quo(o Mpq) Mpq { var z Mpq; z.r.Quo(&m.r, &o.r); return z }
func (m Mpq) Neg() Mpq      { var z Mpq; z.r.Neg(&m.r); return z }
func (m Mpq) One() Mpq      { return MpqFromInt64(1, 1) }

func (m Mpq) Cmp(o Mpq) int { return m.r.Cmp(&o.r) }
func (m Mpq) Sign() int     { return m.r.Sign() }
func (m Mpq) IsZero() bool  { return m.r.Sign() == 0 }

func (m Mpq) String() string { return m.r.RatString() }

// mpqInf is a sentinel rational standing in for +infinity on unbounded
// variables: math/big has no literal infinity, so, the same way the
// teacher's matrix package documents +Inf as a narrow, explicit exception
// for "no path" rather than a silent convention, qsxact documents this
// sentinel rather than overloading an ordinary large rational.
var mpqInf Mpq

func init() {
	// big.Rat.SetFrac64 panics on a zero denominator, so mpqInf is built by
	// hand: numerator 1, denominator 0 is not representable, so instead we
	// use a designated huge-but-finite bound that every realistic LP bound
	// compares against as "infinite". QS_EXACT's own mpq_ILL_MAXDOUBLE plays
	// exactly this role (§4.4.2): a fixed huge rational, not a true +Inf.
	mpqInf.r.SetFrac64(1<<62, 1)
}

// MpqPosInf returns the sentinel "+infinity" rational used for unbounded
// upper bounds.
func MpqPosInf() Mpq { return mpqInf }

// MpqNegInf returns the sentinel "-infinity" rational used for unbounded
// lower bounds.
func MpqNegInf() Mpq { return mpqInf.Neg() }

// MpqIsPosInf reports whether v is the +infinity sentinel.
func MpqIsPosInf(v Mpq) bool { return v.Cmp(mpqInf) == 0 }

// MpqIsNegInf reports whether v is the -infinity sentinel.
func MpqIsNegInf(v Mpq) bool { return v.Cmp(mpqInf.Neg()) == 0 }
