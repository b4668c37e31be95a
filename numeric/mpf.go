// SPDX-License-Identifier: MIT

package numeric

import "math/big"

// Mpf is the extended binary floating point flavor, at the process-wide
// mantissa width set by WithPrecision. It is the intermediate precision
// the Driver escalates through between Dbl and the fully exact Mpq, and
// the precision LUCache borrows for direction-vector computation (§4.3).
type Mpf struct {
	v big.Float
}

// MpfFromInt64 builds the rational p/q rounded to the current process
// precision.
func MpfFromInt64(p, q int64) Mpf {
	if q == 0 {
		panic("numeric: MpfFromInt64: zero denominator")
	}
	var m Mpf
	m.v.SetPrec(Precision())
	num := new(big.Float).SetPrec(Precision()).SetInt64(p)
	den := new(big.Float).SetPrec(Precision()).SetInt64(q)
	m.v.Quo(num, den)
	return m
}

// MpfFromFloat wraps a big.Float by value at the current process
// precision, rounding if its precision differs.
func MpfFromFloat(v *big.Float) Mpf {
	var m Mpf
	m.v.SetPrec(Precision())
	m.v.Set(v)
	return m
}

// Float exposes the underlying *big.Float. The returned pointer aliases
// m's internal state; callers must not mutate it.
func (m Mpf) Float() *big.Float { return &m.v }

func (m Mpf) Add(o Mpf) Mpf {
	var z Mpf
	z.v.SetPrec(Precision())
	z.v.Add(&m.v, &o.v)
	return z
}

func (m Mpf) Sub(o Mpf) Mpf {
	var z Mpf
	z.v.SetPrec(Precision())
	z.v.Sub(&m.v, &o.v)
	return z
}

func (m Mpf) Mul(o Mpf) Mpf {
	var z Mpf
	z.v.SetPrec(Precision())
	z.v.Mul(&m.v, &o.v)
	return z
}

func (m Mpf) Quo(o Mpf) Mpf {
	var z Mpf
	z.v.SetPrec(Precision())
	z.v.Quo(&m.v, &o.v)
	return z
}

func (m Mpf) Neg() Mpf {
	var z Mpf
	z.v.SetPrec(Precision())
	z.v.Neg(&m.v)
	return z
}

func (m Mpf) One() Mpf {
	var z Mpf
	z.v.SetPrec(Precision())
	z.v.SetInt64(1)
	return z
}

func (m Mpf) Cmp(o Mpf) int  { return m.v.Cmp(&o.v) }
func (m Mpf) Sign() int      { return m.v.Sign() }
func (m Mpf) IsZero() bool   { return m.v.Sign() == 0 }
func (m Mpf) String() string { return m.v.Text('g', -1) }
