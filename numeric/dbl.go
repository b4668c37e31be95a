// SPDX-License-Identifier: MIT

package numeric

import "strconv"

// Dbl is the machine-double numeric flavor: the cheap, inexact arithmetic
// the precision-escalation loop always tries first.
type Dbl float64

// DblFromInt64 builds the rational p/q as a Dbl. Division by zero panics,
// matching the teacher's convention of panicking only on programmer error
// (a caller passing q=0 is a programming mistake, not user input).
func DblFromInt64(p, q int64) Dbl {
	if q == 0 {
		panic("numeric: DblFromInt64: zero denominator")
	}
	return Dbl(float64(p) / float64(q))
}

func (d Dbl) Add(o Dbl) Dbl { return d + o }
func (d Dbl) Sub(o Dbl) Dbl { return d - o }
func (d Dbl) Mul(o Dbl) Dbl { return d * o }
func (d Dbl) Quo(o Dbl) Dbl { return d / o }
func (d Dbl) Neg() Dbl      { return -d }
func (d Dbl) One() Dbl      { return 1 }

func (d Dbl) Cmp(o Dbl) int {
	switch {
	case d < o:
		return -1
	case d > o:
		return 1
	default:
		return 0
	}
}

func (d Dbl) Sign() int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

func (d Dbl) IsZero() bool { return d == 0 }

func (d Dbl) String() string { return strconv.FormatFloat(float64(d), 'g', -1, 64) }
