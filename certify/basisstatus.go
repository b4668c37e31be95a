// SPDX-License-Identifier: MIT

package certify

import (
	"github.com/katalvlaran/qsxact/lp"
	"github.com/katalvlaran/qsxact/lucache"
	"github.com/katalvlaran/qsxact/numeric"
)

// fullStatus/fullBound/fullColumn let this package address structural and
// logical variables uniformly by full-column index (0..NCols+NRows-1),
// mirroring how lucache already treats the two kinds of column.

func fullStatus(basis *lp.Basis, col, nCols int) lp.Status {
	if col < nCols {
		return basis.CStat[col]
	}
	return basis.RStat[col-nCols]
}

func fullBound(lpv *lp.LP[numeric.Mpq], col int) (lower, upper numeric.Mpq) {
	return lpv.Lower[col], lpv.Upper[col]
}

// fullColumn returns the dense row-vector of full column col (reusing the
// same convention lucache.columnVector relies on internally; duplicated
// here rather than exported, since lucache keeps it package-private).
func fullColumn(lpv *lp.LP[numeric.Mpq], col int) []numeric.Mpq {
	out := make([]numeric.Mpq, lpv.NRows)
	if col < lpv.NCols {
		ind, val := lpv.A.Col(col)
		for k, r := range ind {
			out[r] = val[k]
		}
		return out
	}
	r := col - lpv.NCols
	out[r] = numeric.MpqFromInt64(1, 1)
	return out
}

// reducedCost computes c_j - pi.A_j for a single full column.
func reducedCost(lpv *lp.LP[numeric.Mpq], pi []numeric.Mpq, col int) numeric.Mpq {
	rc := lpv.Obj[col]
	colv := fullColumn(lpv, col)
	for r, a := range colv {
		if !a.IsZero() {
			rc = rc.Sub(pi[r].Mul(a))
		}
	}
	return rc
}

// reducedCostRaw computes y.A_j without subtracting an objective term —
// the raw row entry a candidate or Farkas dual ray needs at a column, as
// opposed to reducedCost's objective-relative quantity.
func reducedCostRaw(lpv *lp.LP[numeric.Mpq], y []numeric.Mpq, col int) numeric.Mpq {
	var d numeric.Mpq
	colv := fullColumn(lpv, col)
	for r, a := range colv {
		if !a.IsZero() {
			d = d.Add(y[r].Mul(a))
		}
	}
	return d
}

// projection is the from-scratch re-derivation BasisStatus performs: no
// candidate primal is consulted (that is Optimal/Infeasible's job) —
// every value here comes from solving exactly against the basis's own
// factorization.
type projection struct {
	baz []int // full-column index basic at each slot
	x   []numeric.Mpq
	fa  *lucache.Factorization
}

// project factors basis through cache (loading or incrementally updating
// it, per lucache's own Ensure contract) and solves for every variable's
// value: nonbasic variables are pinned to the bound their status names,
// and the basic block is solved exactly via B*x_B = rhs - N*x_N.
func project(lpv *lp.LP[numeric.Mpq], basis *lp.Basis, cache *lucache.Cache) (*projection, error) {
	if err := cache.Ensure(lpv, basis); err != nil {
		return nil, err
	}
	fact := cache.Factorization()

	n := lpv.NStructPlusLogical()
	x := make([]numeric.Mpq, n)
	basicSlot := make([]int, n)
	for i := range basicSlot {
		basicSlot[i] = -1
	}
	for slot, col := range fact.Baz {
		basicSlot[col] = slot
	}

	rhs := append([]numeric.Mpq(nil), lpv.RHS...)
	for col := 0; col < n; col++ {
		if basicSlot[col] >= 0 {
			continue
		}
		st := fullStatus(basis, col, lpv.NCols)
		lower, upper := fullBound(lpv, col)
		var v numeric.Mpq
		switch st {
		case lp.Lower:
			v = lower
		case lp.Upper:
			v = upper
		default:
			return nil, reject(BoundViolation, "nonbasic variable has no fixed bound to pin to")
		}
		x[col] = v
		if v.IsZero() {
			continue
		}
		colv := fullColumn(lpv, col)
		for r, a := range colv {
			if !a.IsZero() {
				rhs[r] = rhs[r].Sub(a.Mul(v))
			}
		}
	}

	xB := fact.Solve(rhs)
	for slot, col := range fact.Baz {
		x[col] = xB[slot]
	}

	return &projection{baz: fact.Baz, x: x, fa: fact}, nil
}

// dualVector solves Basis^T * pi = cB for the full-column objective row
// restricted to the basic slots.
func dualVector(lpv *lp.LP[numeric.Mpq], p *projection) []numeric.Mpq {
	cB := make([]numeric.Mpq, len(p.baz))
	for slot, col := range p.baz {
		cB[slot] = lpv.Obj[col]
	}
	return p.fa.SolveTranspose(cB)
}
