// SPDX-License-Identifier: MIT

package certify

import (
	"github.com/katalvlaran/qsxact/lp"
	"github.com/katalvlaran/qsxact/numeric"
)

// Infeasible checks whether y — a candidate dual ray, with no basis
// attached — is itself a valid Farkas certificate that lpv has no
// feasible point, grounded on QSexact_infeasible_test's own
// candidate-taking signature (exact.c clamps a supplied d_sol rather than
// re-deriving one; see certify.BasisStatus for the basis-only
// re-derivation that does compute its own ray).
//
// For every column, dl[col] = max(0, -Aᵀy[col]) and du[col] =
// min(0, -Aᵀy[col]) are the implied bound multipliers. A column whose
// upper bound is +infinity can never contribute through du, nor one whose
// lower bound is -infinity through dl — either is immediate rejection,
// since it would mean the ray is unbounded in a direction the LP actually
// allows. Otherwise the dual objective
//
//	d_obj = sum(rhs[i]*y[i]) + sum(lower[col]*dl[col]) + sum(upper[col]*du[col])
//
// must be strictly positive: that is what makes y a genuine certificate
// rather than just a feasible (and uninformative) dual point.
//
// y must have length lpv.NRows.
func Infeasible(lpv *lp.LP[numeric.Mpq], y []numeric.Mpq) error {
	if len(y) != lpv.NRows {
		return reject(UnknownStatus, "candidate dual ray length does not match row count")
	}

	n := lpv.NStructPlusLogical()

	var dObj numeric.Mpq
	for r := 0; r < lpv.NRows; r++ {
		if !y[r].IsZero() {
			dObj = dObj.Add(lpv.RHS[r].Mul(y[r]))
		}
	}

	var zero numeric.Mpq
	for col := 0; col < n; col++ {
		raw := reducedCostRaw(lpv, y, col).Neg() // -Aᵀy[col]

		dl, du := zero, zero
		switch {
		case raw.Sign() > 0:
			dl = raw
		case raw.Sign() < 0:
			du = raw
		}

		lower, upper := fullBound(lpv, col)
		if numeric.MpqIsPosInf(upper) && !du.IsZero() {
			return reject(InfeasibleRow, "dual ray is unbounded on a column with infinite upper bound")
		}
		if numeric.MpqIsNegInf(lower) && !dl.IsZero() {
			return reject(InfeasibleRow, "dual ray is unbounded on a column with infinite lower bound")
		}

		if !dl.IsZero() {
			dObj = dObj.Add(lower.Mul(dl))
		}
		if !du.IsZero() {
			dObj = dObj.Add(upper.Mul(du))
		}
	}

	if dObj.Sign() <= 0 {
		return reject(InfeasibleRow, "dual objective is not strictly positive")
	}

	lpv.Solution = &lp.SolutionCache[numeric.Mpq]{Status: lp.Infeasible}
	return nil
}
