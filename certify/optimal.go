// SPDX-License-Identifier: MIT

package certify

import (
	"github.com/katalvlaran/qsxact/lp"
	"github.com/katalvlaran/qsxact/numeric"
)

// Optimal checks whether (x, y) — a candidate primal/dual pair an inexact
// solver produced, paired with the basis it claims supports them — really
// is optimal, grounded directly on QSexact_optimal_test's own signature:
// the original takes p_sol/d_sol as parameters and clamps them rather
// than re-deriving a primal/dual pair from the basis alone (see
// certify.BasisStatus for that from-scratch re-derivation).
//
// x must have length lpv.NStructPlusLogical() (structural columns then
// logical); y must have length lpv.NRows. Neither is mutated.
//
// Every nonbasic column is first pinned to the bound its status names
// (overriding whatever x said there); basic/free columns are clamped into
// range if the candidate fell outside it. Logical values are then
// recomputed row-by-row from rhs - Ax and must either be adopted (basic
// rows) or match the pinned value exactly (nonbasic rows). Reduced costs
// are computed as obj - Aᵀy and checked for complementary slackness
// against the clamped primal. Finally the primal and dual objective
// values, computed independently, must agree exactly.
//
// On success it populates lpv.Solution and returns it; on any mismatch it
// returns a *RejectionError (wrapping ErrCertifierRejection) and leaves
// lpv.Solution untouched.
func Optimal(lpv *lp.LP[numeric.Mpq], basis *lp.Basis, x, y []numeric.Mpq) (*lp.SolutionCache[numeric.Mpq], error) {
	if err := basis.Validate(); err != nil {
		return nil, reject(UnknownStatus, "basis failed validation: "+err.Error())
	}

	n := lpv.NStructPlusLogical()
	if len(x) != n || len(y) != lpv.NRows {
		return nil, reject(UnknownStatus, "candidate vector length does not match lp dimensions")
	}

	px := append([]numeric.Mpq(nil), x...)

	for col := 0; col < n; col++ {
		lower, upper := fullBound(lpv, col)
		if lower.Cmp(upper) > 0 {
			return nil, reject(EmptyBounds, "column has lower bound above upper bound")
		}
		switch fullStatus(basis, col, lpv.NCols) {
		case lp.Basic, lp.Free:
			if px[col].Cmp(lower) < 0 {
				px[col] = lower
			} else if px[col].Cmp(upper) > 0 {
				px[col] = upper
			}
		case lp.Lower:
			px[col] = lower
		case lp.Upper:
			px[col] = upper
		default:
			return nil, reject(UnknownStatus, "column has unrecognized basis status")
		}
	}

	ax := make([]numeric.Mpq, lpv.NRows)
	for col := 0; col < lpv.NCols; col++ {
		if px[col].IsZero() {
			continue
		}
		ind, val := lpv.A.Col(col)
		for k, r := range ind {
			if !val[k].IsZero() {
				ax[r] = ax[r].Add(val[k].Mul(px[col]))
			}
		}
	}

	for r := 0; r < lpv.NRows; r++ {
		col := lpv.NCols + r
		computed := lpv.RHS[r].Sub(ax[r])
		lower, upper := fullBound(lpv, col)
		switch fullStatus(basis, col, lpv.NCols) {
		case lp.Basic:
			if computed.Cmp(lower) < 0 || computed.Cmp(upper) > 0 {
				return nil, reject(BoundViolation, "basic logical variable's recomputed value falls outside its bounds")
			}
			px[col] = computed
		case lp.Lower, lp.Upper:
			if px[col].Cmp(computed) != 0 {
				return nil, reject(BoundViolation, "projected primal fails row balance: basis is not feasible for the candidate")
			}
		default:
			return nil, reject(UnknownStatus, "row has unrecognized basis status")
		}
	}

	sign := lpv.Sense.SignFor()
	dz := make([]numeric.Mpq, n)
	var dualBoundTerm numeric.Mpq
	for col := 0; col < n; col++ {
		d := reducedCost(lpv, y, col)
		dz[col] = d

		s := sign * d.Sign()
		if s == 0 {
			continue
		}
		lower, upper := fullBound(lpv, col)
		if s > 0 {
			if !px[col].Sub(lower).Mul(d).IsZero() {
				return nil, reject(ComplementarySlacknessViolation, "reduced cost is active but variable is not at its lower bound")
			}
			dualBoundTerm = dualBoundTerm.Add(d.Mul(lower))
		} else {
			if !px[col].Sub(upper).Mul(d).IsZero() {
				return nil, reject(ComplementarySlacknessViolation, "reduced cost is active but variable is not at its upper bound")
			}
			dualBoundTerm = dualBoundTerm.Add(d.Mul(upper))
		}
	}

	var pObj numeric.Mpq
	for col := 0; col < n; col++ {
		if !lpv.Obj[col].IsZero() {
			pObj = pObj.Add(lpv.Obj[col].Mul(px[col]))
		}
	}

	var dObj numeric.Mpq
	for r := 0; r < lpv.NRows; r++ {
		if !y[r].IsZero() {
			dObj = dObj.Add(lpv.RHS[r].Mul(y[r]))
		}
	}
	dObj = dObj.Add(dualBoundTerm)

	if pObj.Cmp(dObj) != 0 {
		return nil, reject(ObjectiveMismatch, "primal and dual objective values disagree")
	}

	cache := &lp.SolutionCache[numeric.Mpq]{
		Status: lp.Optimal,
		Val:    pObj,
		X:      append([]numeric.Mpq(nil), px[:lpv.NCols]...),
		Rc:     append([]numeric.Mpq(nil), dz[:lpv.NCols]...),
		Slack:  append([]numeric.Mpq(nil), px[lpv.NCols:]...),
		Pi:     append([]numeric.Mpq(nil), y...),
	}
	lpv.Solution = cache
	return cache, nil
}
