// SPDX-License-Identifier: MIT

package certify

import (
	"github.com/katalvlaran/qsxact/lp"
	"github.com/katalvlaran/qsxact/lucache"
	"github.com/katalvlaran/qsxact/numeric"
)

// BasisStatus independently re-derives a basis's status from scratch
// (§4.4.3): unlike Optimal and Infeasible it takes no candidate
// primal/dual — cache is factored (or incrementally updated, via its own
// Ensure) against basis, and x, pi, and every reduced cost are recomputed
// exactly before running the same feasibility checks Optimal and
// Infeasible run against a caller-supplied candidate. This is the
// candidate-free re-derivation exact.c's basis-status path performs, as
// opposed to Optimal/Infeasible's candidate-clamping contract.
//
// The Driver calls this as its one retry when a candidate-driven
// certification is rejected: a rejection there most often means the
// candidate itself was still approximate, not that the basis is wrong.
//
// Returns lp.Optimal or lp.Infeasible (with the LP's Solution populated,
// exactly as Optimal/Infeasible themselves would populate it) on success,
// or lp.Unsolved with a nil error when the basis is neither certifiably
// optimal nor certifiably infeasible — the caller is expected to
// escalate precision rather than treat that as a hard failure. A non-nil
// error means the basis itself is malformed or its matrix failed to
// factor.
//
// SPEC_FULL.md's own Go realization of this operation names its return
// type lp.Status, but lp.Status is the per-variable BASIC/LOWER/UPPER/FREE
// enum and cannot represent OPTIMAL/INFEASIBLE/UNSOLVED; this codebase's
// matching vocabulary is lp.StatusCode, which is what Driver's round loop
// and every other status-reporting operation in this package already use
// — see DESIGN.md.
//
// BasisStatus does not attempt UNBOUNDED detection: doing so requires
// walking every nonbasic column's allowed pivot direction against an
// infinite bound, a check this package's other operations never needed
// since the Driver's own round loop already documents UNBOUNDED as
// unhandled and simply propagated.
func BasisStatus(lpv *lp.LP[numeric.Mpq], basis *lp.Basis, cache *lucache.Cache) (lp.StatusCode, error) {
	if err := basis.Validate(); err != nil {
		return lp.Unsolved, reject(UnknownStatus, "basis failed validation: "+err.Error())
	}

	p, err := project(lpv, basis, cache)
	if err != nil {
		if _, ok := err.(*RejectionError); ok {
			return lp.Unsolved, err
		}
		return lp.Unsolved, reject(UnknownStatus, "basis failed to factor: "+err.Error())
	}

	n := lpv.NStructPlusLogical()
	basicSlot := make([]int, n)
	for i := range basicSlot {
		basicSlot[i] = -1
	}
	for slot, col := range p.baz {
		basicSlot[col] = slot
	}

	violSlot, violSign := -1, 0
	for slot, col := range p.baz {
		lower, upper := fullBound(lpv, col)
		v := p.x[col]
		switch {
		case v.Cmp(upper) > 0:
			violSlot, violSign = slot, +1
		case v.Cmp(lower) < 0:
			violSlot, violSign = slot, -1
		}
		if violSlot >= 0 {
			break
		}
	}

	if violSlot >= 0 {
		if !farkasRowHolds(lpv, basis, p, basicSlot, violSlot, violSign) {
			return lp.Unsolved, nil
		}
		lpv.Solution = &lp.SolutionCache[numeric.Mpq]{Status: lp.Infeasible}
		return lp.Infeasible, nil
	}

	for col := 0; col < n; col++ {
		lower, upper := fullBound(lpv, col)
		if lower.Cmp(upper) > 0 {
			return lp.Unsolved, nil
		}
	}

	pi := dualVector(lpv, p)
	sign := lpv.Sense.SignFor()
	rc := make([]numeric.Mpq, n)
	for col := 0; col < n; col++ {
		if basicSlot[col] >= 0 {
			continue
		}
		r := reducedCost(lpv, pi, col)
		rc[col] = r
		st := fullStatus(basis, col, lpv.NCols)
		s := sign * r.Sign()
		switch st {
		case lp.Lower:
			if s < 0 {
				return lp.Unsolved, nil
			}
		case lp.Upper:
			if s > 0 {
				return lp.Unsolved, nil
			}
		default:
			return lp.Unsolved, nil
		}
	}

	var pObj numeric.Mpq
	for col := 0; col < n; col++ {
		if !lpv.Obj[col].IsZero() {
			pObj = pObj.Add(lpv.Obj[col].Mul(p.x[col]))
		}
	}
	var dObj numeric.Mpq
	for r := 0; r < lpv.NRows; r++ {
		dObj = dObj.Add(pi[r].Mul(lpv.RHS[r]))
	}
	for col := 0; col < n; col++ {
		if basicSlot[col] >= 0 {
			continue
		}
		dObj = dObj.Add(rc[col].Mul(p.x[col]))
	}
	if pObj.Cmp(dObj) != 0 {
		return lp.Unsolved, nil
	}

	lpv.Solution = &lp.SolutionCache[numeric.Mpq]{
		Status: lp.Optimal,
		Val:    pObj,
		X:      append([]numeric.Mpq(nil), p.x[:lpv.NCols]...),
		Rc:     append([]numeric.Mpq(nil), rc[:lpv.NCols]...),
		Slack:  append([]numeric.Mpq(nil), p.x[lpv.NCols:]...),
		Pi:     pi,
	}
	return lp.Optimal, nil
}

// farkasRowHolds checks the same sign condition Infeasible's doc comment
// derives, against the exactly recomputed projection's own violated row
// rather than a supplied dual ray: it builds y by solving a single row of
// Basis^-T and checks the sign at every nonbasic column.
func farkasRowHolds(lpv *lp.LP[numeric.Mpq], basis *lp.Basis, p *projection, basicSlot []int, violSlot, violSign int) bool {
	ek := make([]numeric.Mpq, p.fa.N)
	ek[violSlot] = numeric.MpqFromInt64(1, 1)
	y := p.fa.SolveTranspose(ek)

	n := lpv.NStructPlusLogical()
	for col := 0; col < n; col++ {
		if basicSlot[col] >= 0 {
			continue
		}
		d := reducedCostRaw(lpv, y, col)
		st := fullStatus(basis, col, lpv.NCols)

		var ok bool
		switch {
		case violSign > 0 && st == lp.Lower:
			ok = d.Sign() <= 0
		case violSign > 0 && st == lp.Upper:
			ok = d.Sign() >= 0
		case violSign < 0 && st == lp.Lower:
			ok = d.Sign() >= 0
		case violSign < 0 && st == lp.Upper:
			ok = d.Sign() <= 0
		default:
			ok = false
		}
		if !ok {
			return false
		}
	}
	return true
}
