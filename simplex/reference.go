// SPDX-License-Identifier: MIT

package simplex

import (
	"github.com/katalvlaran/qsxact/lp"
	"github.com/katalvlaran/qsxact/numeric"
)

// Reference is a textbook two-phase bounded-variable primal simplex. It
// recomputes the basis inverse from scratch by dense Gaussian elimination
// on every pivot rather than maintaining an eta-file or LU — adequate for
// the small fixtures it is meant to drive, and deliberately simple since
// it is a test fixture, not a production pivot engine (see package doc).
type Reference[T numeric.Num[T]] struct {
	maxIter int

	seed *lp.Basis

	status  lp.StatusCode
	baz     []int
	nonLow  map[int]bool // true: nonbasic at Lower, false: nonbasic at Upper
	x       []T
	pi      []T
	infeas  []T
	basis   *lp.Basis
	nIter   int
	nCols   int
	nRows   int
	fullLen int
}

// NewReference builds a reference solver with the given iteration cap
// (0 means a conservative built-in default of 10000).
func NewReference[T numeric.Num[T]](maxIter int) *Reference[T] {
	if maxIter <= 0 {
		maxIter = 10000
	}
	return &Reference[T]{maxIter: maxIter, status: lp.Unsolved}
}

func (r *Reference[T]) LoadBasis(b *lp.Basis) error {
	if b != nil {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	r.seed = b.Clone()
	return nil
}

func (r *Reference[T]) Status() lp.StatusCode { return r.status }
func (r *Reference[T]) XArray() []T {
	if r.x == nil {
		return nil
	}
	return r.x[:r.nCols]
}
func (r *Reference[T]) PiArray() []T           { return r.pi }
func (r *Reference[T]) InfeasArray() []T       { return r.infeas }
func (r *Reference[T]) Basis() *lp.Basis       { return r.basis.Clone() }
func (r *Reference[T]) IterCount() int         { return r.nIter }

func fullColumnT[T numeric.Num[T]](lpv *lp.LP[T], col int) []T {
	out := make([]T, lpv.NRows)
	if col < lpv.NCols {
		ind, val := lpv.A.Col(col)
		for k, row := range ind {
			out[row] = val[k]
		}
		return out
	}
	var zero T
	out[col-lpv.NCols] = zero.One()
	return out
}

func absT2[T numeric.Num[T]](v T) T {
	if v.Sign() < 0 {
		return v.Neg()
	}
	return v
}

// infinityThreshold builds 2^50 in flavor T purely from One()/Add, used to
// recognize a bound as "effectively unbounded" without any
// flavor-specific literal: every qsxact flavor represents an unbounded
// side with a sentinel around 2^62 (see numeric.MpqPosInf and its
// Dbl/Mpf counterparts produced by lp's cross-flavor copies), safely
// above this threshold.
func infinityThreshold[T numeric.Num[T]]() T {
	var zero T
	v := zero.One()
	for i := 0; i < 50; i++ {
		v = v.Add(v)
	}
	return v
}

func isUnbounded[T numeric.Num[T]](v, thresh T) bool {
	return absT2(v).Cmp(thresh) > 0
}

func bounds[T numeric.Num[T]](lpv *lp.LP[T], col int) (T, T) {
	return lpv.Lower[col], lpv.Upper[col]
}

// denseInverse inverts an n x n matrix by Gauss-Jordan elimination with
// partial pivoting (largest-magnitude pivot in the remaining column),
// reporting ok=false if no nonzero pivot is found.
func denseInverse[T numeric.Num[T]](m [][]T) ([][]T, bool) {
	n := len(m)
	work := make([][]T, n)
	inv := make([][]T, n)
	var zero T
	one := zero.One()
	for i := 0; i < n; i++ {
		work[i] = append([]T(nil), m[i]...)
		inv[i] = make([]T, n)
		inv[i][i] = one
	}

	for k := 0; k < n; k++ {
		piv := k
		best := absT2(work[k][k])
		for i := k + 1; i < n; i++ {
			if c := absT2(work[i][k]); c.Cmp(best) > 0 {
				best, piv = c, i
			}
		}
		if work[piv][k].IsZero() {
			return nil, false
		}
		if piv != k {
			work[k], work[piv] = work[piv], work[k]
			inv[k], inv[piv] = inv[piv], inv[k]
		}

		pivot := work[k][k]
		for j := 0; j < n; j++ {
			work[k][j] = work[k][j].Quo(pivot)
			inv[k][j] = inv[k][j].Quo(pivot)
		}
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			factor := work[i][k]
			if factor.IsZero() {
				continue
			}
			for j := 0; j < n; j++ {
				work[i][j] = work[i][j].Sub(factor.Mul(work[k][j]))
				inv[i][j] = inv[i][j].Sub(factor.Mul(inv[k][j]))
			}
		}
	}
	return inv, true
}

func matVec[T numeric.Num[T]](m [][]T, v []T) []T {
	n := len(m)
	out := make([]T, n)
	for i := 0; i < n; i++ {
		var sum T
		for j := 0; j < n; j++ {
			if !m[i][j].IsZero() && !v[j].IsZero() {
				sum = sum.Add(m[i][j].Mul(v[j]))
			}
		}
		out[i] = sum
	}
	return out
}

func vecMat[T numeric.Num[T]](v []T, m [][]T) []T {
	n := len(m)
	out := make([]T, n)
	for j := 0; j < n; j++ {
		var sum T
		for i := 0; i < n; i++ {
			if !v[i].IsZero() && !m[i][j].IsZero() {
				sum = sum.Add(v[i].Mul(m[i][j]))
			}
		}
		out[j] = sum
	}
	return out
}

func dot[T numeric.Num[T]](a, b []T) T {
	var sum T
	for i := range a {
		if !a[i].IsZero() && !b[i].IsZero() {
			sum = sum.Add(a[i].Mul(b[i]))
		}
	}
	return sum
}

func bazFromBasisT(b *lp.Basis) []int {
	baz := make([]int, 0, b.NRows)
	for i, s := range b.CStat {
		if s == lp.Basic {
			baz = append(baz, i)
		}
	}
	for r, s := range b.RStat {
		if s == lp.Basic {
			baz = append(baz, b.NStruct+r)
		}
	}
	return baz
}

func setStatus(b *lp.Basis, col int, st lp.Status) {
	if col < b.NStruct {
		b.CStat[col] = st
	} else {
		b.RStat[col-b.NStruct] = st
	}
}

func getStatus(b *lp.Basis, col int) lp.Status {
	if col < b.NStruct {
		return b.CStat[col]
	}
	return b.RStat[col-b.NStruct]
}

// defaultNonbasicStatus anchors a cold-start nonbasic structural variable
// at whichever bound is finite, preferring Lower; a variable with neither
// bound finite is anchored at Lower with the sentinel value itself, which
// the first pivot will immediately move off of.
func defaultNonbasicStatus[T numeric.Num[T]](lower, upper, thresh T) lp.Status {
	if !isUnbounded(lower, thresh) {
		return lp.Lower
	}
	if !isUnbounded(upper, thresh) {
		return lp.Upper
	}
	return lp.Lower
}

func buildBasisMatrixT[T numeric.Num[T]](lpv *lp.LP[T], baz []int) [][]T {
	n := lpv.NRows
	m := make([][]T, n)
	for i := range m {
		m[i] = make([]T, n)
	}
	for slot, col := range baz {
		v := fullColumnT(lpv, col)
		for row := 0; row < n; row++ {
			m[row][slot] = v[row]
		}
	}
	return m
}

// Solve drives the two-phase bounded-variable primal simplex to a
// terminal status. algo is accepted for Solver[T] conformance; this
// reference implementation always runs a primal-only search regardless
// of Primal/Dual, since a from-scratch composite-objective Phase 1
// already handles a cold or infeasible warm start without a separate
// dual-simplex code path.
func (r *Reference[T]) Solve(lpv *lp.LP[T], algo Algo) (lp.StatusCode, error) {
	r.nCols, r.nRows = lpv.NCols, lpv.NRows
	r.fullLen = lpv.NStructPlusLogical()
	n := r.nRows
	thresh := infinityThreshold[T]()

	basis := r.seed
	if basis == nil {
		basis = &lp.Basis{
			NStruct: lpv.NCols,
			NRows:   lpv.NRows,
			CStat:   make([]lp.Status, lpv.NCols),
			RStat:   make([]lp.Status, lpv.NRows),
		}
		for i := 0; i < lpv.NCols; i++ {
			lo, up := bounds(lpv, i)
			basis.CStat[i] = defaultNonbasicStatus(lo, up, thresh)
		}
		for rr := 0; rr < lpv.NRows; rr++ {
			basis.RStat[rr] = lp.Basic
		}
	}
	basis = basis.Clone()

	r.nIter = 0
	var finalStatus lp.StatusCode

	for phase := 1; phase <= 2; phase++ {
		for {
			baz := bazFromBasisT(basis)
			if len(baz) != n {
				return lp.Unsolved, lp.ErrBadBasis
			}
			binv, ok := denseInverse(buildBasisMatrixT(lpv, baz))
			if !ok {
				finalStatus = lp.Unsolved
				goto done
			}

			rhs := append([]T(nil), lpv.RHS...)
			for col := 0; col < r.fullLen; col++ {
				if getStatus(basis, col) == lp.Basic {
					continue
				}
				v := boundValue(lpv, basis, col)
				if v.IsZero() {
					continue
				}
				colv := fullColumnT(lpv, col)
				for row, a := range colv {
					if !a.IsZero() {
						rhs[row] = rhs[row].Sub(a.Mul(v))
					}
				}
			}
			xB := matVec(binv, rhs)

			costRow := make([]T, r.fullLen)
			infeasCount := 0
			for slot, col := range baz {
				lo, up := bounds(lpv, col)
				v := xB[slot]
				switch {
				case v.Cmp(lo) < 0:
					costRow[col] = costRow[col].Sub(costRow[col].One())
					infeasCount++
				case v.Cmp(up) > 0:
					costRow[col] = costRow[col].One()
					infeasCount++
				}
			}

			if phase == 2 {
				if infeasCount > 0 {
					finalStatus = lp.Unsolved
					goto done
				}
				copy(costRow, lpv.Obj)
			} else if infeasCount == 0 {
				break // phase 1 feasible; fall through to phase 2
			}

			cB := make([]T, n)
			for slot, col := range baz {
				cB[slot] = costRow[col]
			}
			piRow := vecMat(cB, binv)

			bestCol, bestDir := -1, 0
			var bestScore T
			for col := 0; col < r.fullLen; col++ {
				if getStatus(basis, col) == lp.Basic {
					continue
				}
				if clo, cup := bounds(lpv, col); clo.Cmp(cup) == 0 {
					continue // fixed variable: no direction can move it
				}
				rc := costRow[col].Sub(dot(piRow, fullColumnT(lpv, col)))
				dir := +1
				if getStatus(basis, col) == lp.Upper {
					dir = -1
				}
				var score T
				if dir > 0 {
					score = rc.Neg()
				} else {
					score = rc
				}
				if score.Sign() > 0 && (bestCol == -1 || score.Cmp(bestScore) > 0) {
					bestCol, bestDir, bestScore = col, dir, score
				}
			}

			if bestCol == -1 {
				if phase == 1 {
					finalStatus = lp.Infeasible
				} else {
					finalStatus = lp.Optimal
				}
				r.basis = basis
				r.x = make([]T, r.fullLen)
				for col := 0; col < r.fullLen; col++ {
					if getStatus(basis, col) != lp.Basic {
						r.x[col] = boundValue(lpv, basis, col)
					}
				}
				for slot, col := range baz {
					r.x[col] = xB[slot]
				}
				r.pi = piRow
				r.infeas = make([]T, n)
				for row := 0; row < n; row++ {
					// A row is violated exactly when its logical lies
					// outside the logical's bounds.
					lo, up := bounds(lpv, r.nCols+row)
					v := r.x[r.nCols+row]
					if v.Cmp(lo) < 0 {
						r.infeas[row] = lo.Sub(v)
					} else if v.Cmp(up) > 0 {
						r.infeas[row] = v.Sub(up)
					}
				}
				goto done
			}

			d := matVec(binv, fullColumnT(lpv, bestCol))

			lo, up := bounds(lpv, bestCol)
			var limit T
			limited := false
			if !isUnbounded(lo, thresh) && !isUnbounded(up, thresh) {
				limit = up.Sub(lo)
				limited = true
			}

			leaveSlot := -1
			for slot := 0; slot < n; slot++ {
				ds := d[slot]
				if bestDir < 0 {
					ds = ds.Neg()
				}
				if ds.IsZero() {
					continue
				}
				col := baz[slot]
				blo, bup := bounds(lpv, col)
				v := xB[slot]
				infeasLow := v.Cmp(blo) < 0
				infeasHigh := v.Cmp(bup) > 0

				// xB[slot] moves to xB[slot] - step*ds as step grows (see
				// the update loop below), so ds > 0 means this basic
				// variable is decreasing toward its lower bound, and
				// ds < 0 means it is increasing toward its upper bound.
				// A variable already past the bound on that side
				// (infeasLow/infeasHigh, set above from its value before
				// this step) imposes no fresh limit on that side.
				var t T
				var ok bool
				switch {
				case ds.Sign() > 0 && !infeasLow:
					t = v.Sub(blo).Quo(ds)
					ok = true
				case ds.Sign() < 0 && !infeasHigh:
					t = v.Sub(bup).Quo(ds)
					ok = true
				default:
					ok = false
				}
				if !ok {
					continue
				}
				if t.Sign() < 0 {
					t = t.Sub(t) // clamp negative numerical noise to zero
				}
				if !limited || t.Cmp(limit) < 0 {
					limit, limited, leaveSlot = t, true, slot
				}
			}

			if !limited {
				finalStatus = lp.Unbounded
				r.basis = basis
				goto done
			}

			step := limit
			for slot := range xB {
				delta := step.Mul(d[slot])
				if bestDir < 0 {
					delta = delta.Neg()
				}
				xB[slot] = xB[slot].Sub(delta)
			}

			if leaveSlot == -1 {
				// bound flip: bestCol moves to its opposite bound without
				// becoming basic.
				if bestDir > 0 {
					setStatus(basis, bestCol, lp.Upper)
				} else {
					setStatus(basis, bestCol, lp.Lower)
				}
			} else {
				leavingCol := baz[leaveSlot]
				lb, _ := bounds(lpv, leavingCol)
				v := xB[leaveSlot]
				if v.Cmp(lb) <= 0 {
					setStatus(basis, leavingCol, lp.Lower)
				} else {
					setStatus(basis, leavingCol, lp.Upper)
				}
				setStatus(basis, bestCol, lp.Basic)
			}

			r.nIter++
			if r.nIter >= r.maxIter {
				finalStatus = lp.IterLimit
				r.basis = basis
				goto done
			}
		}
	}

done:
	r.status = finalStatus
	if r.basis == nil {
		r.basis = basis
	}
	return r.status, nil
}

func fullRow[T numeric.Num[T]](lpv *lp.LP[T], row int) []T {
	out := make([]T, lpv.NStructPlusLogical())
	for col := 0; col < lpv.NCols; col++ {
		ind, val := lpv.A.Col(col)
		for k, r := range ind {
			if r == row {
				out[col] = val[k]
			}
		}
	}
	out[lpv.NCols+row] = out[lpv.NCols+row].One()
	return out
}

func boundValue[T numeric.Num[T]](lpv *lp.LP[T], b *lp.Basis, col int) T {
	lo, up := bounds(lpv, col)
	if getStatus(b, col) == lp.Upper {
		return up
	}
	return lo
}
