// SPDX-License-Identifier: MIT

package lucache

import (
	"github.com/katalvlaran/qsxact/lp"
	"github.com/katalvlaran/qsxact/numeric"
)

// bazFromBasis derives the canonical basic-column list from a Basis: all
// full-column indices (structural then logical) whose status is BASIC,
// in ascending order. Per §4.3's design freedom ("only the set of basic
// columns matters, not the order"), this canonical ordering is as good
// as any other and makes Baz comparisons between two bases a simple
// element-wise diff.
func bazFromBasis(b *lp.Basis) []int {
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

// columnVector returns the dense length-NRows column of the full
// (structural+logical) column space at global index col. Structural
// columns read from lpv.A; logical column NCols+r has a single unit
// entry at row r (§3: "exactly one nonzero").
func columnVector(lpv *lp.LP[numeric.Mpq], col int) []numeric.Mpq {
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

// buildBasisMatrix assembles the dense NRows x NRows matrix whose slot
// columns are the full columns named by baz.
func buildBasisMatrix(lpv *lp.LP[numeric.Mpq], baz []int) [][]numeric.Mpq {
	n := lpv.NRows
	m := make([][]numeric.Mpq, n)
	for i := range m {
		m[i] = make([]numeric.Mpq, n)
	}
	for slot, col := range baz {
		v := columnVector(lpv, col)
		for row := 0; row < n; row++ {
			m[row][slot] = v[row]
		}
	}
	return m
}

// factorDense performs fully-pivoted Gaussian elimination on (a copy of)
// m, returning unit-lower-triangular L and upper-triangular U together
// with the row/column permutations such that, writing rperm/cperm as
// defined on Factorization, (LU)[i][j] == m[rperm[i]][cperm[j]].
//
// Full pivoting (searching the whole remaining submatrix, not just the
// current column) means any nonsingular m factors successfully
// regardless of which entries happen to be zero — exact rational
// arithmetic has no conditioning concerns, only the binary question of
// whether a pivot is zero.
func factorDense(m [][]numeric.Mpq) (L, U [][]numeric.Mpq, rperm, cperm []int, err error) {
	n := len(m)
	work := cloneDense(m)

	rperm = identityPerm(n)
	cperm = identityPerm(n)
	L = zeroDense(n)

	for k := 0; k < n; k++ {
		pi, pj, found := findNonzero(work, k, n)
		if !found {
			return nil, nil, nil, nil, ErrSingular
		}
		if pi != k {
			work[k], work[pi] = work[pi], work[k]
			rperm[k], rperm[pi] = rperm[pi], rperm[k]
			L[k], L[pi] = L[pi], L[k]
		}
		if pj != k {
			for r := 0; r < n; r++ {
				work[r][k], work[r][pj] = work[r][pj], work[r][k]
			}
			cperm[k], cperm[pj] = cperm[pj], cperm[k]
		}

		pivot := work[k][k]
		L[k][k] = numeric.MpqFromInt64(1, 1)
		for i := k + 1; i < n; i++ {
			factor := work[i][k].Quo(pivot)
			L[i][k] = factor
			for j := k; j < n; j++ {
				work[i][j] = work[i][j].Sub(factor.Mul(work[k][j]))
			}
		}
	}

	return L, work, rperm, cperm, nil
}

func findNonzero(work [][]numeric.Mpq, k, n int) (pi, pj int, found bool) {
	for i := k; i < n; i++ {
		for j := k; j < n; j++ {
			if !work[i][j].IsZero() {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func identityPerm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

func invertPerm(p []int) []int {
	inv := make([]int, len(p))
	for i, v := range p {
		inv[v] = i
	}
	return inv
}

func zeroDense(n int) [][]numeric.Mpq {
	m := make([][]numeric.Mpq, n)
	for i := range m {
		m[i] = make([]numeric.Mpq, n)
	}
	return m
}

// Factor performs the initial factorization of basis (§4.3 "Load"):
// UNFACTORED -> FACTORED on success, UNFACTORED with ErrSingular on
// failure.
func Factor(lpv *lp.LP[numeric.Mpq], basis *lp.Basis) (*Factorization, error) {
	if basis.NStruct != lpv.NCols || basis.NRows != lpv.NRows {
		return nil, ErrDimensionMismatch
	}
	baz := bazFromBasis(basis)
	m := buildBasisMatrix(lpv, baz)

	L, U, rperm, cperm, err := factorDense(m)
	if err != nil {
		return nil, err
	}

	return &Factorization{
		N:     len(baz),
		L:     L,
		U:     U,
		RPerm: rperm,
		CPerm: cperm,
		RRank: invertPerm(rperm),
		CRank: invertPerm(cperm),
		Baz:   baz,
		Basis: m,
	}, nil
}

// Load factors basis and installs it as the cache's current
// factorization, transitioning to FACTORED. On ErrSingular the cache is
// left UNFACTORED (§4.3).
func (c *Cache) Load(lpv *lp.LP[numeric.Mpq], basis *lp.Basis) error {
	f, err := Factor(lpv, basis)
	if err != nil {
		c.state = Unfactored
		c.f = nil
		return err
	}
	c.state = Factored
	c.f = f
	return nil
}

// Ensure brings c into FACTORED state against basis, preferring an
// incremental TryUpdate over a full Load when c is already factored
// (§4.3) — callers that only care that the cache now reflects basis, not
// which path got it there, use this instead of choosing between Load and
// TryUpdate themselves.
func (c *Cache) Ensure(lpv *lp.LP[numeric.Mpq], basis *lp.Basis) error {
	if c.state != Factored {
		return c.Load(lpv, basis)
	}
	if err := c.TryUpdate(lpv, basis); err != nil {
		return c.Load(lpv, basis)
	}
	return nil
}

// solveFactored solves Basis * x = rhs given a permuted-LU factorization,
// generic over any numeric flavor — the same routine drives the exact
// Mpq solves used throughout lucache/certify and the transient Mpf
// direction-vector solve in update.go (§9's generic-backend design note
// applied to LU machinery, not just scalar arithmetic).
func solveFactored[T numeric.Num[T]](L, U [][]T, rperm, cperm []int, rhs []T) []T {
	n := len(rperm)

	rhsF := make([]T, n)
	for i := 0; i < n; i++ {
		rhsF[i] = rhs[rperm[i]]
	}

	y := make([]T, n)
	for i := 0; i < n; i++ {
		sum := rhsF[i]
		for j := 0; j < i; j++ {
			sum = sum.Sub(L[i][j].Mul(y[j]))
		}
		y[i] = sum // L[i][i] == 1
	}

	t := make([]T, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for j := i + 1; j < n; j++ {
			sum = sum.Sub(U[i][j].Mul(t[j]))
		}
		t[i] = sum.Quo(U[i][i])
	}

	x := make([]T, n)
	for j := 0; j < n; j++ {
		x[cperm[j]] = t[j]
	}
	return x
}

// Solve computes Basis^-1 * rhs exactly, using the cache's current
// factorization. rhs and the result are both in original-row / slot
// space respectively.
func (f *Factorization) Solve(rhs []numeric.Mpq) []numeric.Mpq {
	return solveFactored(f.L, f.U, f.RPerm, f.CPerm, rhs)
}

// solveFactoredTranspose solves Basis^T * pi = cB (cB indexed by slot,
// pi returned indexed by original row) given a permuted-LU factorization.
// Writing Pr*Basis*Pc = L*U, Basis^T = Pc*U^T*L^T*Pr, so the system
// reduces to a lower-triangular solve against U^T followed by an
// upper-triangular (unit-diagonal) solve against L^T — the transpose of
// solveFactored's two substitutions, used by certify for dual-vector and
// Farkas-row computation (§4.4).
func solveFactoredTranspose[T numeric.Num[T]](L, U [][]T, rperm, cperm []int, cB []T) []T {
	n := len(rperm)

	d := make([]T, n)
	for j := 0; j < n; j++ {
		d[j] = cB[cperm[j]]
	}

	w := make([]T, n)
	for j := 0; j < n; j++ {
		sum := d[j]
		for k := 0; k < j; k++ {
			sum = sum.Sub(U[k][j].Mul(w[k]))
		}
		w[j] = sum.Quo(U[j][j])
	}

	q := make([]T, n)
	for i := n - 1; i >= 0; i-- {
		sum := w[i]
		for k := i + 1; k < n; k++ {
			sum = sum.Sub(L[k][i].Mul(q[k]))
		}
		q[i] = sum // L[i][i] == 1
	}

	pi := make([]T, n)
	for i := 0; i < n; i++ {
		pi[rperm[i]] = q[i]
	}
	return pi
}

// SolveTranspose computes Basis^-T * cB exactly.
func (f *Factorization) SolveTranspose(cB []numeric.Mpq) []numeric.Mpq {
	return solveFactoredTranspose(f.L, f.U, f.RPerm, f.CPerm, cB)
}

// Reproduce multiplies L*U back out under the stored permutations,
// returning the NxN matrix it reconstructs — used by the
// "LUCache correctness" invariant test (§8): it must equal Basis exactly.
func (f *Factorization) Reproduce() [][]numeric.Mpq {
	n := f.N
	out := zeroDense(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum numeric.Mpq
			for k := 0; k < n; k++ {
				sum = sum.Add(f.L[i][k].Mul(f.U[k][j]))
			}
			out[f.RPerm[i]][f.CPerm[j]] = sum
		}
	}
	return out
}
