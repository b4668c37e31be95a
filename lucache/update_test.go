// SPDX-License-Identifier: MIT

package lucache

import (
	"testing"

	"github.com/katalvlaran/qsxact/lp"
	"github.com/katalvlaran/qsxact/numeric"
	"github.com/stretchr/testify/require"
)

// buildIdentityLP returns an n-row LP whose structural columns are the
// identity matrix (column i has a single 1 at row i) and whose logical
// variables, fixed at 0 by an E-sense row, are therefore also the
// identity's unit vectors — any basis built from either family reproduces
// the same identity matrix, which keeps hand-tracing TryUpdate's numeric
// path (direction vectors, splicing, re-factoring) exact without the
// positional Baz-shift that swapping a middle column would introduce.
func buildIdentityLP(t *testing.T, n int) *lp.LP[numeric.Mpq] {
	t.Helper()

	p := lp.New[numeric.Mpq]("identity", lp.Minimize)
	for i := 0; i < n; i++ {
		p.AddCol(numeric.MpqFromInt64(0, 1), numeric.MpqFromInt64(0, 1), numeric.MpqPosInf())
	}

	rowbeg := make([]int, n)
	rowind := make([]int, n)
	rowval := make([]numeric.Mpq, n)
	rhs := make([]numeric.Mpq, n)
	sense := make([]byte, n)
	rrange := make([]numeric.Mpq, n)
	for i := 0; i < n; i++ {
		rowbeg[i] = i
		rowind[i] = i
		rowval[i] = numeric.MpqFromInt64(1, 1)
		sense[i] = 'E'
	}
	require.NoError(t, p.AddRows(n, rowbeg, rowind, rowval, rhs, sense, rrange))
	return p
}

func allStructuralBasis(n int) *lp.Basis {
	cstat := make([]lp.Status, n)
	rstat := make([]lp.Status, n)
	for i := range rstat {
		rstat[i] = lp.Lower
	}
	return &lp.Basis{CStat: cstat, RStat: rstat, NStruct: n, NRows: n}
}

func requireIdentityFactorization(t *testing.T, f *Factorization, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := numeric.MpqFromInt64(0, 1)
			if i == j {
				want = numeric.MpqFromInt64(1, 1)
			}
			require.Equal(t, 0, f.L[i][j].Cmp(want), "L[%d][%d]", i, j)
			require.Equal(t, 0, f.U[i][j].Cmp(want), "U[%d][%d]", i, j)
		}
	}
}

func TestTryUpdate_NoMismatchIsNoOp(t *testing.T) {
	t.Parallel()

	p := buildIdentityLP(t, 20)
	basis := allStructuralBasis(20)

	c := NewCache()
	require.NoError(t, c.Load(p, basis))
	before := c.Factorization()

	require.NoError(t, c.TryUpdate(p, basis.Clone()))
	require.Same(t, before, c.Factorization())
}

// TestTryUpdate_SingleMismatchAtThresholdTakesIncrementalPath swaps out
// the last structural column for its row's logical, a single mismatched
// slot out of 20 (ratio == RefactorThreshold exactly, so TryUpdate must
// not fall back to a full Load). Because column 19's structural vector
// and row 19's logical vector are both e_19, the resulting basis matrix
// is unchanged — the whole computation (128-bit direction vector,
// splice, re-factor) can be hand-verified to reproduce the identity.
func TestTryUpdate_SingleMismatchAtThresholdTakesIncrementalPath(t *testing.T) {
	t.Parallel()

	p := buildIdentityLP(t, 20)
	oldBasis := allStructuralBasis(20)

	c := NewCache()
	require.NoError(t, c.Load(p, oldBasis))

	newBasis := oldBasis.Clone()
	newBasis.CStat[19] = lp.Lower
	newBasis.RStat[19] = lp.Basic

	require.NoError(t, c.TryUpdate(p, newBasis))

	f := c.Factorization()
	require.Equal(t, Factored, c.State())
	require.Equal(t, 20, f.N)
	wantBaz := append(identityPerm(19), p.NCols+19)
	require.Equal(t, wantBaz, f.Baz)
	requireIdentityFactorization(t, f, 20)
}

// TestTryUpdate_AboveThresholdFallsBackToFullLoad swaps two of twenty
// columns (10% mismatch, above the 5% threshold) and checks TryUpdate
// still lands on the correct factorization via the full-refactor path.
func TestTryUpdate_AboveThresholdFallsBackToFullLoad(t *testing.T) {
	t.Parallel()

	p := buildIdentityLP(t, 20)
	oldBasis := allStructuralBasis(20)

	c := NewCache()
	require.NoError(t, c.Load(p, oldBasis))

	newBasis := oldBasis.Clone()
	newBasis.CStat[18] = lp.Lower
	newBasis.RStat[18] = lp.Basic
	newBasis.CStat[19] = lp.Lower
	newBasis.RStat[19] = lp.Basic

	require.NoError(t, c.TryUpdate(p, newBasis))

	f := c.Factorization()
	wantBaz := append(identityPerm(18), p.NCols+18, p.NCols+19)
	require.Equal(t, wantBaz, f.Baz)
	requireIdentityFactorization(t, f, 20)
}

func TestTryUpdate_DimensionMismatchIsRejected(t *testing.T) {
	t.Parallel()

	p := buildIdentityLP(t, 20)
	basis := allStructuralBasis(20)

	c := NewCache()
	require.NoError(t, c.Load(p, basis))

	bad := &lp.Basis{
		CStat:   basis.CStat[:19],
		RStat:   basis.RStat,
		NStruct: 19,
		NRows:   20,
	}
	// bad.Validate() would itself fail the cardinality check (19 structural
	// slots cannot supply 20 basic entries), so TryUpdate is exercised
	// directly against the length mismatch it specifically checks for.
	require.Equal(t, 19, len(bad.CStat))
	err := c.TryUpdate(p, bad)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}
