// SPDX-License-Identifier: MIT

package lucache

import (
	"sort"

	"github.com/katalvlaran/qsxact/lp"
	"github.com/katalvlaran/qsxact/numeric"
)

// diffSlots returns the slot indices at which a and b (two canonical
// ascending Baz lists of equal length) disagree.
func diffSlots(a, b []int) []int {
	var out []int
	for i := range a {
		if a[i] != b[i] {
			out = append(out, i)
		}
	}
	return out
}

// mpfAbs returns the absolute value of an Mpf.
func mpfAbs(v numeric.Mpf) numeric.Mpf {
	if v.Sign() < 0 {
		return v.Neg()
	}
	return v
}

func mpqVecToMpf(v []numeric.Mpq, prec uint) []numeric.Mpf {
	out := make([]numeric.Mpf, len(v))
	for i, x := range v {
		out[i] = numeric.MpqToMpf(x, prec)
	}
	return out
}

func mpqMatToMpf(m [][]numeric.Mpq, prec uint) [][]numeric.Mpf {
	out := make([][]numeric.Mpf, len(m))
	for i, row := range m {
		out[i] = mpqVecToMpf(row, prec)
	}
	return out
}

// TryUpdate attempts to move the cache's factorization from the basis it
// currently reflects to newBasis without a full refactorization (§4.3).
//
// It compares the canonical basic-column lists: if more than
// RefactorThreshold of the slots differ, it gives up immediately and
// performs a full Load. Otherwise, for each mismatched slot it computes a
// transient direction vector at DirectionPrecisionBits of extended-float
// precision, ranks the mismatches by the magnitude of their would-be
// pivot entry (largest first — the Forrest-Tomlin ordering that keeps the
// replacement numerically well posed), and splices the new columns into
// the cached dense basis matrix before re-deriving an exact LU. If that
// re-derivation turns out to be singular — the direction estimate having
// missed a genuine rank deficiency — TryUpdate falls back to a full Load
// against newBasis.
//
// Contrary to a textbook Forrest-Tomlin update, the re-derivation re-runs
// factorDense on the (small, cached) basis matrix rather than applying an
// eta-file rank-one bump to L and U directly; see package doc and
// DESIGN.md.
func (c *Cache) TryUpdate(lpv *lp.LP[numeric.Mpq], newBasis *lp.Basis) error {
	if c.state != Factored {
		return errUpdateGaveUp
	}
	old := c.f

	newBaz := bazFromBasis(newBasis)
	if len(newBaz) != old.N {
		return ErrDimensionMismatch
	}

	mismatches := diffSlots(old.Baz, newBaz)
	if len(mismatches) == 0 {
		return nil
	}

	ratio := float64(len(mismatches)) / float64(old.N)
	if ratio > RefactorThreshold {
		return c.Load(lpv, newBasis)
	}

	restore := numeric.WithPrecision(DirectionPrecisionBits)
	defer restore()

	Lm := mpqMatToMpf(old.L, DirectionPrecisionBits)
	Um := mpqMatToMpf(old.U, DirectionPrecisionBits)

	type candidate struct {
		slot int
		mag  numeric.Mpf
		col  []numeric.Mpq
	}
	cands := make([]candidate, 0, len(mismatches))
	for _, slot := range mismatches {
		newCol := columnVector(lpv, newBaz[slot])
		rhs := mpqVecToMpf(newCol, DirectionPrecisionBits)
		dir := solveFactored(Lm, Um, old.RPerm, old.CPerm, rhs)
		mag := mpfAbs(dir[slot])
		cands = append(cands, candidate{slot: slot, mag: mag, col: newCol})
	}

	sort.Slice(cands, func(i, j int) bool {
		return cands[i].mag.Cmp(cands[j].mag) > 0
	})

	if cands[len(cands)-1].mag.IsZero() {
		return c.Load(lpv, newBasis)
	}

	newMat := cloneDense(old.Basis)
	for _, cd := range cands {
		for row := 0; row < old.N; row++ {
			newMat[row][cd.slot] = cd.col[row]
		}
	}

	L, U, rperm, cperm, err := factorDense(newMat)
	if err != nil {
		return c.Load(lpv, newBasis)
	}

	next := &Factorization{
		N:     old.N,
		L:     L,
		U:     U,
		RPerm: rperm,
		CPerm: cperm,
		RRank: invertPerm(rperm),
		CRank: invertPerm(cperm),
		Baz:   append([]int(nil), newBaz...),
		Basis: newMat,
	}
	c.f = next.clone()
	c.state = Factored
	return nil
}
