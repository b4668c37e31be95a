// SPDX-License-Identifier: MIT

package lucache

import "github.com/katalvlaran/qsxact/numeric"

// RefactorThreshold is the mismatch fraction above which TryUpdate
// abandons incremental updates and refactors from scratch (§4.3).
const RefactorThreshold = 0.05

// DirectionPrecisionBits is the transient extended-float mantissa width
// used to compute each spike-update direction vector (§4.3 step 3).
const DirectionPrecisionBits = 128

// State is the LUCache state-machine position (§4.3).
type State int

const (
	Unfactored State = iota
	Factored
)

func (s State) String() string {
	if s == Factored {
		return "FACTORED"
	}
	return "UNFACTORED"
}

// Factorization is an LU decomposition of the basis matrix indexed by Baz
// (the full-column-space identifiers of the current basic columns, in
// slot order), satisfying Pr * Basis * Pc = L * U where Pr/Pc are the
// permutation matrices encoded by RPerm/CPerm (§3's CachedFactorization
// invariant).
//
// RPerm[i] is the original row index occupying factor-row i.
// CPerm[j] is the slot index (0..N-1, indexing Baz) occupying factor-column j.
// RRank/CRank are their inverses: RRank[origRow] = factor-row,
// CRank[slot] = factor-column.
type Factorization struct {
	N int

	L, U [][]numeric.Mpq

	RPerm, CPerm []int
	RRank, CRank []int

	Baz []int

	// Basis is the dense basis matrix these permutations/L/U factor,
	// columns in slot (Baz) order. Kept alongside L/U so TryUpdate can
	// splice in a replacement column and re-derive L/U (see update.go).
	Basis [][]numeric.Mpq
}

// clone returns a deep, independently-mutable copy.
func (f *Factorization) clone() *Factorization {
	out := &Factorization{
		N:     f.N,
		RPerm: append([]int(nil), f.RPerm...),
		CPerm: append([]int(nil), f.CPerm...),
		RRank: append([]int(nil), f.RRank...),
		CRank: append([]int(nil), f.CRank...),
		Baz:   append([]int(nil), f.Baz...),
	}
	out.L = cloneDense(f.L)
	out.U = cloneDense(f.U)
	out.Basis = cloneDense(f.Basis)
	return out
}

func cloneDense(m [][]numeric.Mpq) [][]numeric.Mpq {
	out := make([][]numeric.Mpq, len(m))
	for i, row := range m {
		out[i] = append([]numeric.Mpq(nil), row...)
	}
	return out
}

// Cache is the LUCache state-machine wrapper: UNFACTORED/FACTORED, plus
// Load and TryUpdate (§4.3).
type Cache struct {
	state State
	f     *Factorization
}

// NewCache returns an UNFACTORED cache.
func NewCache() *Cache {
	return &Cache{state: Unfactored}
}

// State reports the current state-machine position.
func (c *Cache) State() State { return c.state }

// Factorization returns a borrow of the current factorization, or nil if
// UNFACTORED. Callers must not mutate the returned value — Cache is its
// sole owner (the "LP is the sole owner of its optional caches" design
// note from §9, specialized to the cache's own internal factorization).
func (c *Cache) Factorization() *Factorization { return c.f }
