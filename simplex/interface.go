// SPDX-License-Identifier: MIT

package simplex

import (
	"github.com/katalvlaran/qsxact/lp"
	"github.com/katalvlaran/qsxact/numeric"
)

// Algo selects which family of pivot rule a Solver round should run.
type Algo int

const (
	// Primal starts from scratch (or from a dual-feasible warm start)
	// and restores primal feasibility while preserving dual feasibility
	// is not required — the usual cold-start algorithm.
	Primal Algo = iota
	// Dual starts from a primal-infeasible-but-dual-feasible basis (the
	// common case when the Driver re-solves after an objective-limit or
	// bound change against a basis the previous precision round already
	// produced) and restores primal feasibility while preserving dual
	// feasibility throughout.
	Dual
)

// Solver is the pivot-engine contract the Driver drives through a
// precision-escalation round (§4.2, §4.5). Implementations work in a
// single numeric flavor T — the Driver instantiates the reference
// implementation with numeric.Dbl and numeric.Mpf, since every round it is
// used for is approximate and re-certified afterward in exact rational
// arithmetic by package certify.
type Solver[T numeric.Num[T]] interface {
	// LoadBasis seeds the solver's starting point. A nil basis means
	// start cold (the all-slack basis).
	LoadBasis(b *lp.Basis) error

	// Solve runs algo to a terminal status: lp.Optimal, lp.Infeasible,
	// lp.Unbounded, or lp.IterLimit.
	Solve(lpv *lp.LP[T], algo Algo) (lp.StatusCode, error)

	// Status reports the status of the most recent Solve call.
	Status() lp.StatusCode

	// XArray returns the structural primal solution from the most
	// recent Solve call.
	XArray() []T
	// PiArray returns the per-row dual values.
	PiArray() []T
	// InfeasArray returns, for an Infeasible result, the per-row primal
	// infeasibility magnitude (0 for satisfied rows). The Driver reads
	// this to locate a violated row and build a Farkas-ray candidate for
	// certify.Infeasible, per §4.5's "extract the infeasibility dual ray"
	// step — it is not purely diagnostic.
	InfeasArray() []T

	// Basis returns the solver's current basis assignment.
	Basis() *lp.Basis
	// IterCount reports the number of pivots performed during the most
	// recent Solve call.
	IterCount() int
}
