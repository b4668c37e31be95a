// SPDX-License-Identifier: MIT

package driver

import (
	"github.com/katalvlaran/qsxact/certify"
	"github.com/katalvlaran/qsxact/lp"
	"github.com/katalvlaran/qsxact/lucache"
	"github.com/katalvlaran/qsxact/numeric"
	"github.com/katalvlaran/qsxact/simplex"
)

// precisionSchedule is a pure function of the round index, independently
// testable without running any simplex or certification machinery: round
// 0 is always Dbl; every later round uses Mpf at InitialPrecisionBits
// multiplied by GrowthFactor once per further round, each step rounded up
// to a whole bit count, capped at MaxPrecisionBits (§4.5).
func precisionSchedule(round int, opts *Options) (isDbl bool, bits uint) {
	if round == 0 {
		return true, 0
	}
	bits = opts.InitialPrecisionBits
	for i := 1; i < round; i++ {
		next := float64(bits) * opts.GrowthFactor
		bits = uint(next)
		if float64(bits) < next {
			bits++
		}
	}
	if bits > opts.MaxPrecisionBits {
		bits = opts.MaxPrecisionBits
	}
	return false, bits
}

func roundBitsOrZero(isDbl bool, bits uint) uint {
	if isDbl {
		return 0
	}
	return bits
}

func liftDblSlice(in []numeric.Dbl) []numeric.Mpq {
	out := make([]numeric.Mpq, len(in))
	for i, v := range in {
		out[i] = numeric.DblToMpq(v)
	}
	return out
}

func liftMpfSlice(in []numeric.Mpf) []numeric.Mpq {
	out := make([]numeric.Mpq, len(in))
	for i, v := range in {
		out[i] = numeric.MpfToMpq(v)
	}
	return out
}

// firstViolatedRow returns the index of the first nonzero entry in a
// lifted InfeasArray, or -1 if every row is satisfied.
func firstViolatedRow(infeas []numeric.Mpq) int {
	for i, v := range infeas {
		if !v.IsZero() {
			return i
		}
	}
	return -1
}

// degenerateSolve handles the zero-row and zero-column boundary case
// directly (§8: "Zero-row or zero-column LP: degenerate solve, cache
// populated with empty arrays"): with no rows, every structural column is
// independently optimized against its own bound and there is no basic
// block to solve for; with no columns, every row's logical is forced
// BASIC and the "solve" is just checking each row's own rhs against its
// logical's bounds.
//
// This does not attempt to detect true unboundedness — a structural
// column whose cost-improving bound is the infinity sentinel is reported
// optimal at that sentinel rather than UNBOUNDED, consistent with this
// package's round loop also leaving UNBOUNDED unhandled and propagated.
func degenerateSolve(rational *lp.LP[numeric.Mpq]) (Result, error) {
	n := rational.NStructPlusLogical()
	basis := &lp.Basis{
		CStat:   make([]lp.Status, rational.NCols),
		RStat:   make([]lp.Status, rational.NRows),
		NStruct: rational.NCols,
		NRows:   rational.NRows,
	}

	sign := rational.Sense.SignFor()
	x := make([]numeric.Mpq, n)
	for col := 0; col < rational.NCols; col++ {
		lower, upper := rational.Lower[col], rational.Upper[col]
		if sign*rational.Obj[col].Sign() >= 0 {
			basis.CStat[col] = lp.Lower
			x[col] = lower
		} else {
			basis.CStat[col] = lp.Upper
			x[col] = upper
		}
	}
	for r := range basis.RStat {
		basis.RStat[r] = lp.Basic
	}

	if err := rational.LoadBasis(basis); err != nil {
		return Result{}, err
	}

	y := make([]numeric.Mpq, rational.NRows)
	if _, err := certify.Optimal(rational, basis, x, y); err != nil {
		return Result{}, err
	}
	return Result{Status: lp.Optimal, Rounds: 0}, nil
}

// Solve runs the precision-escalation loop (§4.5) against rational,
// returning once certify accepts a round's basis as OPTIMAL or
// INFEASIBLE, the LP's own OBJ_LIMIT parameters short-circuit a round, a
// round's solver reports UNBOUNDED (returned as is, uncertified), or
// opts.MaxRounds is exhausted (Status UNSOLVED with ErrRoundsExhausted).
//
// On a certified result, rational.Solution is populated (by package
// certify) and Solve returns nil. On ObjLimit, rational.Basis reflects
// the round's basis but rational.Solution is left nil: ObjLimit is a
// scheduling decision ("stop looking, we've proven the objective crosses
// the configured limit"), not a claim this package certifies further.
func Solve(rational *lp.LP[numeric.Mpq], opts *Options) (Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if rational.NRows == 0 || rational.NCols == 0 {
		return degenerateSolve(rational)
	}

	// The LUCache used by the basis-status fallback survives across
	// rounds within this one Solve invocation (§5), so that TryUpdate's
	// incremental path (rather than a full refactor) can fire on rounds
	// that only lightly perturb the previous round's basis.
	cache := lucache.NewCache()

	var prevBasis *lp.Basis
	prevStatus := lp.Unsolved
	hints := make([]AlgoHint, 0, opts.MaxRounds)

	for round := 0; round < opts.MaxRounds; round++ {
		isDbl, bits := precisionSchedule(round, opts)

		algo, hint := simplex.Primal, HintPrimal
		if prevBasis != nil && (prevStatus == lp.Optimal || prevStatus == lp.Infeasible) {
			algo, hint = simplex.Dual, HintDual
		}

		var status lp.StatusCode
		var basis *lp.Basis
		var objApprox float64
		var xCand, piCand, infeasCand []numeric.Mpq
		var err error

		if isDbl {
			working := lp.CopyMpqToDbl(rational, "driver-round-dbl")
			solver := simplex.NewReference[numeric.Dbl](opts.MaxSimplexIterations)
			if prevBasis != nil {
				if err := solver.LoadBasis(prevBasis); err != nil {
					return Result{}, err
				}
			}
			status, err = solver.Solve(working, algo)
			basis = solver.Basis()
			objApprox = dotDbl(working.Obj, solver.XArray())
			xCand = liftDblSlice(solver.XArray())
			piCand = liftDblSlice(solver.PiArray())
			infeasCand = liftDblSlice(solver.InfeasArray())
		} else {
			restore := numeric.WithPrecision(bits)
			working := lp.CopyMpqToMpf(rational, "driver-round-mpf")
			solver := simplex.NewReference[numeric.Mpf](opts.MaxSimplexIterations)
			if prevBasis != nil {
				if err := solver.LoadBasis(prevBasis); err != nil {
					restore()
					return Result{}, err
				}
			}
			status, err = solver.Solve(working, algo)
			basis = solver.Basis()
			objApprox = dotMpf(working.Obj, solver.XArray())
			xCand = liftMpfSlice(solver.XArray())
			piCand = liftMpfSlice(solver.PiArray())
			infeasCand = liftMpfSlice(solver.InfeasArray())
			restore()
		}

		if err != nil {
			return Result{}, err
		}
		hints = append(hints, hint)
		prevBasis, prevStatus = basis, status

		if status == lp.Unbounded {
			return Result{Status: lp.Unbounded, Rounds: round + 1, FinalBits: roundBitsOrZero(isDbl, bits), AlgoPerRound: hints}, nil
		}
		if status != lp.Optimal && status != lp.Infeasible {
			continue
		}

		if status == lp.Optimal && objLimitHit(rational, objApprox) {
			_ = rational.LoadBasis(basis)
			return Result{Status: lp.ObjLimit, Rounds: round + 1, FinalBits: roundBitsOrZero(isDbl, bits), AlgoPerRound: hints}, nil
		}

		if err := rational.LoadBasis(basis); err != nil {
			continue
		}

		if status == lp.Optimal {
			xFull := make([]numeric.Mpq, rational.NStructPlusLogical())
			copy(xFull, xCand) // logical entries are overwritten or ignored by Optimal's own projection
			if _, certErr := certify.Optimal(rational, basis, xFull, piCand); certErr == nil {
				return Result{Status: lp.Optimal, Rounds: round + 1, FinalBits: roundBitsOrZero(isDbl, bits), AlgoPerRound: hints}, nil
			}
			if bsStatus, bsErr := certify.BasisStatus(rational, basis, cache); bsErr == nil && bsStatus == lp.Optimal {
				return Result{Status: lp.Optimal, Rounds: round + 1, FinalBits: roundBitsOrZero(isDbl, bits), AlgoPerRound: hints}, nil
			}
			continue
		}

		// status == lp.Infeasible: try a ray built from the violated row
		// InfeasArray names, then the raw dual candidate, before falling
		// back to the basis-status verifier.
		if violRow := firstViolatedRow(infeasCand); violRow >= 0 {
			if err := cache.Ensure(rational, basis); err == nil {
				ek := make([]numeric.Mpq, rational.NRows)
				ek[violRow] = numeric.MpqFromInt64(1, 1)
				yHint := cache.Factorization().SolveTranspose(ek)
				if certify.Infeasible(rational, yHint) == nil {
					return Result{Status: lp.Infeasible, Rounds: round + 1, FinalBits: roundBitsOrZero(isDbl, bits), AlgoPerRound: hints}, nil
				}
			}
		}
		if certify.Infeasible(rational, piCand) == nil {
			return Result{Status: lp.Infeasible, Rounds: round + 1, FinalBits: roundBitsOrZero(isDbl, bits), AlgoPerRound: hints}, nil
		}
		if bsStatus, bsErr := certify.BasisStatus(rational, basis, cache); bsErr == nil && bsStatus == lp.Infeasible {
			return Result{Status: lp.Infeasible, Rounds: round + 1, FinalBits: roundBitsOrZero(isDbl, bits), AlgoPerRound: hints}, nil
		}
		// Rejected at every level: the round's basis does not actually
		// certify at exact precision. Escalate and retry.
	}

	return Result{Status: lp.Unsolved, Rounds: opts.MaxRounds, AlgoPerRound: hints}, ErrRoundsExhausted
}

func objLimitHit(rational *lp.LP[numeric.Mpq], approxObj float64) bool {
	u, errU := rational.GetFloatParam(lp.ObjULimParam)
	l, errL := rational.GetFloatParam(lp.ObjLLimParam)
	if errU == nil && approxObj > u {
		return true
	}
	if errL == nil && approxObj < l {
		return true
	}
	return false
}

func dotDbl(obj, x []numeric.Dbl) float64 {
	var sum numeric.Dbl
	for i := range x {
		sum = sum.Add(obj[i].Mul(x[i]))
	}
	return float64(sum)
}

func dotMpf(obj, x []numeric.Mpf) float64 {
	var sum numeric.Mpf
	for i := range x {
		sum = sum.Add(obj[i].Mul(x[i]))
	}
	f, _ := sum.Float().Float64()
	return f
}
