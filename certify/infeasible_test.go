package certify_test

import (
	"testing"

	"github.com/katalvlaran/qsxact/certify"
	"github.com/katalvlaran/qsxact/lp"
	"github.com/katalvlaran/qsxact/numeric"
	"github.com/stretchr/testify/require"
)

// buildInfeasibleLP builds "min x subject to x == 0, x >= 1" (scenario 2,
// §8): the structural column is fixed at 0 but the row demands x >= 1, so
// no feasible point exists.
func buildInfeasibleLP(t *testing.T) *lp.LP[numeric.Mpq] {
	t.Helper()

	p := lp.New[numeric.Mpq]("infeasible", lp.Minimize)
	zero := numeric.MpqFromInt64(0, 1)
	p.AddCol(numeric.MpqFromInt64(1, 1), zero, zero)

	err := p.AddRows(1,
		[]int{0},
		[]int{0},
		[]numeric.Mpq{numeric.MpqFromInt64(1, 1)},
		[]numeric.Mpq{numeric.MpqFromInt64(1, 1)},
		[]byte{'G'},
		[]numeric.Mpq{numeric.MpqFromInt64(1, 1)},
	)
	require.NoError(t, err)
	return p
}

func TestInfeasible_TrivialContradiction(t *testing.T) {
	t.Parallel()

	p := buildInfeasibleLP(t)
	y := []numeric.Mpq{numeric.MpqFromInt64(1, 1)}

	require.NoError(t, certify.Infeasible(p, y))
	require.NotNil(t, p.Solution)
	require.Equal(t, lp.Infeasible, p.Solution.Status)
}

func TestInfeasible_RejectsNonCertifyingRay(t *testing.T) {
	t.Parallel()

	// The LP is feasible (x can be anything in [1, 2]), so no ray can
	// legitimately certify infeasibility; the zero ray in particular
	// gives a dual objective of exactly 0, which fails the strict
	// positivity requirement outright.
	p := lp.New[numeric.Mpq]("feasible", lp.Minimize)
	p.AddCol(numeric.MpqFromInt64(1, 1), numeric.MpqFromInt64(0, 1), numeric.MpqPosInf())
	require.NoError(t, p.AddRows(1,
		[]int{0},
		[]int{0},
		[]numeric.Mpq{numeric.MpqFromInt64(1, 1)},
		[]numeric.Mpq{numeric.MpqFromInt64(1, 1)},
		[]byte{'G'},
		[]numeric.Mpq{numeric.MpqFromInt64(1, 1)},
	))

	y := []numeric.Mpq{numeric.MpqFromInt64(0, 1)}
	err := certify.Infeasible(p, y)
	require.Error(t, err)
	var re *certify.RejectionError
	require.ErrorAs(t, err, &re)
	require.Equal(t, certify.InfeasibleRow, re.Kind)
}

// TestInfeasible_UnusedUnboundedColumnNotRejected exercises §8's boundary
// property directly: a column with upper = +infinity whose implied
// multiplier (dl, and here also du) comes out to 0 must not be rejected
// merely for carrying an infinite bound — the boundedness check only
// fires when that column's multiplier is actually nonzero.
func TestInfeasible_UnusedUnboundedColumnNotRejected(t *testing.T) {
	t.Parallel()

	p := lp.New[numeric.Mpq]("infeasible-with-unbounded-col", lp.Minimize)
	zero := numeric.MpqFromInt64(0, 1)
	p.AddCol(numeric.MpqFromInt64(1, 1), zero, zero) // col 0: fixed at 0, forces the contradiction
	p.AddCol(zero, zero, numeric.MpqPosInf())        // col 1: unbounded above, absent from every row

	err := p.AddRows(1,
		[]int{0},
		[]int{0},
		[]numeric.Mpq{numeric.MpqFromInt64(1, 1)},
		[]numeric.Mpq{numeric.MpqFromInt64(1, 1)},
		[]byte{'G'},
		[]numeric.Mpq{numeric.MpqFromInt64(1, 1)},
	)
	require.NoError(t, err)

	y := []numeric.Mpq{numeric.MpqFromInt64(1, 1)}
	require.NoError(t, certify.Infeasible(p, y))
	require.NotNil(t, p.Solution)
	require.Equal(t, lp.Infeasible, p.Solution.Status)
}

func TestInfeasible_RejectsMismatchedCandidateLength(t *testing.T) {
	t.Parallel()

	p := buildInfeasibleLP(t)
	err := certify.Infeasible(p, nil)
	require.ErrorIs(t, err, certify.ErrCertifierRejection)
}
