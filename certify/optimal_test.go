package certify_test

import (
	"testing"

	"github.com/katalvlaran/qsxact/certify"
	"github.com/katalvlaran/qsxact/lp"
	"github.com/katalvlaran/qsxact/numeric"
	"github.com/stretchr/testify/require"
)

// buildTrivialLP builds "min x subject to x >= 1, x <= 2" (scenario 1,
// §8): one structural column bounded [0,+inf), one G-sense row with
// range 1 giving the logical variable bounds [-1,0].
func buildTrivialLP(t *testing.T) *lp.LP[numeric.Mpq] {
	t.Helper()

	p := lp.New[numeric.Mpq]("trivial", lp.Minimize)
	p.AddCol(numeric.MpqFromInt64(1, 1), numeric.MpqFromInt64(0, 1), numeric.MpqPosInf())

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

func TestOptimal_TrivialLP(t *testing.T) {
	t.Parallel()

	p := buildTrivialLP(t)
	basis := &lp.Basis{
		CStat:   []lp.Status{lp.Basic},
		RStat:   []lp.Status{lp.Upper},
		NStruct: 1,
		NRows:   1,
	}
	x := []numeric.Mpq{numeric.MpqFromInt64(1, 1), numeric.MpqFromInt64(0, 1)}
	y := []numeric.Mpq{numeric.MpqFromInt64(1, 1)}

	cache, err := certify.Optimal(p, basis, x, y)
	require.NoError(t, err)
	require.Same(t, cache, p.Solution)
	require.Equal(t, lp.Optimal, p.Solution.Status)
	require.Equal(t, 0, p.Solution.Val.Cmp(numeric.MpqFromInt64(1, 1)))
	require.Equal(t, 0, p.Solution.X[0].Cmp(numeric.MpqFromInt64(1, 1)))
}

func TestOptimal_RejectsCandidateThatFailsRowBalance(t *testing.T) {
	t.Parallel()

	// x=5 for the basic structural column is not consistent with the
	// pinned logical's row balance: a realistic way an inexact round's
	// candidate can be wrong without tripping the simpler bound checks.
	p := buildTrivialLP(t)
	basis := &lp.Basis{
		CStat:   []lp.Status{lp.Basic},
		RStat:   []lp.Status{lp.Upper},
		NStruct: 1,
		NRows:   1,
	}
	x := []numeric.Mpq{numeric.MpqFromInt64(5, 1), numeric.MpqFromInt64(0, 1)}
	y := []numeric.Mpq{numeric.MpqFromInt64(1, 1)}

	_, err := certify.Optimal(p, basis, x, y)
	require.Error(t, err)
	var re *certify.RejectionError
	require.ErrorAs(t, err, &re)
	require.Equal(t, certify.BoundViolation, re.Kind)
}

func TestOptimal_RejectsWrongSignReducedCost(t *testing.T) {
	t.Parallel()

	p := buildTrivialLP(t)
	// logical pinned at its LOWER bound (-1) forces x=2, which is
	// feasible but not optimal for a minimization: the reduced cost at
	// that bound has the wrong sign, so this must be rejected.
	basis := &lp.Basis{
		CStat:   []lp.Status{lp.Basic},
		RStat:   []lp.Status{lp.Lower},
		NStruct: 1,
		NRows:   1,
	}
	x := []numeric.Mpq{numeric.MpqFromInt64(2, 1), numeric.MpqFromInt64(-1, 1)}
	y := []numeric.Mpq{numeric.MpqFromInt64(1, 1)}

	_, err := certify.Optimal(p, basis, x, y)
	require.Error(t, err)
	require.ErrorIs(t, err, certify.ErrCertifierRejection)
	var re *certify.RejectionError
	require.ErrorAs(t, err, &re)
	require.Equal(t, certify.ComplementarySlacknessViolation, re.Kind)
}

func TestOptimal_RejectsInvalidBasis(t *testing.T) {
	t.Parallel()

	p := buildTrivialLP(t)
	// Zero basic entries for a one-row LP fails the cardinality
	// invariant outright.
	basis := &lp.Basis{
		CStat:   []lp.Status{lp.Lower},
		RStat:   []lp.Status{lp.Lower},
		NStruct: 1,
		NRows:   1,
	}
	x := []numeric.Mpq{numeric.MpqFromInt64(0, 1), numeric.MpqFromInt64(0, 1)}
	y := []numeric.Mpq{numeric.MpqFromInt64(0, 1)}

	_, err := certify.Optimal(p, basis, x, y)
	require.ErrorIs(t, err, certify.ErrCertifierRejection)
	var re *certify.RejectionError
	require.ErrorAs(t, err, &re)
	require.Equal(t, certify.UnknownStatus, re.Kind)
}

func TestOptimal_RejectsMismatchedCandidateLength(t *testing.T) {
	t.Parallel()

	p := buildTrivialLP(t)
	basis := &lp.Basis{
		CStat:   []lp.Status{lp.Basic},
		RStat:   []lp.Status{lp.Upper},
		NStruct: 1,
		NRows:   1,
	}
	_, err := certify.Optimal(p, basis, []numeric.Mpq{numeric.MpqFromInt64(1, 1)}, nil)
	require.ErrorIs(t, err, certify.ErrCertifierRejection)
}
