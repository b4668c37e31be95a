package driver

import (
	"testing"

	"github.com/katalvlaran/qsxact/lp"
	"github.com/katalvlaran/qsxact/numeric"
	"github.com/stretchr/testify/require"
)

func TestPrecisionSchedule_RoundZeroIsDbl(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	isDbl, bits := precisionSchedule(0, opts)
	require.True(t, isDbl)
	require.Equal(t, uint(0), bits)
}

func TestPrecisionSchedule_GrowsAndCaps(t *testing.T) {
	t.Parallel()

	opts := &Options{InitialPrecisionBits: 128, GrowthFactor: 1.5, MaxPrecisionBits: 300}

	_, b1 := precisionSchedule(1, opts)
	require.Equal(t, uint(128), b1)

	_, b2 := precisionSchedule(2, opts)
	require.Equal(t, uint(192), b2)

	_, b4 := precisionSchedule(4, opts)
	require.Equal(t, opts.MaxPrecisionBits, b4) // unclamped growth would reach 432
}

func buildTrivialRational(t *testing.T) *lp.LP[numeric.Mpq] {
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

func TestSolve_TrivialLPReachesCertifiedOptimal(t *testing.T) {
	t.Parallel()

	p := buildTrivialRational(t)
	res, err := Solve(p, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, res.Status)
	require.NotNil(t, p.Solution)
	require.Equal(t, 0, p.Solution.Val.Cmp(numeric.MpqFromInt64(1, 1)))
}

func TestSolve_ZeroRowLPDegenerateSolve(t *testing.T) {
	t.Parallel()

	p := lp.New[numeric.Mpq]("empty", lp.Minimize)
	p.AddCol(numeric.MpqFromInt64(1, 1), numeric.MpqFromInt64(3, 1), numeric.MpqFromInt64(5, 1))

	res, err := Solve(p, nil)
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, res.Status)
	require.NotNil(t, p.Solution)
	require.Equal(t, 0, p.Solution.Val.Cmp(numeric.MpqFromInt64(3, 1)))
	require.Equal(t, 0, p.Solution.X[0].Cmp(numeric.MpqFromInt64(3, 1)))
	require.Empty(t, p.Solution.Slack)
	require.Empty(t, p.Solution.Pi)
}

func TestSolve_ZeroColumnLPDegenerateSolve(t *testing.T) {
	t.Parallel()

	p := lp.New[numeric.Mpq]("nocols", lp.Minimize)
	require.NoError(t, p.AddRows(1,
		[]int{0},
		nil,
		nil,
		[]numeric.Mpq{numeric.MpqFromInt64(0, 1)},
		[]byte{'E'},
		[]numeric.Mpq{numeric.MpqFromInt64(0, 1)},
	))

	res, err := Solve(p, nil)
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, res.Status)
	require.NotNil(t, p.Solution)
	require.Empty(t, p.Solution.X)
}
