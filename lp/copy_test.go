package lp_test

import (
	"testing"

	"github.com/katalvlaran/qsxact/lp"
	"github.com/katalvlaran/qsxact/numeric"
	"github.com/stretchr/testify/require"
)

func TestCopyMpqToDblAndBack_PreservesStructure(t *testing.T) {
	t.Parallel()

	src := buildTrivialLP(t)

	dbl := lp.CopyMpqToDbl(src, "dbl_copy")
	require.Equal(t, src.NCols, dbl.NCols)
	require.Equal(t, src.NRows, dbl.NRows)
	require.Equal(t, src.Sense, dbl.Sense)
	require.Equal(t, src.A.Beg, dbl.A.Beg)
	require.Equal(t, src.A.Cnt, dbl.A.Cnt)
	require.Equal(t, src.A.Ind, dbl.A.Ind)

	back := lp.CopyDblToMpq(dbl, "back")
	require.Equal(t, src.NCols, back.NCols)
	require.Equal(t, src.NRows, back.NRows)
	for i := range src.Lower {
		require.Equal(t, 0, src.Lower[i].Cmp(back.Lower[i]))
	}
}

func TestCopyMpqToMpfAndBack_WithinPrecisionBound(t *testing.T) {
	t.Parallel()
	defer numeric.WithPrecision(128)()

	src := lp.New[numeric.Mpq]("third", lp.Minimize)
	src.AddCol(numeric.MpqFromInt64(1, 1), numeric.MpqFromInt64(1, 3), numeric.MpqFromInt64(2, 3))

	mpf := lp.CopyMpqToMpf(src, "mpf_copy")
	back := lp.CopyMpfToMpq(mpf, "back")

	diff := src.Lower[0].Sub(back.Lower[0])
	if diff.Sign() < 0 {
		diff = diff.Neg()
	}
	require.True(t, diff.Cmp(numeric.MpqFromInt64(1, 1<<30)) < 0)
}
