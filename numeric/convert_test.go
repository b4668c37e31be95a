package numeric_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/qsxact/numeric"
	"github.com/stretchr/testify/require"
)

func TestMpqToMpfToMpq_NoSilentLossyPromotion(t *testing.T) {
	t.Parallel()

	cases := []numeric.Mpq{
		numeric.MpqFromInt64(1, 3),
		numeric.MpqFromInt64(2, 3),
		numeric.MpqFromInt64(-7, 11),
		numeric.MpqFromInt64(355, 113),
	}
	const prec = 128

	for _, m := range cases {
		mf := numeric.MpqToMpf(m, prec)
		back := numeric.MpfToMpq(mf)

		diff := new(big.Rat).Sub(m.Rat(), back.Rat())
		diff.Abs(diff)

		bound := new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), prec))
		require.True(t, diff.Cmp(bound) <= 0, "round trip %s -> mpf -> %s exceeds 2^-%d", m, back, prec)
	}
}

func TestDblToMpq_Exact(t *testing.T) {
	t.Parallel()

	for _, d := range []numeric.Dbl{0, 1, -1, 0.5, 3.25, numeric.Dbl(math.Pi)} {
		m := numeric.DblToMpq(d)
		back := numeric.MpqToDbl(m)
		require.Equal(t, d, back)
	}
}

func TestMpqInfinitySentinel(t *testing.T) {
	t.Parallel()

	require.True(t, numeric.MpqIsPosInf(numeric.MpqPosInf()))
	require.True(t, numeric.MpqIsNegInf(numeric.MpqNegInf()))
	require.False(t, numeric.MpqIsPosInf(numeric.MpqFromInt64(5, 1)))
}
