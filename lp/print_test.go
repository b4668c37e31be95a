package lp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/qsxact/lp"
	"github.com/katalvlaran/qsxact/numeric"
	"github.com/stretchr/testify/require"
)

func TestPrintSolution_OptimalShowsOnlyNonzero(t *testing.T) {
	t.Parallel()

	p := buildTrivialLP(t)
	p.ColNames[0] = "x"
	p.RowNames[0] = "c1"
	p.Solution = &lp.SolutionCache[numeric.Mpq]{
		Status: lp.Optimal,
		Val:    numeric.MpqFromInt64(1, 1),
		X:      []numeric.Mpq{numeric.MpqFromInt64(1, 1)},
		Rc:     []numeric.Mpq{numeric.MpqFromInt64(0, 1)},
		Pi:     []numeric.Mpq{numeric.MpqFromInt64(1, 1)},
		Slack:  []numeric.Mpq{numeric.MpqFromInt64(0, 1)},
	}

	var buf bytes.Buffer
	require.NoError(t, lp.PrintSolution(&buf, p))

	out := buf.String()
	require.Contains(t, out, "status OPTIMAL")
	require.Contains(t, out, "Value = 1")
	require.Contains(t, out, "x = 1")
	require.Contains(t, out, "c1 = 1")
	require.False(t, strings.Contains(out, "x = 0"))
}

func TestPrintSolution_NonOptimalOnlyStatusLine(t *testing.T) {
	t.Parallel()

	p := buildTrivialLP(t)
	p.Solution = &lp.SolutionCache[numeric.Mpq]{Status: lp.Infeasible}

	var buf bytes.Buffer
	require.NoError(t, lp.PrintSolution(&buf, p))
	require.Equal(t, "status INFEASIBLE\n", buf.String())
}
