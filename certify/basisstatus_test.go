package certify_test

import (
	"testing"

	"github.com/katalvlaran/qsxact/certify"
	"github.com/katalvlaran/qsxact/lp"
	"github.com/katalvlaran/qsxact/lucache"
	"github.com/katalvlaran/qsxact/numeric"
	"github.com/stretchr/testify/require"
)

func TestBasisStatus_ReDerivesOptimal(t *testing.T) {
	t.Parallel()

	p := buildTrivialLP(t)
	basis := &lp.Basis{
		CStat:   []lp.Status{lp.Basic},
		RStat:   []lp.Status{lp.Upper},
		NStruct: 1,
		NRows:   1,
	}
	cache := lucache.NewCache()

	status, err := certify.BasisStatus(p, basis, cache)
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, status)
	require.NotNil(t, p.Solution)
	require.Equal(t, 0, p.Solution.Val.Cmp(numeric.MpqFromInt64(1, 1)))
	require.Equal(t, 0, p.Solution.X[0].Cmp(numeric.MpqFromInt64(1, 1)))
}

func TestBasisStatus_ReDerivesInfeasible(t *testing.T) {
	t.Parallel()

	p := buildInfeasibleLP(t)
	basis := &lp.Basis{
		CStat:   []lp.Status{lp.Upper},
		RStat:   []lp.Status{lp.Basic},
		NStruct: 1,
		NRows:   1,
	}
	cache := lucache.NewCache()

	status, err := certify.BasisStatus(p, basis, cache)
	require.NoError(t, err)
	require.Equal(t, lp.Infeasible, status)
	require.NotNil(t, p.Solution)
	require.Equal(t, lp.Infeasible, p.Solution.Status)
}

func TestBasisStatus_NeitherOptimalNorInfeasibleIsUnsolved(t *testing.T) {
	t.Parallel()

	// Primal feasible (x=2 sits inside [0,+inf)) but the nonbasic
	// logical's reduced cost has the wrong sign for a minimization at
	// its LOWER bound: not a certifiable basis either way.
	p := buildTrivialLP(t)
	basis := &lp.Basis{
		CStat:   []lp.Status{lp.Basic},
		RStat:   []lp.Status{lp.Lower},
		NStruct: 1,
		NRows:   1,
	}
	cache := lucache.NewCache()

	status, err := certify.BasisStatus(p, basis, cache)
	require.NoError(t, err)
	require.Equal(t, lp.Unsolved, status)
}

func TestBasisStatus_RejectsInvalidBasis(t *testing.T) {
	t.Parallel()

	p := buildTrivialLP(t)
	basis := &lp.Basis{
		CStat:   []lp.Status{lp.Lower},
		RStat:   []lp.Status{lp.Lower},
		NStruct: 1,
		NRows:   1,
	}
	cache := lucache.NewCache()

	_, err := certify.BasisStatus(p, basis, cache)
	require.ErrorIs(t, err, certify.ErrCertifierRejection)
}

func TestBasisStatus_ReusesCacheAcrossCalls(t *testing.T) {
	t.Parallel()

	p := buildTrivialLP(t)
	basis := &lp.Basis{
		CStat:   []lp.Status{lp.Basic},
		RStat:   []lp.Status{lp.Upper},
		NStruct: 1,
		NRows:   1,
	}
	cache := lucache.NewCache()

	_, err := certify.BasisStatus(p, basis, cache)
	require.NoError(t, err)

	// A second call against the same basis should hit TryUpdate's
	// incremental path inside cache.Ensure rather than a fresh Load, and
	// still reach the same verdict.
	status, err := certify.BasisStatus(p, basis, cache)
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, status)
}
