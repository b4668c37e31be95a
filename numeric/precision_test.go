package numeric_test

import (
	"testing"

	"github.com/katalvlaran/qsxact/numeric"
	"github.com/stretchr/testify/require"
)

func TestWithPrecision_RestoresOnRelease(t *testing.T) {
	before := numeric.Precision()

	restore := numeric.WithPrecision(256)
	require.Equal(t, uint(256), numeric.Precision())
	restore()

	require.Equal(t, before, numeric.Precision())
}

func TestWithPrecision_ZeroPanics(t *testing.T) {
	require.Panics(t, func() { numeric.WithPrecision(0) })
}
