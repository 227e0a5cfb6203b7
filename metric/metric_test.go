package metric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/metric"
)

// TestDistances covers the three built-in norms on a 3-4-5 triangle.
func TestDistances(t *testing.T) {
	a := []float64{0, 0}
	b := []float64{3, 4}

	assert.InDelta(t, 5.0, metric.Euclidean(a, b), 1e-12)
	assert.InDelta(t, 7.0, metric.Manhattan(a, b), 1e-12)
	assert.InDelta(t, 4.0, metric.Chebyshev(a, b), 1e-12)

	for _, name := range []string{"euclidean", "Manhattan", "LINF"} {
		fn, ok := metric.ByName(name)
		require.True(t, ok, name)
		assert.NotNil(t, fn)
	}
	_, ok := metric.ByName("cosine")
	assert.False(t, ok)
}

// TestPairwise_SymmetricZeroDiagonal verifies the matrix contract.
func TestPairwise_SymmetricZeroDiagonal(t *testing.T) {
	pts := [][]float64{{0, 0}, {1, 0}, {0, 2}}
	m, err := metric.Pairwise(pts, nil)
	require.NoError(t, err)
	require.Equal(t, 3, m.N())

	for i := 0; i < 3; i++ {
		d, err := m.At(i, i)
		require.NoError(t, err)
		assert.Zero(t, d)
		for j := 0; j < 3; j++ {
			assert.Equal(t, m.MustAt(i, j), m.MustAt(j, i))
		}
	}
	assert.InDelta(t, math.Sqrt(5), m.MustAt(1, 2), 1e-12)
	assert.InDelta(t, math.Sqrt(5), m.Max(), 1e-12)

	row, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, row)
}

// TestPairwise_Errors covers ragged input, NaN coordinates and bad distance functions.
func TestPairwise_Errors(t *testing.T) {
	_, err := metric.Pairwise([][]float64{{0, 0}, {1}}, metric.Euclidean)
	assert.ErrorIs(t, err, metric.ErrDimensionMismatch)

	_, err = metric.Pairwise([][]float64{{0}, {math.NaN()}}, metric.Euclidean)
	assert.ErrorIs(t, err, metric.ErrNaNInf)

	neg := func(a, b []float64) float64 { return -1 }
	_, err = metric.Pairwise([][]float64{{0}, {1}}, neg)
	assert.ErrorIs(t, err, metric.ErrNegativeDistance)
}

// TestPairwise_Empty allows the empty point cloud.
func TestPairwise_Empty(t *testing.T) {
	m, err := metric.Pairwise(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, m.N())
	assert.Zero(t, m.Max())
}

// TestMatrix_Bounds checks index errors instead of panics.
func TestMatrix_Bounds(t *testing.T) {
	m := metric.NewMatrix(2)
	_, err := m.At(2, 0)
	assert.ErrorIs(t, err, metric.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), metric.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(1, 1, 1), metric.ErrNonZeroDiagonal)
	assert.ErrorIs(t, m.Set(0, 1, math.Inf(1)), metric.ErrNaNInf)
	_, err = m.Row(5)
	assert.ErrorIs(t, err, metric.ErrOutOfRange)

	require.NoError(t, m.Set(0, 1, 2.5))
	assert.Equal(t, "[0, 2.5]\n[2.5, 0]\n", m.String())
}

// TestFromRows validates precomputed matrices.
func TestFromRows(t *testing.T) {
	m, err := metric.FromRows([][]float64{{0, 1}, {1, 0}}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.MustAt(1, 0))

	_, err = metric.FromRows([][]float64{{0, 1}, {2, 0}}, 1e-9)
	assert.ErrorIs(t, err, metric.ErrAsymmetry)

	_, err = metric.FromRows([][]float64{{1, 1}, {1, 0}}, 1e-9)
	assert.ErrorIs(t, err, metric.ErrNonZeroDiagonal)

	_, err = metric.FromRows([][]float64{{0, 1}}, 0)
	assert.ErrorIs(t, err, metric.ErrDimensionMismatch)

	_, err = metric.FromRows([][]float64{{0, -1}, {-1, 0}}, 0)
	assert.ErrorIs(t, err, metric.ErrNegativeDistance)
}
