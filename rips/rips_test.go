package rips_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/metric"
	"github.com/katalvlaran/lvtopo/persistence"
	"github.com/katalvlaran/lvtopo/rips"
	"github.com/katalvlaran/lvtopo/simplex"
)

var (
	triangle = [][]float64{{0, 0}, {1, 0}, {0.5, math.Sqrt(3) / 2}}
	square   = [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
)

// unit makes every pair of distinct points exactly 1 apart.
func unit(_, _ []float64) float64 { return 1 }

func intervals(t *testing.T, b *rips.Builder, maxSize int, opts ...persistence.Option) [][]persistence.Interval {
	t.Helper()
	c, err := b.ComputeSkeleton(maxSize)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	eng, err := persistence.New(c, opts...)
	require.NoError(t, err)
	eng.ComputeIntervals()
	all, err := eng.AllIntervals()
	require.NoError(t, err)

	return all
}

// TestEquilateralTriangle is the three-point scenario with exact distances.
func TestEquilateralTriangle(t *testing.T) {
	b, err := rips.New(triangle, rips.WithDistance(unit), rips.WithThreshold(1.5))
	require.NoError(t, err)

	c, err := b.ComputeSkeleton(3)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Len())
	assert.Equal(t, 1.0, c.Degree(simplex.MustNew(0, 1, 2)))

	all := intervals(t, b, 3)
	require.Len(t, all, 3)
	assert.Equal(t, []persistence.Interval{{Birth: 0, Death: 1}, {Birth: 0, Death: 1}, {Birth: 0, Death: persistence.Infinity}}, all[0])
	assert.Equal(t, []persistence.Interval{{Birth: 1, Death: 1}}, all[1])
	assert.Empty(t, all[2])
}

// TestEquilateralTriangle_Euclidean runs the same scenario on real coordinates.
func TestEquilateralTriangle_Euclidean(t *testing.T) {
	b, err := rips.New(triangle, rips.WithThreshold(1.5))
	require.NoError(t, err)

	all := intervals(t, b, 3)
	require.Len(t, all[1], 1)
	assert.InDelta(t, 1.0, all[1][0].Birth, 1e-9)
	assert.Equal(t, all[1][0].Birth, all[1][0].Death, "the triangle kills the loop at once")

	essential := 0
	for _, iv := range all[0] {
		if iv.IsEssential() {
			essential++
		}
	}
	assert.Equal(t, 1, essential)
}

// TestZeroThreshold admits no edge at all.
func TestZeroThreshold(t *testing.T) {
	b, err := rips.New(square, rips.WithThreshold(0))
	require.NoError(t, err)
	assert.Zero(t, b.Threshold())
	assert.Empty(t, b.Edges())

	c, err := b.ComputeSkeleton(0)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, 0, c.DimensionBound())
}

// TestSquare_LoopLivesUntilDiagonals checks the one non-trivial H1 class.
func TestSquare_LoopLivesUntilDiagonals(t *testing.T) {
	open, err := rips.New(square, rips.WithThreshold(1.1))
	require.NoError(t, err)
	all := intervals(t, open, 0, persistence.WithStrict())
	require.Len(t, all, 2, "no triangle without diagonals")
	assert.Equal(t, []persistence.Interval{{Birth: 1, Death: persistence.Infinity}}, all[1])

	full, err := rips.New(square, rips.WithThreshold(1.5))
	require.NoError(t, err)
	all = intervals(t, full, 0, persistence.WithStrict())
	require.Len(t, all, 4, "the full tetrahedron is reached")
	require.Len(t, all[1], 1)
	assert.Equal(t, 1.0, all[1][0].Birth)
	assert.InDelta(t, math.Sqrt2, all[1][0].Death, 1e-12)
	assert.Empty(t, all[2])
	assert.Empty(t, all[3])
}

// TestComputeSkeleton_FullSimplex expects every subset of five close points.
func TestComputeSkeleton_FullSimplex(t *testing.T) {
	pts := [][]float64{{0}, {0.1}, {0.2}, {0.3}, {0.4}}
	b, err := rips.New(pts)
	require.NoError(t, err)
	assert.InDelta(t, 1.4, b.Threshold(), 1e-12, "default is 1 + max distance")

	c, err := b.ComputeSkeleton(0)
	require.NoError(t, err)
	assert.Equal(t, 31, c.Len())
	assert.InDelta(t, 0.4, c.Degree(simplex.MustNew(0, 1, 2, 3, 4)), 1e-12)
	assert.InDelta(t, 0.2, c.Degree(simplex.MustNew(1, 2, 3)), 1e-12)

	c, err = b.ComputeSkeleton(3)
	require.NoError(t, err)
	assert.Equal(t, 5+10+10, c.Len())

	c, err = b.ComputeSkeleton(1)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Len())
}

// TestDegreeIsDiameter compares each simplex degree with its largest edge.
func TestDegreeIsDiameter(t *testing.T) {
	pts := [][]float64{{0, 0}, {2, 0}, {1, 1.5}, {3, 1}, {1.5, 3}, {0, 2.5}}
	b, err := rips.New(pts, rips.WithThreshold(3))
	require.NoError(t, err)
	c, err := b.ComputeSkeleton(4)
	require.NoError(t, err)

	d := b.Distances()
	for _, e := range c.Entries() {
		vs := e.Simplex.Vertices()
		want := 0.0
		for i := range vs {
			for j := i + 1; j < len(vs); j++ {
				want = math.Max(want, d.MustAt(vs[i], vs[j]))
				assert.Less(t, d.MustAt(vs[i], vs[j]), 3.0)
			}
		}
		assert.Equal(t, want, e.Degree, "%v", e.Simplex)
	}
}

func TestEdges(t *testing.T) {
	b, err := rips.New(square, rips.WithDistance(metric.Manhattan), rips.WithThreshold(1.5))
	require.NoError(t, err)

	assert.Equal(t, []rips.Edge{
		{U: 0, V: 1, Length: 1},
		{U: 0, V: 3, Length: 1},
		{U: 1, V: 2, Length: 1},
		{U: 2, V: 3, Length: 1},
	}, b.Edges())
}

func TestEmptyPointCloud(t *testing.T) {
	b, err := rips.New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 1.0, b.Threshold())

	all := intervals(t, b, 0)
	assert.Empty(t, all)
}

func TestFromDistances(t *testing.T) {
	m, err := metric.FromRows([][]float64{
		{0, 1, 4},
		{1, 0, 2},
		{4, 2, 0},
	}, 0)
	require.NoError(t, err)

	b, err := rips.FromDistances(m, rips.WithThreshold(3))
	require.NoError(t, err)
	c, err := b.ComputeSkeleton(0)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Len(), "edge {0,2} is too long, no triangle")
	assert.Equal(t, 2.0, c.Degree(simplex.MustNew(1, 2)))
	assert.False(t, c.Has(simplex.MustNew(0, 2)))

	b, err = rips.FromDistances(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
}

func TestNew_Errors(t *testing.T) {
	_, err := rips.New([][]float64{{0, 0}, {1}})
	assert.ErrorIs(t, err, rips.ErrRaggedPoints)

	_, err = rips.New([][]float64{{0}, {math.NaN()}})
	assert.ErrorIs(t, err, metric.ErrNaNInf)

	neg := func(_, _ []float64) float64 { return -1 }
	_, err = rips.New(square, rips.WithDistance(neg))
	assert.ErrorIs(t, err, metric.ErrNegativeDistance)

	for _, th := range []float64{-0.5, math.NaN()} {
		_, err = rips.New(square, rips.WithThreshold(th))
		assert.ErrorIs(t, err, rips.ErrBadThreshold, "threshold %v", th)
	}
}
