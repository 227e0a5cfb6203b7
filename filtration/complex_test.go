package filtration_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/filtration"
	"github.com/katalvlaran/lvtopo/simplex"
)

var s = simplex.MustNew

// TestInsert_FaceClosure inserts a lone triangle and expects all faces at the same degree.
func TestInsert_FaceClosure(t *testing.T) {
	c := filtration.New()
	require.NoError(t, c.Insert(s(0, 1, 2), 3))

	assert.Equal(t, 7, c.Len(), "3 vertices + 3 edges + 1 triangle")
	for _, x := range []simplex.Simplex{s(0), s(1), s(2), s(0, 1), s(0, 2), s(1, 2), s(0, 1, 2)} {
		assert.Equal(t, 3.0, c.Degree(x), "%v", x)
	}
	assert.Equal(t, 2, c.DimensionBound())
	assert.Equal(t, 3.0, c.MaxDegree())
	require.NoError(t, c.Validate())
}

// TestInsert_ExistingLowerIsNoop keeps the lower existing degree.
func TestInsert_ExistingLowerIsNoop(t *testing.T) {
	c := filtration.New()
	require.NoError(t, c.Insert(s(0, 1), 1))
	require.NoError(t, c.Insert(s(0, 1), 5))

	assert.Equal(t, 1.0, c.Degree(s(0, 1)))
	assert.Equal(t, 3, c.Len())
}

// TestInsert_LoweringCascadesToFaces lowers an edge and expects its vertices to follow.
func TestInsert_LoweringCascadesToFaces(t *testing.T) {
	c := filtration.New()
	require.NoError(t, c.Insert(s(0, 1, 2), 4))
	require.NoError(t, c.Insert(s(0, 1), 2))

	assert.Equal(t, 2.0, c.Degree(s(0, 1)))
	assert.Equal(t, 2.0, c.Degree(s(0)))
	assert.Equal(t, 2.0, c.Degree(s(1)))
	assert.Equal(t, 4.0, c.Degree(s(2)), "untouched vertex keeps its degree")
	assert.Equal(t, 4.0, c.Degree(s(0, 1, 2)), "coface is unaffected")
	require.NoError(t, c.Validate())
}

// TestInsert_FacesAlreadyLower keeps lower face degrees when a coface arrives later.
func TestInsert_FacesAlreadyLower(t *testing.T) {
	c := filtration.New()
	require.NoError(t, c.InsertVertices([]simplex.Vertex{0}, 0))
	require.NoError(t, c.InsertVertices([]simplex.Vertex{1, 0}, 2))

	assert.Equal(t, 0.0, c.Degree(s(0)))
	assert.Equal(t, 2.0, c.Degree(s(1)))
	assert.Equal(t, filtration.NotPresent, c.Degree(s(2)))
	assert.False(t, c.Has(s(2)))
}

// TestInsert_Errors covers bad degrees, invalid simplices and sealing.
func TestInsert_Errors(t *testing.T) {
	c := filtration.New()
	for _, d := range []float64{-1, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, c.Insert(s(0), d), filtration.ErrBadDegree, "degree %v", d)
	}
	assert.ErrorIs(t, c.InsertVertices([]simplex.Vertex{1, 1}, 0), simplex.ErrInvalidSimplex)
	assert.ErrorIs(t, c.Insert(simplex.Simplex{}, 0), simplex.ErrInvalidSimplex)
	assert.Zero(t, c.Len())

	c.Seal()
	assert.True(t, c.Sealed())
	assert.ErrorIs(t, c.Insert(s(0), 0), filtration.ErrSealed)
}

// TestAssignOrder_SizeDegreeSimplex pins the filtration order of the reference complex.
func TestAssignOrder_SizeDegreeSimplex(t *testing.T) {
	c := filtration.New()
	// inserted out of order on purpose
	require.NoError(t, c.Insert(s(0, 2, 3), 5))
	require.NoError(t, c.Insert(s(0, 1, 2), 4))
	require.NoError(t, c.Insert(s(0, 2), 3))
	require.NoError(t, c.Insert(s(0, 3), 2))
	require.NoError(t, c.Insert(s(2, 3), 2))
	require.NoError(t, c.Insert(s(0, 1), 1))
	require.NoError(t, c.Insert(s(1, 2), 1))
	for v := 0; v < 4; v++ {
		require.NoError(t, c.Insert(s(v), 0))
	}

	got := make([]string, 0, c.Len())
	for _, e := range c.Entries() {
		got = append(got, e.Simplex.String())
	}
	assert.Equal(t, []string{
		"[0]", "[1]", "[2]", "[3]",
		"[0 1]", "[1 2]", "[0 3]", "[2 3]", "[0 2]",
		"[0 1 2]", "[0 2 3]",
	}, got)

	pos, ok := c.Position(s(0, 3))
	require.True(t, ok)
	assert.Equal(t, 6, pos)
	_, ok = c.Position(s(1, 3))
	assert.False(t, ok)

	e, err := c.At(8)
	require.NoError(t, err)
	assert.Equal(t, "[0 2]", e.Simplex.String())
	assert.Equal(t, 3.0, e.Degree)

	_, err = c.At(11)
	assert.ErrorIs(t, err, filtration.ErrOutOfRange)

	assert.Len(t, c.Ordered(), 11)
	require.NoError(t, c.Validate())
}

// TestAssignOrder_RecomputedAfterInsert ensures positions follow later mutations.
func TestAssignOrder_RecomputedAfterInsert(t *testing.T) {
	c := filtration.New()
	require.NoError(t, c.Insert(s(1), 2))
	require.NoError(t, c.Insert(s(0), 3))
	pos, _ := c.Position(s(1))
	assert.Equal(t, 0, pos)

	require.NoError(t, c.Insert(s(0), 1))
	pos, _ = c.Position(s(1))
	assert.Equal(t, 1, pos)
}

// TestString lists entries in order.
func TestString(t *testing.T) {
	c := filtration.New()
	require.NoError(t, c.Insert(s(0, 1), 0.5))

	assert.Equal(t, "[0] : 0.5\n[1] : 0.5\n[0 1] : 0.5", c.String())
	assert.Equal(t, "", filtration.New().String())
}

// TestEmpty covers the derived scalars of an empty complex.
func TestEmpty(t *testing.T) {
	c := filtration.New()
	assert.Equal(t, -1, c.DimensionBound())
	assert.Zero(t, c.MaxDegree())
	assert.Empty(t, c.Entries())
	assert.NoError(t, c.Validate())
}
