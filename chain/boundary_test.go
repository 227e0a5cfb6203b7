package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/chain"
	"github.com/katalvlaran/lvtopo/simplex"
)

// TestBoundary_Vertex verifies ∂[v] = 0.
func TestBoundary_Vertex(t *testing.T) {
	assert.True(t, chain.Boundary(simplex.MustNew(3), chain.MustField(2)).IsEmpty())
}

// TestBoundary_Triangle pins signs over GF(3): ∂[0 1 2] = [1 2] - [0 2] + [0 1].
func TestBoundary_Triangle(t *testing.T) {
	f := chain.MustField(3)
	d := chain.Boundary(simplex.MustNew(0, 1, 2), f)

	require.Equal(t, 3, d.Len())
	assert.Equal(t, 1, d.Coefficient(simplex.MustNew(1, 2).Key()))
	assert.Equal(t, 2, d.Coefficient(simplex.MustNew(0, 2).Key()), "-1 ≡ 2 mod 3")
	assert.Equal(t, 1, d.Coefficient(simplex.MustNew(0, 1).Key()))
}

// TestBoundary_SquaresToZero checks ∂∘∂ = 0 on simplices up to size 6
// for several primes, including the sign-sensitive odd ones.
func TestBoundary_SquaresToZero(t *testing.T) {
	for _, p := range []int{2, 3, 5} {
		f := chain.MustField(p)
		for size := 1; size <= 6; size++ {
			vs := make([]simplex.Vertex, size)
			for i := range vs {
				vs[i] = 3*i + 1
			}
			d := chain.Boundary(simplex.MustNew(vs...), f)
			dd, err := chain.BoundaryOf(d)
			require.NoError(t, err)
			assert.True(t, dd.IsEmpty(), "p=%d size=%d: ∂∂ = %v", p, size, dd)
		}
	}
}

// TestBoundaryOf_Linear verifies ∂(a+b) = ∂a + ∂b on a small 2-chain.
func TestBoundaryOf_Linear(t *testing.T) {
	f := chain.MustField(3)
	a := simplex.MustNew(0, 1, 2)
	b := simplex.MustNew(0, 2, 3)
	c := chain.OfSimplices(f, []simplex.Simplex{a, b}, []int{1, 2})

	got, err := chain.BoundaryOf(c)
	require.NoError(t, err)

	want := chain.Boundary(a, f).Add(chain.Boundary(b, f).Scale(2))
	assert.True(t, got.Equal(want), "got %v want %v", got, want)
}

// TestBoundaryOf_BadKey surfaces decoding failures.
func TestBoundaryOf_BadKey(t *testing.T) {
	f := chain.MustField(2)
	c := chain.Of(f, chain.Term[simplex.Key]{Key: "", Coeff: 1})

	_, err := chain.BoundaryOf(c)
	assert.ErrorIs(t, err, simplex.ErrBadKey)
}
