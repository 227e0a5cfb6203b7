// SPDX-License-Identifier: MIT

package chain

import (
	"github.com/katalvlaran/lvtopo/simplex"
)

// Boundary returns ∂s over f: the alternating sum of the faces of s.
// The boundary of a vertex is the empty chain.
//
// Complexity: O(k²) for a simplex of size k.
func Boundary(s simplex.Simplex, f Field) Chain[simplex.Key] {
	out := Zero[simplex.Key](f)
	for i, face := range s.Faces() {
		out.addTerm(face.Key(), f.Reduce(sign(i)))
	}

	return out
}

// BoundaryOf extends Boundary linearly to a chain of simplices.
//
// Errors:
//   - simplex.ErrBadKey if c holds a key not produced by simplex.Key.
func BoundaryOf(c Chain[simplex.Key]) (Chain[simplex.Key], error) {
	out := Zero[simplex.Key](c.field)
	for k, v := range c.coeffs {
		s, err := simplex.ParseKey(k)
		if err != nil {
			return Chain[simplex.Key]{}, err
		}
		out.AddScaled(Boundary(s, c.field), v)
	}

	return out, nil
}

// OfSimplices builds a chain over f from simplices and integer coefficients.
// Repeated simplices are summed.
func OfSimplices(f Field, ss []simplex.Simplex, coeffs []int) Chain[simplex.Key] {
	out := Zero[simplex.Key](f)
	for i, s := range ss {
		out.addTerm(s.Key(), f.Reduce(coeffs[i]))
	}

	return out
}

// sign returns (-1)^i.
func sign(i int) int {
	if i%2 == 0 {
		return 1
	}

	return -1
}
