// SPDX-License-Identifier: MIT

// Package simplex defines the Simplex value type: an immutable, sorted tuple
// of distinct vertex identifiers.
//
// What is a simplex?
//
//	A k-dimensional simplex is spanned by k+1 vertices:
//	  • size 1 — a vertex        [3]
//	  • size 2 — an edge         [0 1]
//	  • size 3 — a triangle      [0 1 2]
//	  • size 4 — a tetrahedron   [0 1 2 3]
//
// Throughout lvtopo the bookkeeping unit is Size (vertex count), not the
// geometric dimension; Dim() is provided for homology-dimension reporting.
//
// Ordering:
//
//	Compare orders simplices by Size first and then lexicographically on the
//	sorted vertex tuple. It is a strict total order, so any slice of simplices
//	can be sorted stably together with an external key (e.g. filtration degree).
//
// Keys:
//
//	Simplex wraps a slice and is therefore not comparable. Key() returns a
//	compact comparable encoding that can be used as a map key and decoded back
//	with ParseKey.
//
// Usage:
//
//	s, err := simplex.New(2, 0, 1) // → [0 1 2]
//	for _, f := range s.Faces() {  // [1 2], [0 2], [0 1]
//	    fmt.Println(f)
//	}
//
// Errors:
//
//	ErrInvalidSimplex — empty vertex list or duplicated vertex.
//	ErrBadKey         — ParseKey got a malformed key.
package simplex
