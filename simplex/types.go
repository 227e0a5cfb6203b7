// SPDX-License-Identifier: MIT

package simplex

import "errors"

// Sentinel errors for simplex construction and decoding.
var (
	// ErrInvalidSimplex indicates an empty vertex list or a duplicated vertex.
	ErrInvalidSimplex = errors.New("simplex: invalid simplex")

	// ErrBadKey indicates that a Key could not be decoded into a Simplex.
	ErrBadKey = errors.New("simplex: malformed key")
)

// Vertex identifies a point of the underlying vertex set.
type Vertex = int

// Key is a comparable encoding of a Simplex's sorted vertex tuple.
// Two simplices are equal iff their keys are equal.
type Key string

// Simplex is an immutable sorted tuple of distinct vertices.
//
// The zero value is not a valid simplex; build one with New or MustNew.
type Simplex struct {
	vertices []Vertex // sorted ascending, no duplicates, never mutated after New
	key      Key      // cached encoding of vertices
}
