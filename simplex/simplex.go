// SPDX-License-Identifier: MIT

package simplex

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// New builds a Simplex from the given vertices.
// The input is copied and sorted; the caller's slice is never touched.
//
// Errors:
//   - ErrInvalidSimplex if no vertex is given or a vertex repeats.
//
// Complexity: O(k log k) for k vertices.
func New(vertices ...Vertex) (Simplex, error) {
	if len(vertices) == 0 {
		return Simplex{}, fmt.Errorf("%w: empty vertex list", ErrInvalidSimplex)
	}
	vs := slices.Clone(vertices)
	slices.Sort(vs)
	for i := 1; i < len(vs); i++ {
		if vs[i] == vs[i-1] {
			return Simplex{}, fmt.Errorf("%w: duplicate vertex %d", ErrInvalidSimplex, vs[i])
		}
	}

	return fromSorted(vs), nil
}

// MustNew is like New but panics on invalid input.
// Intended for literals in tests and examples.
func MustNew(vertices ...Vertex) Simplex {
	s, err := New(vertices...)
	if err != nil {
		panic(err)
	}

	return s
}

// fromSorted wraps an already sorted, duplicate-free slice it takes ownership of.
func fromSorted(vs []Vertex) Simplex {
	buf := make([]byte, 0, len(vs)*2)
	for _, v := range vs {
		buf = binary.AppendVarint(buf, int64(v))
	}

	return Simplex{vertices: vs, key: Key(buf)}
}

// ParseKey decodes a Key produced by Simplex.Key.
func ParseKey(k Key) (Simplex, error) {
	buf := []byte(k)
	if len(buf) == 0 {
		return Simplex{}, ErrBadKey
	}
	vs := make([]Vertex, 0, len(buf))
	for len(buf) > 0 {
		v, n := binary.Varint(buf)
		if n <= 0 {
			return Simplex{}, ErrBadKey
		}
		vs = append(vs, Vertex(v))
		buf = buf[n:]
	}
	for i := 1; i < len(vs); i++ {
		if vs[i] <= vs[i-1] {
			return Simplex{}, ErrBadKey
		}
	}

	return fromSorted(vs), nil
}

// Size returns the number of vertices.
func (s Simplex) Size() int { return len(s.vertices) }

// Dim returns the geometric dimension, Size()-1.
func (s Simplex) Dim() int { return len(s.vertices) - 1 }

// Key returns the comparable encoding of s.
func (s Simplex) Key() Key { return s.key }

// IsZero reports whether s is the zero value (not built by New).
func (s Simplex) IsZero() bool { return len(s.vertices) == 0 }

// Vertices returns a copy of the sorted vertex tuple.
func (s Simplex) Vertices() []Vertex { return slices.Clone(s.vertices) }

// Vertex returns the i-th smallest vertex.
func (s Simplex) Vertex(i int) Vertex { return s.vertices[i] }

// Min returns the smallest vertex.
func (s Simplex) Min() Vertex { return s.vertices[0] }

// Contains reports whether v is a vertex of s.
func (s Simplex) Contains(v Vertex) bool {
	_, ok := slices.BinarySearch(s.vertices, v)
	return ok
}

// Faces returns the codimension-1 faces of s in deletion-index order:
// face i is s with its i-th vertex removed.
//
// A simplex of size k yields exactly k faces when k ≥ 2. A vertex has no
// non-empty face and yields nil.
//
// Complexity: O(k²).
func (s Simplex) Faces() []Simplex {
	k := len(s.vertices)
	if k < 2 {
		return nil
	}
	faces := make([]Simplex, k)
	for i := 0; i < k; i++ {
		vs := make([]Vertex, 0, k-1)
		vs = append(vs, s.vertices[:i]...)
		vs = append(vs, s.vertices[i+1:]...)
		faces[i] = fromSorted(vs)
	}

	return faces
}

// With returns s extended by v. v must not already be a vertex of s.
func (s Simplex) With(v Vertex) (Simplex, error) {
	vs := make([]Vertex, 0, len(s.vertices)+1)
	vs = append(vs, s.vertices...)
	vs = append(vs, v)

	return New(vs...)
}

// String renders s as "[v0 v1 ...]".
func (s Simplex) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.vertices {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')

	return b.String()
}

// Compare orders a and b by size, then lexicographically on vertices.
// It returns -1, 0 or +1.
func Compare(a, b Simplex) int {
	if len(a.vertices) != len(b.vertices) {
		if len(a.vertices) < len(b.vertices) {
			return -1
		}
		return 1
	}

	return slices.Compare(a.vertices, b.vertices)
}

// Less reports whether a sorts strictly before b.
func Less(a, b Simplex) bool { return Compare(a, b) < 0 }

// Equal reports whether a and b span the same vertices.
func Equal(a, b Simplex) bool { return a.key == b.key }

// IsFaceOf reports whether f is a codimension-1 face of s.
func IsFaceOf(f, s Simplex) bool {
	if f.Size()+1 != s.Size() {
		return false
	}
	for _, v := range f.vertices {
		if !s.Contains(v) {
			return false
		}
	}

	return true
}
