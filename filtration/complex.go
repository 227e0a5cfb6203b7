// SPDX-License-Identifier: MIT

package filtration

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/katalvlaran/lvtopo/progress"
	"github.com/katalvlaran/lvtopo/simplex"
)

// NotPresent is the degree reported for a simplex that is not in the complex.
const NotPresent = -1.0

// Sentinel errors for filtered complexes.
var (
	// ErrBadDegree indicates a negative, NaN or infinite degree.
	ErrBadDegree = errors.New("filtration: degree must be finite and non-negative")

	// ErrSealed indicates a mutation after the complex was snapshotted.
	ErrSealed = errors.New("filtration: complex is sealed")

	// ErrFiltrationViolation indicates a face missing or with a higher degree than its coface.
	ErrFiltrationViolation = errors.New("filtration: filtration invariant violated")

	// ErrOutOfRange indicates a position outside [0, Len()).
	ErrOutOfRange = errors.New("filtration: position out of range")
)

// Entry is a simplex together with its degree.
type Entry struct {
	Simplex simplex.Simplex
	Degree  float64
}

// Option configures a Complex.
type Option func(*Complex)

// WithReporter routes face auto-insertion and degree-lowering notes to r.
func WithReporter(r progress.Reporter) Option {
	return func(c *Complex) { c.rep = progress.OrNop(r) }
}

// Complex is a filtered simplicial complex backed by a slot arena.
//
// It is not safe for concurrent use.
type Complex struct {
	simplices []simplex.Simplex   // slot → simplex
	degrees   []float64           // slot → degree
	index     map[simplex.Key]int // key → slot

	order    []int // position → slot, valid when ordered
	position []int // slot → position, valid when ordered
	ordered  bool

	sealed bool
	maxDim int // max Dim() over stored simplices, -1 when empty
	rep    progress.Reporter
}

// New returns an empty complex.
func New(opts ...Option) *Complex {
	c := &Complex{
		index:  make(map[simplex.Key]int),
		maxDim: -1,
		rep:    progress.Nop,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Len returns the number of stored simplices.
func (c *Complex) Len() int { return len(c.simplices) }

// DimensionBound returns the largest Dim() of a stored simplex, -1 when empty.
func (c *Complex) DimensionBound() int { return c.maxDim }

// MaxDegree returns the largest stored degree, 0 when empty.
func (c *Complex) MaxDegree() float64 {
	var mx float64
	for _, d := range c.degrees {
		mx = math.Max(mx, d)
	}

	return mx
}

// Degree returns the degree of s, or NotPresent.
func (c *Complex) Degree(s simplex.Simplex) float64 {
	if slot, ok := c.index[s.Key()]; ok {
		return c.degrees[slot]
	}

	return NotPresent
}

// Has reports whether s is stored.
func (c *Complex) Has(s simplex.Simplex) bool {
	_, ok := c.index[s.Key()]
	return ok
}

// Sealed reports whether the complex refuses further inserts.
func (c *Complex) Sealed() bool { return c.sealed }

// Seal forbids further inserts. Persistence engines seal the complex they snapshot.
func (c *Complex) Seal() { c.sealed = true }

// InsertVertices is Insert for a raw vertex list.
func (c *Complex) InsertVertices(vertices []simplex.Vertex, degree float64) error {
	s, err := simplex.New(vertices...)
	if err != nil {
		return err
	}

	return c.Insert(s, degree)
}

// Insert adds s at degree, closing it under faces.
//
// Steps:
//  1. Validate the degree and the sealed flag.
//  2. Work-list over s and, transitively, its faces:
//     absent → store at degree and enqueue faces;
//     stored higher → lower to degree and enqueue faces;
//     stored lower or equal → stop (its faces are already ≤ by the invariant).
//
// Errors:
//   - ErrBadDegree, ErrSealed, simplex.ErrInvalidSimplex for a zero Simplex.
//
// Complexity: O(F·k) where F is the number of touched faces and k their size.
func (c *Complex) Insert(s simplex.Simplex, degree float64) error {
	if s.IsZero() {
		return fmt.Errorf("%w: zero value", simplex.ErrInvalidSimplex)
	}
	if math.IsNaN(degree) || math.IsInf(degree, 0) || degree < 0 {
		return fmt.Errorf("%w: %v for %v", ErrBadDegree, degree, s)
	}
	if c.sealed {
		return ErrSealed
	}

	work := []simplex.Simplex{s}
	for len(work) > 0 {
		x := work[len(work)-1]
		work = work[:len(work)-1]

		slot, ok := c.index[x.Key()]
		switch {
		case !ok:
			c.store(x, degree)
			if !simplex.Equal(x, s) {
				c.rep.Note("face inserted", "simplex", x.String(), "degree", degree)
			}
		case c.degrees[slot] > degree:
			c.rep.Note("degree lowered", "simplex", x.String(), "from", c.degrees[slot], "to", degree)
			c.degrees[slot] = degree
			c.ordered = false
		default:
			continue
		}
		work = append(work, x.Faces()...)
	}

	return nil
}

// store appends x to the arena.
func (c *Complex) store(x simplex.Simplex, degree float64) {
	c.index[x.Key()] = len(c.simplices)
	c.simplices = append(c.simplices, x)
	c.degrees = append(c.degrees, degree)
	c.maxDim = max(c.maxDim, x.Dim())
	c.ordered = false
}

// compare is the filtration order: size, then degree, then simplex order.
func (c *Complex) compare(a, b int) int {
	sa, sb := c.simplices[a], c.simplices[b]
	if r := cmp.Compare(sa.Size(), sb.Size()); r != 0 {
		return r
	}
	if r := cmp.Compare(c.degrees[a], c.degrees[b]); r != 0 {
		return r
	}

	return simplex.Compare(sa, sb)
}

// AssignOrder stable-sorts the arena into filtration order and assigns each
// simplex a dense position 0..n-1. It is called implicitly by every
// order-dependent accessor and is cheap when nothing changed.
//
// Complexity: O(n log n) after a mutation, O(1) otherwise.
func (c *Complex) AssignOrder() {
	if c.ordered {
		return
	}
	n := len(c.simplices)
	c.order = make([]int, n)
	for i := range c.order {
		c.order[i] = i
	}
	slices.SortStableFunc(c.order, c.compare)

	c.position = make([]int, n)
	for pos, slot := range c.order {
		c.position[slot] = pos
	}
	c.ordered = true
}

// Position returns the filtration position of s.
func (c *Complex) Position(s simplex.Simplex) (int, bool) {
	slot, ok := c.index[s.Key()]
	if !ok {
		return -1, false
	}
	c.AssignOrder()

	return c.position[slot], true
}

// At returns the entry at filtration position pos.
func (c *Complex) At(pos int) (Entry, error) {
	if pos < 0 || pos >= len(c.simplices) {
		return Entry{}, fmt.Errorf("At(%d): %w", pos, ErrOutOfRange)
	}
	c.AssignOrder()
	slot := c.order[pos]

	return Entry{Simplex: c.simplices[slot], Degree: c.degrees[slot]}, nil
}

// Entries returns every simplex with its degree, in filtration order.
func (c *Complex) Entries() []Entry {
	c.AssignOrder()
	out := make([]Entry, len(c.order))
	for pos, slot := range c.order {
		out[pos] = Entry{Simplex: c.simplices[slot], Degree: c.degrees[slot]}
	}

	return out
}

// Ordered returns the simplices in filtration order.
func (c *Complex) Ordered() []simplex.Simplex {
	c.AssignOrder()
	out := make([]simplex.Simplex, len(c.order))
	for pos, slot := range c.order {
		out[pos] = c.simplices[slot]
	}

	return out
}

// Validate checks the filtration invariant on every stored simplex.
//
// Errors:
//   - ErrFiltrationViolation wrapped with the first offending face/coface pair.
func (c *Complex) Validate() error {
	for slot, s := range c.simplices {
		for _, f := range s.Faces() {
			fd := c.Degree(f)
			if fd == NotPresent {
				return fmt.Errorf("%w: face %v of %v missing", ErrFiltrationViolation, f, s)
			}
			if fd > c.degrees[slot] {
				return fmt.Errorf("%w: face %v at %v above %v at %v",
					ErrFiltrationViolation, f, fd, s, c.degrees[slot])
			}
		}
	}

	return nil
}

// String lists "simplex : degree" lines in filtration order.
func (c *Complex) String() string {
	var b strings.Builder
	for i, e := range c.Entries() {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%v : %g", e.Simplex, e.Degree)
	}

	return b.String()
}
