// SPDX-License-Identifier: MIT

package persistence

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvtopo/chain"
	"github.com/katalvlaran/lvtopo/filtration"
	"github.com/katalvlaran/lvtopo/progress"
	"github.com/katalvlaran/lvtopo/simplex"
)

// Stage names reported through progress.Reporter.
const (
	StageReduce    = "reduce"
	StageEssential = "essential"
)

// pivot is a stored row of the reduced boundary matrix: the simplex (by
// position) whose reduced boundary has its maximal face at this row.
type pivot struct {
	creator int
	chain   chain.Chain[int]
}

// Engine runs the persistence algorithm on one snapshot of a filtered complex.
//
// All working state is indexed by filtration position and owned by the
// engine. An Engine is single-use and not safe for concurrent use.
type Engine struct {
	field  chain.Field
	strict bool
	rep    progress.Reporter
	every  int

	// snapshot
	simplices []simplex.Simplex
	degrees   []float64
	position  map[simplex.Key]int
	maxDim    int

	// working state
	marked    []bool
	pivots    []*pivot
	intervals [][]Interval
	pairs     []Pair
	computed  bool
}

// New snapshots c and prepares an engine.
//
// The complex is ordered, validated and sealed; later inserts into c fail
// with filtration.ErrSealed.
//
// Errors:
//   - ErrNilComplex if c is nil.
//   - chain.ErrFieldNotPrime / chain.ErrFieldTooLarge for a bad field.
//   - filtration.ErrFiltrationViolation if c does not satisfy the invariant.
//
// Complexity: O(n log n + n·k²) for n simplices of size ≤ k.
func New(c *filtration.Complex, opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if c == nil {
		return nil, ErrNilComplex
	}
	f, err := chain.NewField(cfg.Field)
	if err != nil {
		return nil, fmt.Errorf("persistence: %w", err)
	}
	if err = c.Validate(); err != nil {
		return nil, err
	}

	c.AssignOrder()
	c.Seal()
	entries := c.Entries()

	e := &Engine{
		field:     f,
		strict:    cfg.Strict,
		rep:       progress.OrNop(cfg.Reporter),
		every:     cfg.ProgressEvery,
		simplices: make([]simplex.Simplex, len(entries)),
		degrees:   make([]float64, len(entries)),
		position:  make(map[simplex.Key]int, len(entries)),
		maxDim:    c.DimensionBound(),
		marked:    make([]bool, len(entries)),
		pivots:    make([]*pivot, len(entries)),
	}
	for pos, en := range entries {
		e.simplices[pos] = en.Simplex
		e.degrees[pos] = en.Degree
		e.position[en.Simplex.Key()] = pos
	}
	e.intervals = make([][]Interval, e.maxDim+1)

	return e, nil
}

// Len returns the number of simplices in the snapshot.
func (e *Engine) Len() int { return len(e.simplices) }

// Dimension returns the top simplex dimension of the snapshot (-1 when empty).
func (e *Engine) Dimension() int { return e.maxDim }

// Field returns the coefficient field.
func (e *Engine) Field() chain.Field { return e.field }

// Computed reports whether ComputeIntervals has run.
func (e *Engine) Computed() bool { return e.computed }

// ComputeIntervals runs both passes of the algorithm. Calling it again is a
// no-op and leaves earlier results untouched.
func (e *Engine) ComputeIntervals() {
	if e.computed {
		return
	}
	n := len(e.simplices)

	e.rep.Begin(StageReduce, n)
	cnt := progress.NewCounter(e.rep, StageReduce, e.every)
	for j := 0; j < n; j++ {
		d := e.reduce(j)
		if d.IsEmpty() {
			e.marked[j] = true
		} else {
			t, _, _ := chain.MaxKey(d, identity)
			e.pivots[t] = &pivot{creator: j, chain: d}
			e.addInterval(t, j)
		}
		cnt.Step()
	}
	e.rep.End(StageReduce, n)

	e.rep.Begin(StageEssential, n)
	essential := 0
	for j := 0; j < n; j++ {
		if e.marked[j] && e.pivots[j] == nil {
			e.addInterval(j, -1)
			essential++
		}
	}
	e.rep.End(StageEssential, essential)

	e.computed = true
}

// reduce returns the boundary of the simplex at position j restricted to
// marked faces, with every reducible pivot eliminated.
func (e *Engine) reduce(j int) chain.Chain[int] {
	faces := e.simplices[j].Faces()
	terms := make([]chain.Term[int], 0, len(faces))
	for i, f := range faces {
		// faces are present: New validated the complex
		p := e.position[f.Key()]
		if !e.marked[p] {
			continue
		}
		coeff := 1
		if i%2 == 1 {
			coeff = -1
		}
		terms = append(terms, chain.Term[int]{Key: p, Coeff: coeff})
	}
	d := chain.Of(e.field, terms...)

	for {
		t, _, ok := chain.MaxKey(d, identity)
		if !ok {
			break
		}
		pv := e.pivots[t]
		if pv == nil {
			break
		}
		q := d.Coefficient(t)
		inv := e.field.Inv(pv.chain.Coefficient(t))
		d.AddScaled(pv.chain, -e.field.Mul(q, inv))
	}

	return d
}

// addInterval records the interval created at position t and destroyed at
// position s (s < 0: never destroyed), honouring the strict flag.
func (e *Engine) addInterval(t, s int) {
	birth, death := e.degrees[t], Infinity
	if s >= 0 {
		death = e.degrees[s]
	}
	if e.strict && birth == death {
		return
	}
	k := e.simplices[t].Dim()
	e.intervals[k] = append(e.intervals[k], Interval{Birth: birth, Death: death})

	p := Pair{Creator: e.simplices[t]}
	if s >= 0 {
		p.Destroyer, p.HasDestroyer = e.simplices[s], true
	}
	e.pairs = append(e.pairs, p)
}

// Destroyer returns the simplex whose boundary reduction used s as its pivot,
// i.e. the simplex that killed the feature s created.
//
// Errors:
//   - ErrNotComputed before ComputeIntervals.
func (e *Engine) Destroyer(s simplex.Simplex) (simplex.Simplex, bool, error) {
	if !e.computed {
		return simplex.Simplex{}, false, ErrNotComputed
	}
	pos, ok := e.position[s.Key()]
	if !ok || e.pivots[pos] == nil {
		return simplex.Simplex{}, false, nil
	}

	return e.simplices[e.pivots[pos].creator], true, nil
}

// Intervals returns a copy of the intervals of dimension k, in recording
// order: finite intervals by increasing death position, then essential ones.
// Dimensions outside the snapshot yield an empty list.
//
// Errors:
//   - ErrNotComputed before ComputeIntervals.
func (e *Engine) Intervals(k int) ([]Interval, error) {
	if !e.computed {
		return nil, ErrNotComputed
	}
	if k < 0 || k >= len(e.intervals) {
		return []Interval{}, nil
	}

	return slices.Clone(e.intervals[k]), nil
}

// AllIntervals returns the intervals of every dimension 0..Dimension().
//
// Errors:
//   - ErrNotComputed before ComputeIntervals.
func (e *Engine) AllIntervals() ([][]Interval, error) {
	if !e.computed {
		return nil, ErrNotComputed
	}
	out := make([][]Interval, len(e.intervals))
	for k := range e.intervals {
		out[k] = slices.Clone(e.intervals[k])
	}

	return out, nil
}

// Pairs returns the (creator, destroyer) provenance of every recorded interval.
//
// Errors:
//   - ErrNotComputed before ComputeIntervals.
func (e *Engine) Pairs() ([]Pair, error) {
	if !e.computed {
		return nil, ErrNotComputed
	}

	return slices.Clone(e.pairs), nil
}

// BettiNumber counts intervals (i, j) of dimension k with i ≤ l and
// l + persistence < j: the persistent Betti number at l for the given
// minimum persistence.
//
// Errors:
//   - ErrNotComputed before ComputeIntervals.
//   - ErrNegativePersistence if persistence < 0.
func (e *Engine) BettiNumber(k int, l, persistence float64) (int, error) {
	if !e.computed {
		return 0, ErrNotComputed
	}
	if !(persistence >= 0) {
		return 0, ErrNegativePersistence
	}
	if k < 0 || k >= len(e.intervals) {
		return 0, nil
	}
	n := 0
	for _, iv := range e.intervals[k] {
		if iv.Birth <= l && l+persistence < iv.Death {
			n++
		}
	}

	return n, nil
}

func identity(k int) int { return k }
