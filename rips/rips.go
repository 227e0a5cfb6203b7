// SPDX-License-Identifier: MIT

package rips

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvtopo/filtration"
	"github.com/katalvlaran/lvtopo/metric"
	"github.com/katalvlaran/lvtopo/progress"
	"github.com/katalvlaran/lvtopo/simplex"
)

// Stage names reported through progress.Reporter.
const (
	StageEdges  = "rips.edges"
	StageExpand = "rips.expand"
)

// Sentinel errors for the Rips builder.
var (
	// ErrRaggedPoints indicates points with differing coordinate counts.
	ErrRaggedPoints = errors.New("rips: points have differing lengths")

	// ErrBadThreshold indicates a negative or NaN threshold.
	ErrBadThreshold = errors.New("rips: threshold must be non-negative")
)

// Options configures a Builder.
//
// Distance     – point distance (nil means metric.Euclidean).
// Threshold    – edges strictly shorter than this are admissible.
// HasThreshold – false selects the default 1 + max pairwise distance.
// Reporter     – checkpoint sink.
type Options struct {
	Distance     metric.Func
	Threshold    float64
	HasThreshold bool
	Reporter     progress.Reporter
}

// Option is a functional option for New and FromDistances.
type Option func(*Options)

// WithDistance selects the point distance. Ignored by FromDistances.
func WithDistance(fn metric.Func) Option {
	return func(o *Options) { o.Distance = fn }
}

// WithThreshold sets the admissibility bound. Zero admits no edge.
func WithThreshold(t float64) Option {
	return func(o *Options) {
		o.Threshold = t
		o.HasThreshold = true
	}
}

// WithReporter installs a checkpoint sink.
func WithReporter(r progress.Reporter) Option {
	return func(o *Options) { o.Reporter = r }
}

// DefaultOptions returns Euclidean distance, the admit-all threshold and no reporting.
func DefaultOptions() Options {
	return Options{Distance: metric.Euclidean, Reporter: progress.Nop}
}

// Edge is an admissible pair U < V with its length.
type Edge struct {
	U, V   simplex.Vertex
	Length float64
}

// Builder holds a distance matrix and a threshold. It is immutable after
// construction; every ComputeSkeleton call returns a fresh complex.
type Builder struct {
	dist      *metric.Matrix
	threshold float64
	rep       progress.Reporter

	// lower[u] lists the admissible neighbours v < u in ascending order.
	lower [][]simplex.Vertex
}

// New computes the pairwise distances of points and prepares a Builder.
//
// Errors:
//   - ErrRaggedPoints if points differ in length.
//   - ErrBadThreshold for a negative or NaN threshold.
//   - metric.ErrNaNInf / metric.ErrNegativeDistance from the distance function.
func New(points [][]float64, opts ...Option) (*Builder, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	for i, p := range points {
		if len(p) != len(points[0]) {
			return nil, fmt.Errorf("%w: point %d has %d coordinates, want %d",
				ErrRaggedPoints, i, len(p), len(points[0]))
		}
	}
	m, err := metric.Pairwise(points, cfg.Distance)
	if err != nil {
		return nil, fmt.Errorf("rips: %w", err)
	}

	return newBuilder(m, cfg)
}

// FromDistances prepares a Builder over a precomputed distance matrix.
//
// Errors:
//   - ErrBadThreshold for a negative or NaN threshold.
func FromDistances(m *metric.Matrix, opts ...Option) (*Builder, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if m == nil {
		m = metric.NewMatrix(0)
	}

	return newBuilder(m, cfg)
}

func newBuilder(m *metric.Matrix, cfg Options) (*Builder, error) {
	t := cfg.Threshold
	if !cfg.HasThreshold {
		t = 1 + m.Max()
	}
	if math.IsNaN(t) || t < 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadThreshold, t)
	}

	b := &Builder{
		dist:      m,
		threshold: t,
		rep:       progress.OrNop(cfg.Reporter),
		lower:     make([][]simplex.Vertex, m.N()),
	}
	for u := 0; u < m.N(); u++ {
		for v := 0; v < u; v++ {
			if b.admissible(u, v) {
				b.lower[u] = append(b.lower[u], v)
			}
		}
	}

	return b, nil
}

// Threshold returns the admissibility bound in effect.
func (b *Builder) Threshold() float64 { return b.threshold }

// Distances returns the pairwise distance matrix.
func (b *Builder) Distances() *metric.Matrix { return b.dist }

// Len returns the number of points.
func (b *Builder) Len() int { return b.dist.N() }

func (b *Builder) admissible(u, v int) bool {
	return b.dist.MustAt(u, v) < b.threshold
}

// Edges returns the 1-skeleton: every admissible pair, ordered by (U, V).
func (b *Builder) Edges() []Edge {
	var out []Edge
	for v := 0; v < b.dist.N(); v++ {
		for u := v + 1; u < b.dist.N(); u++ {
			if b.admissible(u, v) {
				out = append(out, Edge{U: v, V: u, Length: b.dist.MustAt(u, v)})
			}
		}
	}

	return out
}

// ComputeSkeleton builds the Rips filtration with simplices of at most
// maxSize vertices (maxSize ≤ 0 means the number of points).
//
// Steps:
//  1. Insert every vertex at degree 0.
//  2. If maxSize ≥ 2, insert every admissible edge at its length.
//  3. For k = 2 … maxSize-1, extend each k-simplex by its lower neighbours;
//     the extension's degree is the max degree of its faces.
//
// Complexity: see the package documentation.
func (b *Builder) ComputeSkeleton(maxSize int) (*filtration.Complex, error) {
	n := b.dist.N()
	if maxSize <= 0 {
		maxSize = n
	}
	c := filtration.New(filtration.WithReporter(b.rep))

	for v := 0; v < n; v++ {
		if err := c.InsertVertices([]simplex.Vertex{v}, 0); err != nil {
			return nil, err
		}
	}
	if maxSize < 2 {
		return c, nil
	}

	b.rep.Begin(StageEdges, n)
	var level []simplex.Simplex
	for u := 0; u < n; u++ {
		for _, v := range b.lower[u] {
			e := simplex.MustNew(v, u)
			if err := c.Insert(e, b.dist.MustAt(u, v)); err != nil {
				return nil, err
			}
			level = append(level, e)
		}
	}
	b.rep.End(StageEdges, len(level))

	for k := 2; k < maxSize && len(level) > 0; k++ {
		b.rep.Begin(StageExpand, len(level))
		var next []simplex.Simplex
		for _, l := range level {
			for _, v := range b.lowerNeighbours(l) {
				s, err := l.With(v)
				if err != nil {
					return nil, err
				}
				if err = c.Insert(s, b.degree(c, s)); err != nil {
					return nil, err
				}
				next = append(next, s)
			}
		}
		b.rep.End(StageExpand, len(next))
		b.rep.Note("clique level built", "size", k+1, "simplices", len(next))
		level = next
	}

	return c, nil
}

// lowerNeighbours returns the vertices v < min(l) admissible to every vertex of l.
func (b *Builder) lowerNeighbours(l simplex.Simplex) []simplex.Vertex {
	var out []simplex.Vertex
	for _, v := range b.lower[l.Min()] {
		ok := true
		for i := 1; i < l.Size(); i++ {
			if !b.admissible(l.Vertex(i), v) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, v)
		}
	}

	return out
}

// degree is the maximum degree among the faces of s. Faces already in c are
// read back; a missing face falls back to its largest pairwise distance.
func (b *Builder) degree(c *filtration.Complex, s simplex.Simplex) float64 {
	var mx float64
	for _, f := range s.Faces() {
		d := c.Degree(f)
		if d == filtration.NotPresent {
			d = b.diameter(f)
		}
		mx = math.Max(mx, d)
	}

	return mx
}

// diameter is the largest pairwise distance among the vertices of s.
func (b *Builder) diameter(s simplex.Simplex) float64 {
	vs := s.Vertices()
	var mx float64
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			mx = math.Max(mx, b.dist.MustAt(vs[i], vs[j]))
		}
	}

	return mx
}
