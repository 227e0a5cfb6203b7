// SPDX-License-Identifier: MIT

package persistence

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvtopo/progress"
	"github.com/katalvlaran/lvtopo/simplex"
)

// Sentinel errors returned by the persistence engine.
var (
	// ErrNilComplex indicates New was given a nil complex.
	ErrNilComplex = errors.New("persistence: complex is nil")

	// ErrNotComputed indicates a query made before ComputeIntervals.
	ErrNotComputed = errors.New("persistence: intervals not computed")

	// ErrNegativePersistence indicates a negative persistence threshold.
	ErrNegativePersistence = errors.New("persistence: persistence threshold must be non-negative")
)

// Infinity is the death degree of an essential interval.
var Infinity = math.Inf(1)

// Interval is a persistence interval [Birth, Death).
type Interval struct {
	Birth float64
	Death float64
}

// IsEssential reports whether the feature never dies.
func (iv Interval) IsEssential() bool { return math.IsInf(iv.Death, 1) }

// Persistence returns Death - Birth (+Inf for essential intervals).
func (iv Interval) Persistence() float64 { return iv.Death - iv.Birth }

// Contains reports whether l lies in [Birth, Death).
func (iv Interval) Contains(l float64) bool { return iv.Birth <= l && l < iv.Death }

// String renders the interval as "[birth, death)" with "inf" for essential ones.
func (iv Interval) String() string {
	if iv.IsEssential() {
		return fmt.Sprintf("[%g, inf)", iv.Birth)
	}

	return fmt.Sprintf("[%g, %g)", iv.Birth, iv.Death)
}

// Pair records which simplex created a feature and which one destroyed it.
// HasDestroyer is false for essential features.
type Pair struct {
	Creator      simplex.Simplex
	Destroyer    simplex.Simplex
	HasDestroyer bool
}

// Dim returns the homological dimension of the paired feature.
func (p Pair) Dim() int { return p.Creator.Dim() }

// String renders "creator -> destroyer" or "creator -> inf".
func (p Pair) String() string {
	if !p.HasDestroyer {
		return fmt.Sprintf("%v -> inf", p.Creator)
	}

	return fmt.Sprintf("%v -> %v", p.Creator, p.Destroyer)
}

// Options configures an Engine.
//
// Field         – prime modulus of the coefficient field (default 2).
// Strict        – if true, zero-length intervals are discarded.
// Reporter      – checkpoint sink (default progress.Nop).
// ProgressEvery – reporter tick period in simplices; ≤ 0 disables ticks.
type Options struct {
	Field         int
	Strict        bool
	Reporter      progress.Reporter
	ProgressEvery int
}

// Option is a functional option for New.
type Option func(*Options)

// WithField selects GF(p). Primality is checked by New.
func WithField(p int) Option {
	return func(o *Options) { o.Field = p }
}

// WithStrict discards intervals whose birth equals their death.
func WithStrict() Option {
	return func(o *Options) { o.Strict = true }
}

// WithReporter installs a checkpoint sink.
func WithReporter(r progress.Reporter) Option {
	return func(o *Options) { o.Reporter = r }
}

// WithProgressEvery ticks the reporter every n simplices.
func WithProgressEvery(n int) Option {
	return func(o *Options) { o.ProgressEvery = n }
}

// DefaultOptions returns GF(2), non-strict, silent options.
func DefaultOptions() Options {
	return Options{
		Field:         2,
		Reporter:      progress.Nop,
		ProgressEvery: 1000,
	}
}
