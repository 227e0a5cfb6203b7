// SPDX-License-Identifier: MIT

// Package persistence computes persistent homology of a filtered complex with
// the Zomorodian–Carlsson boundary-matrix reduction over GF(p).
//
// What is computed?
//
//	For every homological dimension k, a list of intervals [birth, death)
//	of filtration degrees over which a k-dimensional feature (component,
//	loop, void, …) exists. Features that never die are "essential" and carry
//	Death = +Inf (see Infinity).
//
// Algorithm outline:
//
//  1. Snapshot the complex in filtration order; positions are dense indices.
//  2. Pass 1, ascending position j with simplex s:
//     d ← ∂s restricted to marked faces;
//     while d ≠ 0 and the max-position face t of d has a stored pivot chain c:
//     d ← d − d[t]·c[t]⁻¹·c
//     d = 0 → mark s; else store (s, d) as the pivot at t and record the
//     interval (deg t, deg s) in dimension dim t.
//  3. Pass 2: every marked simplex without a pivot entry starts an essential
//     interval (deg s, +Inf).
//
// Complexity:
//
//   - Time:  O(n³) worst case for n simplices; position lookups are O(1).
//   - Space: O(n + Σ|pivot chains|).
//
// Options:
//
//	WithField(p)         — coefficient field GF(p), p prime (default 2).
//	WithStrict()         — drop zero-length intervals (birth == death).
//	WithReporter(r)      — receive pass checkpoints.
//	WithProgressEvery(n) — tick the reporter every n simplices.
//
// Errors (sentinel):
//
//	ErrNilComplex            — New got a nil complex.
//	ErrNotComputed           — query before ComputeIntervals.
//	ErrNegativePersistence   — BettiNumber with persistence < 0.
//	chain.ErrFieldNotPrime   — WithField got a non-prime.
//	filtration.ErrFiltrationViolation — snapshot failed validation.
//
// Example usage:
//
//	eng, err := persistence.New(c, persistence.WithField(3))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	eng.ComputeIntervals()
//	h1, _ := eng.Intervals(1)
package persistence
