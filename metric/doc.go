// SPDX-License-Identifier: MIT

// Package metric provides distance functions over numeric points and a dense,
// symmetric pairwise-distance matrix.
//
// The matrix is the dominant memory cost of a Vietoris–Rips build: n points
// need n² float64 cells, stored row-major (offset = i*n + j) so that a row
// scan in lower-neighbour search is cache-friendly.
//
//   - Distance functions: Euclidean (default), Manhattan, Chebyshev.
//   - Pairwise(points, fn) computes the upper triangle and mirrors it.
//   - FromRows(rows, tol) ingests a precomputed matrix and validates it.
//
// Numeric policy: NaN, ±Inf and negative distances are rejected at ingestion.
//
// Complexity quicksheet:
//   - Pairwise: O(n²·d) time, O(n²) space; At/Set: O(1).
package metric
