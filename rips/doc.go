// SPDX-License-Identifier: MIT

// Package rips builds the Vietoris–Rips filtration of a finite point cloud.
//
// A set of k points spans a simplex iff every pair of them is closer than
// the threshold; the simplex enters the filtration at the largest pairwise
// distance among its vertices. Vertices enter at 0.
//
// Construction:
//
//  1. Pairwise distances via metric.Pairwise (or a caller-supplied matrix).
//  2. Every point is a vertex at degree 0; every pair at distance < threshold
//     is an edge at degree = distance.
//  3. For sizes k = 2 … maxSize-1, every k-simplex l is extended by each of
//     its lower neighbours: vertices v < min(l) admissible to all of l.
//     The new simplex takes the maximum degree of its faces.
//
// The lower-neighbour rule visits every clique exactly once (from its
// smallest vertex), and every subset of a clique is a clique, so all faces
// are already in the complex when a simplex is formed.
//
// Options:
//
//	WithDistance(fn)  — distance function (default metric.Euclidean).
//	WithThreshold(t)  — admissibility bound; default 1 + max distance.
//	WithReporter(r)   — checkpoints for the edge and expansion passes.
//
// Complexity:
//
//   - Distances: O(n²) time and space.
//   - Expansion: O(Σ_k |K_k|·n·k) where K_k are the k-cliques.
package rips
