// Package lvtopo computes persistent homology of filtered simplicial
// complexes and point clouds.
//
// 🚀 What is lvtopo?
//
//	A small, single-threaded toolkit that takes a filtration (explicit, or
//	built from points by Vietoris–Rips) and returns the persistence
//	intervals of every homological dimension over a prime field GF(p):
//		• Simplices: sorted vertex sets with comparable keys
//		• Chains: sparse GF(p) linear combinations and the boundary map
//		• Filtrations: face-closed complexes with degrees and a total order
//		• Persistence: boundary-matrix reduction, intervals, Betti numbers
//		• Rips: clique expansion over a pairwise distance matrix
//		• Jobs: YAML in, text or JSON out, via the lvtopo command
//
// Under the hood:
//
//	simplex/     — Simplex, Key, faces and ordering
//	chain/       — Field, Chain[K], Boundary
//	metric/      — distance functions and the symmetric distance Matrix
//	filtration/  — Complex: insertion with face closure, order, validation
//	persistence/ — Engine: intervals, pairs, persistent Betti numbers
//	rips/        — Builder: Vietoris–Rips skeleton of a point cloud
//	progress/    — Reporter checkpoints, zap-backed or silent
//	job/         — YAML job files, Run, JSON/text results
//	cmd/lvtopo/  — the command-line driver
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╲ │
//	    3───2
//
//	a square whose diagonal {0,2} splits the hole in two; each triangle
//	kills one loop when it is filled in.
//
//	go run ./examples
package lvtopo
