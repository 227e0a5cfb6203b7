// SPDX-License-Identifier: MIT

// Package chain implements formal sums of simplices with coefficients in the
// prime field GF(p), and the simplicial boundary operator.
//
// A Chain[K] maps keys (simplex keys, or dense simplex positions once a
// filtered complex has assigned them) to non-zero coefficients. Absent keys
// have coefficient 0 and explicit zeros are never stored. Every chain carries
// its Field; arithmetic between chains over different fields is a programmer
// error and panics with ErrFieldMismatch.
//
// Boundary:
//
//	∂[v0 … vk] = Σ (-1)^i [v0 … v̂i … vk]   (mod p)
//	∂[v]       = 0
//
// The operator satisfies ∂∘∂ = 0 for every prime p.
//
// Usage:
//
//	f, _ := chain.NewField(3)
//	d := chain.Boundary(simplex.MustNew(0, 1, 2), f) // [1 2] - [0 2] + [0 1]
//	dd, _ := chain.BoundaryOf(d)                     // empty
//
// Errors:
//
//	ErrFieldNotPrime  — modulus < 2 or composite.
//	ErrFieldTooLarge  — modulus exceeds MaxModulus.
//	ErrFieldMismatch  — operands over different fields.
package chain
