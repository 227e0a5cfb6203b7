// SPDX-License-Identifier: MIT

// Package filtration implements the filtered simplicial complex: a set of
// simplices, each bound to the degree (filtration value) at which it appears.
//
// Invariant:
//
//	Every face of a stored simplex is stored too, with a degree no greater than
//	the simplex's own degree.
//
// Insert is the single mutation primitive and maintains the invariant:
//   - an absent simplex is stored together with any missing faces, which
//     receive the same degree (closure is computed with an explicit work-list);
//   - a present simplex with a higher degree is lowered, and the lowering is
//     cascaded to every face whose degree would otherwise exceed it;
//   - a present simplex with a lower or equal degree is left untouched.
//
// Lowering never breaks the invariant for cofaces: their degree is at least
// the old degree, which is greater than the new one.
//
// Storage is an arena: simplices are addressed by a dense slot index, and
// AssignOrder computes the filtration order (size, degree, simplex order)
// together with O(1) simplex → position lookups. Once a persistence engine
// has taken a snapshot, the complex is sealed and further inserts fail with
// ErrSealed.
//
// Errors:
//
//	ErrBadDegree            — degree is negative, NaN or ±Inf.
//	ErrSealed               — insert after the complex was handed to an engine.
//	ErrFiltrationViolation  — reported by Validate.
//	ErrOutOfRange           — At called with an invalid position.
package filtration
