// SPDX-License-Identifier: MIT

package chain

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// Chain is a formal sum of keys with coefficients in a prime field.
// Chains are value-like: every operation except AddScaled returns a new Chain.
type Chain[K comparable] struct {
	field  Field
	coeffs map[K]int // coefficient in [1, p); zeros are never stored
}

// Term is a single (key, coefficient) summand used to build chains.
type Term[K comparable] struct {
	Key   K
	Coeff int
}

// Zero returns the empty chain over f.
func Zero[K comparable](f Field) Chain[K] {
	return Chain[K]{field: f, coeffs: make(map[K]int)}
}

// Of builds a chain from terms, summing repeated keys and dropping zeros.
func Of[K comparable](f Field, terms ...Term[K]) Chain[K] {
	c := Chain[K]{field: f, coeffs: make(map[K]int, len(terms))}
	for _, t := range terms {
		c.addTerm(t.Key, f.Reduce(t.Coeff))
	}

	return c
}

// Field returns the coefficient field of c.
func (c Chain[K]) Field() Field { return c.field }

// Len returns the number of non-zero terms.
func (c Chain[K]) Len() int { return len(c.coeffs) }

// IsEmpty reports whether every coefficient is zero.
func (c Chain[K]) IsEmpty() bool { return len(c.coeffs) == 0 }

// Coefficient returns the coefficient of k, 0 if absent.
func (c Chain[K]) Coefficient(k K) int { return c.coeffs[k] }

// Keys returns the keys carrying a non-zero coefficient, in unspecified order.
func (c Chain[K]) Keys() []K {
	out := make([]K, 0, len(c.coeffs))
	for k := range c.coeffs {
		out = append(out, k)
	}

	return out
}

// Range calls fn for every non-zero term until fn returns false.
func (c Chain[K]) Range(fn func(k K, coeff int) bool) {
	for k, v := range c.coeffs {
		if !fn(k, v) {
			return
		}
	}
}

// Clone returns an independent copy of c.
func (c Chain[K]) Clone() Chain[K] {
	out := Chain[K]{field: c.field, coeffs: make(map[K]int, len(c.coeffs))}
	maps.Copy(out.coeffs, c.coeffs)

	return out
}

// Add returns c + o.
func (c Chain[K]) Add(o Chain[K]) Chain[K] {
	mustCompatible(c, o)
	out := c.Clone()
	for k, v := range o.coeffs {
		out.addTerm(k, v)
	}

	return out
}

// Neg returns -c.
func (c Chain[K]) Neg() Chain[K] {
	out := Chain[K]{field: c.field, coeffs: make(map[K]int, len(c.coeffs))}
	for k, v := range c.coeffs {
		out.coeffs[k] = c.field.Neg(v)
	}

	return out
}

// Sub returns c - o.
func (c Chain[K]) Sub(o Chain[K]) Chain[K] { return c.Add(o.Neg()) }

// Scale returns a·c; scaling by a multiple of p yields the empty chain.
func (c Chain[K]) Scale(a int) Chain[K] {
	out := Chain[K]{field: c.field, coeffs: make(map[K]int, len(c.coeffs))}
	for k, v := range c.coeffs {
		if x := c.field.Mul(a, v); x != 0 {
			out.coeffs[k] = x
		}
	}

	return out
}

// AddScaled performs c ← c + a·o in place and prunes cancelled terms.
// It is the hot path of boundary reduction and avoids the intermediate
// allocations of Add(o.Scale(a)).
func (c *Chain[K]) AddScaled(o Chain[K], a int) {
	mustCompatible(*c, o)
	a = c.field.Reduce(a)
	if a == 0 {
		return
	}
	if c.coeffs == nil {
		c.coeffs = make(map[K]int, len(o.coeffs))
	}
	for k, v := range o.coeffs {
		c.addTerm(k, c.field.Mul(a, v))
	}
}

// Restrict drops every term whose key fails keep.
func (c Chain[K]) Restrict(keep func(K) bool) Chain[K] {
	out := Chain[K]{field: c.field, coeffs: make(map[K]int, len(c.coeffs))}
	for k, v := range c.coeffs {
		if keep(k) {
			out.coeffs[k] = v
		}
	}

	return out
}

// Equal reports whether c and o have the same field and coefficients.
func (c Chain[K]) Equal(o Chain[K]) bool {
	return c.field == o.field && maps.Equal(c.coeffs, o.coeffs)
}

// String renders the chain as "c1*k1 + c2*k2", terms sorted by their
// printed key for determinism; the empty chain prints as "0".
func (c Chain[K]) String() string {
	if len(c.coeffs) == 0 {
		return "0"
	}
	parts := make([]string, 0, len(c.coeffs))
	for k, v := range c.coeffs {
		parts = append(parts, fmt.Sprintf("%d*%v", v, k))
	}
	sort.Strings(parts)

	return strings.Join(parts, " + ")
}

// addTerm adds v (already reduced) to the coefficient of k.
func (c *Chain[K]) addTerm(k K, v int) {
	if v == 0 {
		return
	}
	if s := c.field.Add(c.coeffs[k], v); s != 0 {
		c.coeffs[k] = s
	} else {
		delete(c.coeffs, k)
	}
}

// Compatible returns ErrFieldMismatch if a and b are over different fields.
func Compatible[K comparable](a, b Chain[K]) error {
	if a.field != b.field {
		return fmt.Errorf("%w: %v vs %v", ErrFieldMismatch, a.field, b.field)
	}

	return nil
}

func mustCompatible[K comparable](a, b Chain[K]) {
	if err := Compatible(a, b); err != nil {
		panic(err)
	}
}

// MaxKey returns the key of c with the greatest rank, together with that rank.
// ok is false for the empty chain.
//
// Complexity: O(Len(c)) rank evaluations.
func MaxKey[K comparable](c Chain[K], rank func(K) int) (key K, r int, ok bool) {
	r = -1
	for k := range c.coeffs {
		if kr := rank(k); !ok || kr > r {
			key, r, ok = k, kr, true
		}
	}

	return key, r, ok
}
