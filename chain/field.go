// SPDX-License-Identifier: MIT

package chain

import (
	"errors"
	"fmt"
)

// MaxModulus bounds the field size so that products of two residues fit in int64.
const MaxModulus = 1<<31 - 1

// Sentinel errors for field construction and chain arithmetic.
var (
	// ErrFieldNotPrime indicates a modulus that is not a prime number.
	ErrFieldNotPrime = errors.New("chain: field size is not prime")

	// ErrFieldTooLarge indicates a modulus above MaxModulus.
	ErrFieldTooLarge = errors.New("chain: field size too large")

	// ErrFieldMismatch indicates chains over different fields were combined.
	ErrFieldMismatch = errors.New("chain: field mismatch")
)

// Field is the prime field GF(p). The zero value is invalid; use NewField.
type Field struct {
	p int64
}

// NewField returns GF(p).
//
// Errors:
//   - ErrFieldNotPrime if p < 2 or p is composite.
//   - ErrFieldTooLarge if p > MaxModulus.
func NewField(p int) (Field, error) {
	if p > MaxModulus {
		return Field{}, fmt.Errorf("%w: %d", ErrFieldTooLarge, p)
	}
	if !isPrime(int64(p)) {
		return Field{}, fmt.Errorf("%w: %d", ErrFieldNotPrime, p)
	}

	return Field{p: int64(p)}, nil
}

// MustField is like NewField but panics on error.
func MustField(p int) Field {
	f, err := NewField(p)
	if err != nil {
		panic(err)
	}

	return f
}

// Size returns p.
func (f Field) Size() int { return int(f.p) }

// Reduce maps any integer into [0, p).
func (f Field) Reduce(x int) int {
	r := int64(x) % f.p
	if r < 0 {
		r += f.p
	}

	return int(r)
}

// Add returns a+b mod p.
func (f Field) Add(a, b int) int { return f.Reduce(a + b) }

// Neg returns -a mod p.
func (f Field) Neg(a int) int { return f.Reduce(-a) }

// Mul returns a·b mod p.
func (f Field) Mul(a, b int) int {
	return int((int64(f.Reduce(a)) * int64(f.Reduce(b))) % f.p)
}

// Inv returns the multiplicative inverse of a, computed as a^(p-2) mod p.
// Inv(0) returns 0.
func (f Field) Inv(a int) int {
	if f.Reduce(a) == 0 {
		return 0
	}

	return f.Pow(a, int(f.p-2))
}

// Pow returns a^e mod p by square-and-multiply; e must be ≥ 0.
func (f Field) Pow(a, e int) int {
	base := int64(f.Reduce(a))
	res := int64(1) % f.p
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			res = res * base % f.p
		}
		base = base * base % f.p
	}

	return int(res)
}

// String renders the field as "GF(p)".
func (f Field) String() string { return fmt.Sprintf("GF(%d)", f.p) }

// isPrime is a plain trial division; moduli are small in practice.
func isPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := int64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}
