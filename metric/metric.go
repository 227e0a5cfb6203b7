// SPDX-License-Identifier: MIT

package metric

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors. Every message is prefixed with "metric: ".
var (
	// ErrNaNInf signals a NaN or ±Inf distance or coordinate.
	ErrNaNInf = errors.New("metric: NaN or Inf encountered")

	// ErrNegativeDistance signals a distance function returned a value < 0.
	ErrNegativeDistance = errors.New("metric: negative distance")

	// ErrOutOfRange indicates a row or column index outside [0, n).
	ErrOutOfRange = errors.New("metric: index out of range")

	// ErrDimensionMismatch indicates points (or rows) of differing length.
	ErrDimensionMismatch = errors.New("metric: dimension mismatch")

	// ErrAsymmetry signals a precomputed matrix that is not symmetric within tolerance.
	ErrAsymmetry = errors.New("metric: matrix is not symmetric within tol")

	// ErrNonZeroDiagonal signals a precomputed matrix with a non-zero diagonal entry.
	ErrNonZeroDiagonal = errors.New("metric: diagonal not zero within tol")
)

// Func measures the distance between two points of equal length.
// It must be non-negative and symmetric; symmetry is not verified by Pairwise.
type Func func(a, b []float64) float64

// Euclidean returns the L2 distance.
func Euclidean(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}

	return math.Sqrt(s)
}

// Manhattan returns the L1 distance.
func Manhattan(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += math.Abs(a[i] - b[i])
	}

	return s
}

// Chebyshev returns the L∞ distance.
func Chebyshev(a, b []float64) float64 {
	var s float64
	for i := range a {
		s = math.Max(s, math.Abs(a[i]-b[i]))
	}

	return s
}

// ByName resolves "euclidean", "manhattan" or "chebyshev" (case-insensitive).
func ByName(name string) (Func, bool) {
	switch strings.ToLower(name) {
	case "", "euclidean", "l2":
		return Euclidean, true
	case "manhattan", "l1":
		return Manhattan, true
	case "chebyshev", "linf", "max":
		return Chebyshev, true
	}

	return nil, false
}

// Matrix is an n×n symmetric distance matrix in row-major storage.
//   - n is the number of points (0 allowed: the empty point cloud).
//   - data has length n*n; data[i*n+j] == data[j*n+i], diagonal is 0.
type Matrix struct {
	n    int
	data []float64
}

// NewMatrix returns an n×n zero matrix. Negative n is treated as 0.
func NewMatrix(n int) *Matrix {
	if n < 0 {
		n = 0
	}

	return &Matrix{n: n, data: make([]float64, n*n)}
}

// N returns the number of points.
func (m *Matrix) N() int { return m.n }

// At returns the distance between points i and j.
//
// Errors:
//   - ErrOutOfRange wrapped with the coordinates.
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("Matrix.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.data[i*m.n+j], nil
}

// MustAt is At without bounds reporting; it panics on a bad index.
// Intended for hot loops whose indices are already known to be valid.
func (m *Matrix) MustAt(i, j int) float64 { return m.data[i*m.n+j] }

// Set stores d at (i,j) and (j,i).
//
// Errors:
//   - ErrOutOfRange, ErrNaNInf, ErrNegativeDistance, ErrNonZeroDiagonal (i == j, d != 0).
func (m *Matrix) Set(i, j int, d float64) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return fmt.Errorf("Matrix.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if err := checkDistance(d); err != nil {
		return fmt.Errorf("Matrix.Set(%d,%d): %w", i, j, err)
	}
	if i == j && d != 0 {
		return fmt.Errorf("Matrix.Set(%d,%d): %w", i, j, ErrNonZeroDiagonal)
	}
	m.data[i*m.n+j] = d
	m.data[j*m.n+i] = d

	return nil
}

// Max returns the largest stored distance (0 for n ≤ 1).
func (m *Matrix) Max() float64 {
	var mx float64
	for _, d := range m.data {
		if d > mx {
			mx = d
		}
	}

	return mx
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.n {
		return nil, fmt.Errorf("Matrix.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]float64, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out, nil
}

// String prints one bracketed row per line.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.n; i++ {
		b.WriteString("[")
		for j := 0; j < m.n; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.n+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// Pairwise computes the distance matrix of points under fn.
//
// Implementation:
//   - Stage 1: verify every point has the same length and finite coordinates.
//   - Stage 2: evaluate fn on the strict upper triangle and mirror it.
//
// Errors:
//   - ErrDimensionMismatch, ErrNaNInf (coordinates or distances), ErrNegativeDistance.
//
// Complexity: O(n²) evaluations of fn, O(n²) memory.
func Pairwise(points [][]float64, fn Func) (*Matrix, error) {
	if fn == nil {
		fn = Euclidean
	}
	n := len(points)
	for i, p := range points {
		if len(p) != len(points[0]) {
			return nil, fmt.Errorf("point %d has %d coordinates, want %d: %w", i, len(p), len(points[0]), ErrDimensionMismatch)
		}
		for _, x := range p {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, fmt.Errorf("point %d: %w", i, ErrNaNInf)
			}
		}
	}

	m := NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := m.Set(i, j, fn(points[i], points[j])); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// FromRows validates a precomputed square distance matrix and copies it.
// tol bounds |A[i,j]-A[j,i]| and |A[i,i]|; the upper triangle is kept.
//
// Errors:
//   - ErrDimensionMismatch, ErrAsymmetry, ErrNonZeroDiagonal, ErrNaNInf, ErrNegativeDistance.
func FromRows(rows [][]float64, tol float64) (*Matrix, error) {
	n := len(rows)
	for i, r := range rows {
		if len(r) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(r), n, ErrDimensionMismatch)
		}
	}
	tol = math.Abs(tol)

	m := NewMatrix(n)
	for i := 0; i < n; i++ {
		if !(math.Abs(rows[i][i]) <= tol) {
			return nil, fmt.Errorf("entry (%d,%d): %w", i, i, ErrNonZeroDiagonal)
		}
		for j := i + 1; j < n; j++ {
			if d := rows[i][j] - rows[j][i]; !math.IsNaN(d) && math.Abs(d) > tol {
				return nil, fmt.Errorf("entries (%d,%d)/(%d,%d): %w", i, j, j, i, ErrAsymmetry)
			}
			if err := m.Set(i, j, rows[i][j]); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

func checkDistance(d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return ErrNaNInf
	}
	if d < 0 {
		return ErrNegativeDistance
	}

	return nil
}
