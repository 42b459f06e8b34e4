// Package matrix provides the dense row-major matrix container and the
// interchangeable multiplication strategies compared by the benchmark
// harness. Every strategy computes the identical mathematical product at a
// different cost; the only permitted divergence between their outputs is
// floating-point summation order.
package matrix

import (
	"fmt"
	"math/rand"
	"strings"

	apperrors "github.com/agbru/algobench/internal/errors"
)

// Matrix owns a flat row-major sequence of float64 elements.
// Invariant: len(data) == rows*cols. Instances never alias each other's
// backing storage; Clone and the multiply strategies always allocate fresh
// results owned by the caller.
type Matrix struct {
	rows, cols int
	data       []float64
}

// New allocates a zeroed rows×cols matrix. Zero-sized dimensions are
// permitted and yield a valid empty matrix; negative dimensions are an
// InvalidInputError.
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, apperrors.NewInvalidInputError("matrix: negative dimensions %dx%d", rows, cols)
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// MustNew is New for dimensions known to be valid; it panics otherwise.
// Intended for tests and demo wiring with literal dimensions.
func MustNew(rows, cols int) *Matrix {
	m, err := New(rows, cols)
	if err != nil {
		panic(err)
	}
	return m
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 { return m.data[i*m.cols+j] }

// Set assigns the element at row i, column j.
func (m *Matrix) Set(i, j int, v float64) { m.data[i*m.cols+j] = v }

// FillRandom fills the matrix with values in [0, 100) drawn from rnd.
// The random source is passed explicitly so fills are deterministic under
// a fixed seed and independent of wall-clock state.
func (m *Matrix) FillRandom(rnd *rand.Rand) {
	for i := range m.data {
		m.data[i] = rnd.Float64() * 100
	}
}

// FillIdentity zeroes the matrix and sets the main diagonal to 1.
// It is a no-op for non-square matrices.
func (m *Matrix) FillIdentity() {
	if m.rows != m.cols {
		return
	}
	for i := range m.data {
		m.data[i] = 0
	}
	for i := 0; i < m.rows; i++ {
		m.data[i*m.cols+i] = 1
	}
}

// Sum returns the sum of all elements. The comparison harness uses this
// aggregate to cross-check strategies within a small absolute tolerance.
func (m *Matrix) Sum() float64 {
	var sum float64
	for _, v := range m.data {
		sum += v
	}
	return sum
}

// Transpose transposes a square matrix in place. It is a no-op for
// non-square matrices.
func (m *Matrix) Transpose() {
	if m.rows != m.cols {
		return
	}
	for i := 0; i < m.rows; i++ {
		for j := i + 1; j < m.cols; j++ {
			m.data[i*m.cols+j], m.data[j*m.cols+i] = m.data[j*m.cols+i], m.data[i*m.cols+j]
		}
	}
}

// Clone returns a deep copy with freshly allocated backing storage.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	copy(c.data, m.data)
	return c
}

// EqualWithin reports whether m and other have identical dimensions and
// element-wise differences no larger than tolerance.
func (m *Matrix) EqualWithin(other *Matrix, tolerance float64) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		diff := v - other.data[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > tolerance {
			return false
		}
	}
	return true
}

// String renders the matrix for demo output. Large matrices render only
// their dimensions to keep terminals readable.
func (m *Matrix) String() string {
	const renderLimit = 16
	if m.rows > renderLimit || m.cols > renderLimit {
		return fmt.Sprintf("Matrix [%d x %d]", m.rows, m.cols)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Matrix [%d x %d]:\n", m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			fmt.Fprintf(&sb, "%8.3f ", m.At(i, j))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
