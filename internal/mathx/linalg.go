package mathx

import (
	"math"

	apperrors "github.com/agbru/algobench/internal/errors"
)

// pivotEpsilon is the magnitude below which a pivot is treated as zero,
// marking the system as singular.
const pivotEpsilon = 1e-10

// Dense is a square matrix stored as a single contiguous arena with
// row-stride indexing. Compared to a slice-of-slices layout this needs one
// allocation, keeps rows adjacent in memory, and makes ownership trivial:
// whoever created the Dense owns its whole arena.
type Dense struct {
	n    int
	data []float64
}

// NewDense allocates an n×n zero matrix. n of 0 yields a valid empty matrix.
func NewDense(n int) *Dense {
	return &Dense{n: n, data: make([]float64, n*n)}
}

// Size returns the edge length n of the n×n matrix.
func (d *Dense) Size() int { return d.n }

// At returns the element at row i, column j.
func (d *Dense) At(i, j int) float64 { return d.data[i*d.n+j] }

// Set assigns the element at row i, column j.
func (d *Dense) Set(i, j int, v float64) { d.data[i*d.n+j] = v }

// Determinant computes the determinant by cofactor expansion along the
// first row. O(n!) cost; intended for the small systems the demo driver
// builds, not for production linear algebra.
func (d *Dense) Determinant() float64 {
	n := d.n
	if n == 0 {
		return 1
	}
	if n == 1 {
		return d.At(0, 0)
	}
	if n == 2 {
		return d.At(0, 0)*d.At(1, 1) - d.At(0, 1)*d.At(1, 0)
	}

	det := 0.0
	sub := NewDense(n - 1)
	for col := 0; col < n; col++ {
		// Fill the minor of element (0, col).
		for i := 1; i < n; i++ {
			dst := 0
			for j := 0; j < n; j++ {
				if j == col {
					continue
				}
				sub.Set(i-1, dst, d.At(i, j))
				dst++
			}
		}
		sign := 1.0
		if col%2 == 1 {
			sign = -1
		}
		det += sign * d.At(0, col) * sub.Determinant()
	}
	return det
}

// SolveLinear solves the system A·x = b by Gaussian elimination with
// partial pivoting, returning the solution vector.
//
// The augmented system is built in a fresh arena so A and b are never
// mutated. A singular (or numerically singular) matrix is an
// InvalidInputError; no partial result escapes on the failure path.
func SolveLinear(a *Dense, b Vector) (Vector, error) {
	n := a.Size()
	if len(b) != n {
		return nil, apperrors.NewInvalidInputError("solve: matrix is %dx%d but vector has length %d", n, n, len(b))
	}
	if n == 0 {
		return Vector{}, nil
	}

	// Augmented matrix [A | b] with row stride n+1.
	stride := n + 1
	aug := make([]float64, n*stride)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			aug[i*stride+j] = a.At(i, j)
		}
		aug[i*stride+n] = b[i]
	}

	// Forward elimination with partial pivoting.
	for i := 0; i < n; i++ {
		maxRow := i
		for k := i + 1; k < n; k++ {
			if math.Abs(aug[k*stride+i]) > math.Abs(aug[maxRow*stride+i]) {
				maxRow = k
			}
		}
		if maxRow != i {
			for j := 0; j < stride; j++ {
				aug[i*stride+j], aug[maxRow*stride+j] = aug[maxRow*stride+j], aug[i*stride+j]
			}
		}

		pivot := aug[i*stride+i]
		if math.Abs(pivot) < pivotEpsilon {
			return nil, apperrors.NewInvalidInputError("solve: singular matrix (pivot %g at row %d)", pivot, i)
		}

		for k := i + 1; k < n; k++ {
			factor := aug[k*stride+i] / pivot
			for j := i; j < stride; j++ {
				aug[k*stride+j] -= factor * aug[i*stride+j]
			}
		}
	}

	// Back substitution.
	x := make(Vector, n)
	for i := n - 1; i >= 0; i-- {
		x[i] = aug[i*stride+n]
		for j := i + 1; j < n; j++ {
			x[i] -= aug[i*stride+j] * x[j]
		}
		x[i] /= aug[i*stride+i]
	}
	return x, nil
}

// IntegrateSimpson approximates the integral of f over [a, b] using
// Simpson's rule with n subintervals. Odd n is rounded up to the next even
// value, matching the rule's pairing requirement.
func IntegrateSimpson(f func(float64) float64, a, b float64, n int) float64 {
	if n <= 0 {
		n = 2
	}
	if n%2 != 0 {
		n++
	}

	h := (b - a) / float64(n)
	sum := f(a) + f(b)

	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 0 {
			sum += 2 * f(x)
		} else {
			sum += 4 * f(x)
		}
	}
	return sum * h / 3
}
