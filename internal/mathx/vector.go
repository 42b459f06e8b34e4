package mathx

import (
	apperrors "github.com/agbru/algobench/internal/errors"
)

// Vector is a caller-owned sequence of float64 elements. The zero value is
// an empty vector; NewVector allocates a zeroed vector of a given length.
type Vector []float64

// NewVector allocates a zero-filled vector of the given length.
func NewVector(n int) Vector {
	return make(Vector, n)
}

// Dot returns the dot product of a and b, or an InvalidInputError when the
// lengths differ.
//
// The accumulation loop is manually unrolled four ways with a scalar
// remainder loop. This is the single portable scalar path; hardware-specific
// vector acceleration is a reporting concern (see sysinfo), not part of the
// contract.
func (a Vector) Dot(b Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, apperrors.NewInvalidInputError("dot: length mismatch: %d vs %d", len(a), len(b))
	}

	var result float64
	i := 0
	for ; i+3 < len(a); i += 4 {
		result += a[i] * b[i]
		result += a[i+1] * b[i+1]
		result += a[i+2] * b[i+2]
		result += a[i+3] * b[i+3]
	}
	for ; i < len(a); i++ {
		result += a[i] * b[i]
	}
	return result, nil
}

// Cross returns the cross product a × b. It is defined only for vectors of
// length 3; any other length is an InvalidInputError.
func (a Vector) Cross(b Vector) (Vector, error) {
	if len(a) != 3 || len(b) != 3 {
		return nil, apperrors.NewInvalidInputError("cross: defined only for length 3, got %d and %d", len(a), len(b))
	}

	return Vector{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}, nil
}

// Magnitude returns the Euclidean norm of the vector, computed with the
// approximate Sqrt kernel.
func (a Vector) Magnitude() float64 {
	var sumSquares float64
	for _, v := range a {
		sumSquares += v * v
	}
	return Sqrt(sumSquares)
}

// Normalize scales the vector in place to unit magnitude. A zero vector is
// left unchanged.
func (a Vector) Normalize() {
	mag := a.Magnitude()
	if mag == 0 {
		return
	}
	for i := range a {
		a[i] /= mag
	}
}
