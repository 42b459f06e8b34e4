// This file defines the multiplication strategy abstraction. Each strategy
// implements the identical contract, given A (r×k) and B (k×c) return a
// freshly allocated r×c product, with a different traversal of the
// iteration space and therefore a different cost profile.
package matrix

import (
	apperrors "github.com/agbru/algobench/internal/errors"
)

// MultiplyStrategy is the interface all multiplication implementations
// share. Implementations are stateless and safe for sequential reuse; the
// comparison harness invokes each over identical caller-owned inputs.
type MultiplyStrategy interface {
	// Multiply computes A·B into a new matrix. A dimension mismatch
	// (a.Cols() != b.Rows()) returns a nil matrix and an
	// apperrors.DimensionError; nil operands return an InvalidInputError.
	// Zero-sized dimensions are valid and yield an empty result.
	Multiply(a, b *Matrix) (*Matrix, error)

	// Name returns the registry identifier of the strategy.
	Name() string
}

// checkOperands validates the shared multiplication preconditions and
// allocates the zeroed result matrix. Every strategy funnels through this
// so the failure policy stays identical across implementations.
func checkOperands(op string, a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, apperrors.NewInvalidInputError("%s: nil operand", op)
	}
	if a.cols != b.rows {
		return nil, apperrors.DimensionError{
			Op:        op,
			LeftRows:  a.rows, LeftCols: a.cols,
			RightRows: b.rows, RightCols: b.cols,
		}
	}
	return New(a.rows, b.cols)
}
