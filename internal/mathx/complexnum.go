package mathx

import "math"

// Complex is a pure value type holding a complex number as a (real, imag)
// pair. No ownership concerns apply; all operations return new values.
type Complex struct {
	Real float64
	Imag float64
}

// Add returns a + b.
func (a Complex) Add(b Complex) Complex {
	return Complex{Real: a.Real + b.Real, Imag: a.Imag + b.Imag}
}

// Mul returns the complex product a * b.
func (a Complex) Mul(b Complex) Complex {
	return Complex{
		Real: a.Real*b.Real - a.Imag*b.Imag,
		Imag: a.Real*b.Imag + a.Imag*b.Real,
	}
}

// Div returns a / b. Division by zero follows the sentinel policy of the
// approximation kernels: both components become +Inf rather than NaN.
func (a Complex) Div(b Complex) Complex {
	denom := b.Real*b.Real + b.Imag*b.Imag
	if denom == 0 {
		return Complex{Real: math.Inf(1), Imag: math.Inf(1)}
	}
	return Complex{
		Real: (a.Real*b.Real + a.Imag*b.Imag) / denom,
		Imag: (a.Imag*b.Real - a.Real*b.Imag) / denom,
	}
}

// Magnitude returns |a|, computed with the approximate Sqrt kernel so the
// whole demo stack exercises the same approximation path.
func (a Complex) Magnitude() float64 {
	return Sqrt(a.Real*a.Real + a.Imag*a.Imag)
}

// Pow returns a^n using binary exponentiation. Negative exponents return
// the reciprocal of the positive power, with Div's division-by-zero
// sentinel applying when a is zero.
func (a Complex) Pow(n int) Complex {
	if n == 0 {
		return Complex{Real: 1}
	}
	if n == 1 {
		return a
	}

	result := Complex{Real: 1}
	base := a
	exp := n
	if exp < 0 {
		exp = -exp
	}

	for exp > 0 {
		if exp%2 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp /= 2
	}

	if n < 0 {
		return Complex{Real: 1}.Div(result)
	}
	return result
}
