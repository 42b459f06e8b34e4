// Package mathx provides the scalar approximation kernels and exact integer
// number-theory routines used by the comparison engine. The approximations
// are intentionally lossy, tuned for benchmark demonstration rather than
// IEEE-correct results; each function documents its sentinel policies and
// precision boundaries.
//
// All kernels are pure: they take scalars, return scalars, perform no
// allocation and have no side effects.
package mathx

import "math"

const (
	// SqrtEpsilon is the convergence threshold for Newton-Raphson square
	// root iteration: the loop stops once successive guesses differ by less.
	SqrtEpsilon = 1e-10

	// sqrtMaxIterations caps the Newton-Raphson loop. Convergence is
	// quadratic for positive finite inputs, so the cap is never reached in
	// practice; it guards against pathological non-finite inputs.
	sqrtMaxIterations = 200

	// trigTaylorTerms is the number of Taylor series terms summed by Sin
	// and Cos after range reduction.
	trigTaylorTerms = 10

	// expTaylorTerms is the maximum number of Taylor series terms summed
	// by Exp before the early-exit check wins.
	expTaylorTerms = 20

	// expTermEpsilon is the early-exit threshold for Exp: once a term's
	// magnitude drops below it, further terms cannot move the sum.
	expTermEpsilon = 1e-15

	// expOverflowBound is the input magnitude beyond which Exp saturates
	// to +Inf (positive inputs) or 0 (negative inputs).
	expOverflowBound = 700

	// logSeriesTerms is the number of artanh series terms summed by Log.
	logSeriesTerms = 20
)

// Sqrt approximates the square root of x using Newton-Raphson iteration
// starting from x/2, stopping once successive guesses differ by less than
// SqrtEpsilon.
//
// Sentinel policy: for x <= 0 the function returns 0. Negative inputs are
// not an error; the caller gets a well-defined value instead of a NaN.
func Sqrt(x float64) float64 {
	if x <= 0 {
		return 0
	}

	guess := x / 2
	for i := 0; i < sqrtMaxIterations; i++ {
		next := (guess + x/guess) / 2
		if math.Abs(next-guess) <= SqrtEpsilon {
			return next
		}
		guess = next
	}
	return guess
}

// reduceToPi folds x into [-π, π] by repeated addition or subtraction of 2π.
// This linear reduction is accurate for inputs within a few multiples of 2π
// and degrades for large magnitudes, where each subtraction loses relative
// precision. Known precision boundary, kept to match the reference kernels.
func reduceToPi(x float64) float64 {
	for x > math.Pi {
		x -= 2 * math.Pi
	}
	for x < -math.Pi {
		x += 2 * math.Pi
	}
	return x
}

// Sin approximates sin(x) with a 10-term truncated Taylor series after
// reducing x into [-π, π]. Accuracy degrades for inputs far outside a few
// multiples of 2π; see reduceToPi.
func Sin(x float64) float64 {
	x = reduceToPi(x)

	x2 := x * x
	result := x
	term := x

	// sin(x) = x - x³/3! + x⁵/5! - x⁷/7! + ...
	for i := 1; i <= trigTaylorTerms; i++ {
		term *= -x2 / float64((2*i)*(2*i+1))
		result += term
	}
	return result
}

// Cos approximates cos(x) with a 10-term truncated Taylor series after
// reducing x into [-π, π]. Shares Sin's large-magnitude precision boundary.
func Cos(x float64) float64 {
	x = reduceToPi(x)

	x2 := x * x
	result := 1.0
	term := 1.0

	// cos(x) = 1 - x²/2! + x⁴/4! - x⁶/6! + ...
	for i := 1; i <= trigTaylorTerms; i++ {
		term *= -x2 / float64((2*i-1)*(2*i))
		result += term
	}
	return result
}

// Exp approximates e^x with a Taylor series of at most 20 terms, exiting
// early once a term's magnitude drops below 1e-15.
//
// Sentinel policy: inputs above +700 saturate to +Inf and inputs below -700
// saturate to 0, preventing float64 overflow inside the series.
func Exp(x float64) float64 {
	if x > expOverflowBound {
		return math.Inf(1)
	}
	if x < -expOverflowBound {
		return 0
	}

	result := 1.0
	term := 1.0
	for i := 1; i <= expTaylorTerms; i++ {
		term *= x / float64(i)
		result += term
		if math.Abs(term) < expTermEpsilon {
			break
		}
	}
	return result
}

// Log approximates the natural logarithm of x using the identity
// ln(x) = 2·artanh((x-1)/(x+1)) with a 20-term series expansion of artanh.
//
// Sentinel policy: x <= 0 returns -Inf and x == 1 returns exactly 0.
func Log(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	if x == 1 {
		return 0
	}

	y := (x - 1) / (x + 1)
	y2 := y * y
	result := y
	term := y

	// artanh(y) = y + y³/3 + y⁵/5 + ...
	for i := 1; i <= logSeriesTerms; i++ {
		term *= y2
		result += term / float64(2*i+1)
	}
	return 2 * result
}
