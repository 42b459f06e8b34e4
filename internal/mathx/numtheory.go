package mathx

// This file contains the exact integer number-theory routines. Unlike the
// approximation kernels in approx.go these are exact for every input they
// accept; the interesting property is their cost profile, which the
// comparison harness exploits (FibonacciNaive is the deliberate slow
// baseline against FibonacciFast).

// Factorial computes n! using an iterative product in a float64 accumulator.
// The wide accumulator tolerates overflow for large n by saturating to +Inf
// instead of wrapping.
//
// Sentinel policy: negative n returns 0; n of 0 or 1 returns 1.
func Factorial(n int) float64 {
	if n < 0 {
		return 0
	}
	if n <= 1 {
		return 1
	}

	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result
}

// IsPrime reports whether n is prime using 6k±1 trial division up to √n.
// Runs in O(√n) with a constant factor three times better than testing
// every candidate divisor.
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// GCD computes the greatest common divisor of a and b using the iterative
// Euclidean algorithm. GCD(0, 0) is 0 by convention.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM computes the least common multiple of a and b. It divides before
// multiplying to keep intermediate values small. LCM with 0 is 0.
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	return (a / GCD(a, b)) * b
}

// FibonacciNaive computes F(n) by direct exponential recursion. It exists
// as the deliberately slow comparison baseline for the benchmark harness;
// do not "fix" it. For all n where it completes in reasonable time it
// returns exactly the same value as FibonacciFast.
func FibonacciNaive(n uint) uint64 {
	if n <= 1 {
		return uint64(n)
	}
	return FibonacciNaive(n-1) + FibonacciNaive(n-2)
}

// FibonacciFast computes F(n) iteratively in O(n). Valid for n up to 93,
// the largest index whose Fibonacci number fits in a uint64.
func FibonacciFast(n uint) uint64 {
	if n <= 1 {
		return uint64(n)
	}

	var a, b uint64 = 0, 1
	for i := uint(2); i <= n; i++ {
		a, b = b, a+b
	}
	return b
}
