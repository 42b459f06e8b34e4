package mathx

import (
	"math"
	"testing"
)

// knownFibResults is a test oracle of Fibonacci values used to validate
// both the fast and the deliberately slow implementations.
var knownFibResults = []struct {
	n    uint
	want uint64
}{
	{0, 0}, {1, 1}, {2, 1}, {3, 2}, {10, 55}, {15, 610},
	{20, 6765}, {30, 832040}, {40, 102334155},
	{92, 7540113804746346429},
	{93, 12200160415121876738}, // Max index fitting in uint64
}

func TestFibonacciFast(t *testing.T) {
	t.Parallel()
	for _, tc := range knownFibResults {
		if got := FibonacciFast(tc.n); got != tc.want {
			t.Errorf("FibonacciFast(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

// TestFibonacciAgreement checks that the exponential recursive baseline and
// the iterative implementation produce identical results on the range where
// the naive version completes quickly.
func TestFibonacciAgreement(t *testing.T) {
	t.Parallel()
	for n := uint(0); n <= 30; n++ {
		naive := FibonacciNaive(n)
		fast := FibonacciFast(n)
		if naive != fast {
			t.Errorf("F(%d): naive = %d, fast = %d", n, naive, fast)
		}
	}
}

func TestIsPrime(t *testing.T) {
	t.Parallel()

	primes := []int64{2, 3, 5, 7, 11, 13, 17, 97, 101, 7919, 104729}
	for _, p := range primes {
		if !IsPrime(p) {
			t.Errorf("IsPrime(%d) = false, want true", p)
		}
	}

	composites := []int64{-7, 0, 1, 4, 9, 15, 25, 49, 91, 7917, 104730}
	for _, c := range composites {
		if IsPrime(c) {
			t.Errorf("IsPrime(%d) = true, want false", c)
		}
	}
}

func TestGCDAndLCM(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b, gcd, lcm int64
	}{
		{48, 18, 6, 144},
		{18, 48, 6, 144},
		{7, 13, 1, 91},
		{0, 5, 5, 0},
		{5, 0, 5, 0},
		{0, 0, 0, 0},
		{-48, 18, 6, -144}, // sign follows the (a/gcd)*b order
		{1071, 462, 21, 23562},
	}
	for _, tc := range cases {
		if got := GCD(tc.a, tc.b); got != tc.gcd {
			t.Errorf("GCD(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.gcd)
		}
		if got := LCM(tc.a, tc.b); got != tc.lcm {
			t.Errorf("LCM(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.lcm)
		}
	}
}

func TestFactorial(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n    int
		want float64
	}{
		{-3, 0},
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000},
	}
	for _, tc := range cases {
		if got := Factorial(tc.n); got != tc.want {
			t.Errorf("Factorial(%d) = %g, want %g", tc.n, got, tc.want)
		}
	}

	// The float64 accumulator saturates instead of wrapping.
	if got := Factorial(200); !math.IsInf(got, 1) {
		t.Errorf("Factorial(200) = %g, want +Inf", got)
	}
}
