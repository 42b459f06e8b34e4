package mathx

import (
	"fmt"
	"math"
	"testing"
)

// TestSqrt validates the Newton-Raphson kernel against the stdlib oracle
// and checks the documented sentinel policy for non-positive inputs.
func TestSqrt(t *testing.T) {
	t.Parallel()

	t.Run("Oracle", func(t *testing.T) {
		t.Parallel()
		inputs := []float64{1e-6, 0.25, 1, 2, 16, 25, 1000, 123456.789}
		for _, x := range inputs {
			t.Run(fmt.Sprintf("x=%g", x), func(t *testing.T) {
				got := Sqrt(x)
				want := math.Sqrt(x)
				if math.Abs(got-want) > 1e-9 {
					t.Errorf("Sqrt(%g) = %.15g, want %.15g", x, got, want)
				}
			})
		}
	})

	t.Run("SentinelPolicy", func(t *testing.T) {
		t.Parallel()
		if got := Sqrt(0); got != 0 {
			t.Errorf("Sqrt(0) = %g, want 0", got)
		}
		if got := Sqrt(-4); got != 0 {
			t.Errorf("Sqrt(-4) = %g, want 0 (negative input sentinel)", got)
		}
	})

	t.Run("SpecValue", func(t *testing.T) {
		t.Parallel()
		if got := Sqrt(25); math.Abs(got-5) > 1e-9 {
			t.Errorf("Sqrt(25) = %.15g, want 5 within 1e-9", got)
		}
	})
}

// TestTrig validates Sin and Cos against the stdlib within the accuracy the
// 10-term truncated series delivers after linear range reduction. Inputs
// stay within a few multiples of 2π; larger magnitudes are a documented
// precision boundary and deliberately untested.
func TestTrig(t *testing.T) {
	t.Parallel()

	inputs := []float64{0, 0.5, -0.5, math.Pi / 4, math.Pi / 2, math.Pi, -math.Pi, 3, -3, 2 * math.Pi, 7, -10}

	t.Run("Sin", func(t *testing.T) {
		t.Parallel()
		for _, x := range inputs {
			if got, want := Sin(x), math.Sin(x); math.Abs(got-want) > 1e-9 {
				t.Errorf("Sin(%g) = %.15g, want %.15g", x, got, want)
			}
		}
	})

	t.Run("Cos", func(t *testing.T) {
		t.Parallel()
		for _, x := range inputs {
			if got, want := Cos(x), math.Cos(x); math.Abs(got-want) > 1e-9 {
				t.Errorf("Cos(%g) = %.15g, want %.15g", x, got, want)
			}
		}
	})

	t.Run("PythagoreanIdentity", func(t *testing.T) {
		t.Parallel()
		for _, x := range inputs {
			s, c := Sin(x), Cos(x)
			if got := s*s + c*c; math.Abs(got-1) > 1e-9 {
				t.Errorf("sin²+cos² at x=%g: got %.15g, want 1", x, got)
			}
		}
	})
}

func TestExp(t *testing.T) {
	t.Parallel()

	t.Run("Oracle", func(t *testing.T) {
		t.Parallel()
		// The 20-term series is accurate near the origin and degrades with
		// |x|; tolerances grow accordingly.
		cases := []struct {
			x   float64
			tol float64
		}{
			{0, 1e-12},
			{1, 1e-12},
			{-1, 1e-12},
			{2.5, 1e-9},
			{-2.5, 1e-9},
			{5, 1e-4},
		}
		for _, tc := range cases {
			if got, want := Exp(tc.x), math.Exp(tc.x); math.Abs(got-want) > tol(tc.tol, want) {
				t.Errorf("Exp(%g) = %.15g, want %.15g", tc.x, got, want)
			}
		}
	})

	t.Run("OverflowGuards", func(t *testing.T) {
		t.Parallel()
		if got := Exp(701); !math.IsInf(got, 1) {
			t.Errorf("Exp(701) = %g, want +Inf", got)
		}
		if got := Exp(-701); got != 0 {
			t.Errorf("Exp(-701) = %g, want 0", got)
		}
	})
}

// tol scales an absolute tolerance by the magnitude of the expected value,
// so large results are compared relatively.
func tol(abs, want float64) float64 {
	if w := math.Abs(want); w > 1 {
		return abs * w
	}
	return abs
}

func TestLog(t *testing.T) {
	t.Parallel()

	t.Run("Oracle", func(t *testing.T) {
		t.Parallel()
		inputs := []float64{0.5, 1.5, 2, math.E, 3, 5}
		for _, x := range inputs {
			if got, want := Log(x), math.Log(x); math.Abs(got-want) > 1e-6 {
				t.Errorf("Log(%g) = %.15g, want %.15g", x, got, want)
			}
		}
	})

	t.Run("SentinelPolicy", func(t *testing.T) {
		t.Parallel()
		if got := Log(0); !math.IsInf(got, -1) {
			t.Errorf("Log(0) = %g, want -Inf", got)
		}
		if got := Log(-2); !math.IsInf(got, -1) {
			t.Errorf("Log(-2) = %g, want -Inf", got)
		}
		if got := Log(1); got != 0 {
			t.Errorf("Log(1) = %g, want exactly 0", got)
		}
	})
}
