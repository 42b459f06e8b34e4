package matrix

import (
	"math"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestStrategyAgreement_PropertyBased generates random problem shapes and
// asserts the tolerance-equivalence invariant across all registered
// strategies. Shapes are kept small enough that the naive baseline stays
// cheap while still crossing both tile-edge boundaries.
func TestStrategyAgreement_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)

	factory := NewDefaultFactory()

	properties.Property("all strategies agree within tolerance", prop.ForAll(
		func(r, k, c int, seed int64) bool {
			a := MustNew(r, k)
			b := MustNew(k, c)
			rnd := rand.New(rand.NewSource(seed))
			a.FillRandom(rnd)
			b.FillRandom(rnd)

			reference, err := (&NaiveMultiply{}).Multiply(a, b)
			if err != nil {
				return false
			}

			for _, name := range factory.List() {
				s, err := factory.Get(name)
				if err != nil {
					return false
				}
				got, err := s.Multiply(a, b)
				if err != nil || got.Rows() != r || got.Cols() != c {
					return false
				}
				if math.Abs(got.Sum()-reference.Sum()) > SumTolerance {
					t.Logf("strategy %s: sum %g vs %g for %dx%dx%d",
						name, got.Sum(), reference.Sum(), r, k, c)
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 70),
		gen.IntRange(0, 70),
		gen.IntRange(0, 70),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
