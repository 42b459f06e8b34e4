// Package orchestration runs the registered strategies of a comparison
// domain over identical inputs, times them, verifies that they agree on the
// result, and renders the comparative report. Strategies execute
// sequentially so the measurements do not contend for cores.
package orchestration

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/agbru/algobench/internal/bench"
	"github.com/agbru/algobench/internal/config"
	apperrors "github.com/agbru/algobench/internal/errors"
	"github.com/agbru/algobench/internal/logging"
	"github.com/agbru/algobench/internal/mathx"
	"github.com/agbru/algobench/internal/matrix"
	"github.com/agbru/algobench/internal/search"
)

const (
	// SumTolerance is the maximum absolute difference between the element
	// sums of two matrix products before they are declared inconsistent.
	SumTolerance = 1e-6

	// MathTolerance bounds the disagreement between the series
	// approximations and the standard library over the evaluation grid.
	MathTolerance = 1e-6

	// fibIndex is the index used for the Fibonacci variant comparison. Kept
	// low enough that the naive recursion finishes in reasonable time.
	fibIndex uint = 32
)

// StrategyRun captures the outcome of one strategy inside a comparison.
type StrategyRun struct {
	// Name is the strategy identifier within its domain.
	Name string
	// Record holds the timing measurements of the run.
	Record bench.Record
	// Checksum is a short human-readable summary of the computed result,
	// shown in the comparison table (an element sum, a match index).
	Checksum string
	// Err is non-nil if the strategy failed to produce a result.
	Err error
}

// ComparisonResult aggregates the runs of one domain together with the
// outcome of the cross-strategy consistency check.
type ComparisonResult struct {
	// Domain is the comparison domain ("matrix", "search", "math").
	Domain string
	// Baseline names the reference strategy the others are checked against.
	Baseline string
	// Runs holds one entry per executed strategy.
	Runs []StrategyRun
	// Mismatch is non-nil if any strategy disagreed with the baseline. A
	// mismatch is a correctness fault, not a performance result; callers
	// must surface it as a hard failure.
	Mismatch error
}

// selectStrategies resolves the strategy names to run: all registered names,
// or the requested one plus the baseline needed for verification.
func selectStrategies(names []string, requested, baseline string) []string {
	if requested == "" || requested == "all" {
		return names
	}
	if requested == baseline {
		return []string{baseline}
	}
	return []string{baseline, requested}
}

// CompareMatrix runs every selected matrix multiplication strategy over the
// same pair of seeded random matrices and checks that the element sums of
// the products agree within SumTolerance.
//
// Parameters:
//   - ctx: The context bounding the whole comparison.
//   - factory: The registry supplying the strategies to compare.
//   - cfg: The application configuration (size, seed, iterations).
//   - log: The structured logger for per-run diagnostics.
//
// Returns:
//   - ComparisonResult: The timed runs and the consistency verdict.
//   - error: A setup or run failure; result rendering is still possible
//     when the returned result has runs.
func CompareMatrix(ctx context.Context, factory matrix.StrategyFactory, cfg config.AppConfig, log logging.Logger) (ComparisonResult, error) {
	result := ComparisonResult{Domain: "matrix", Baseline: "naive"}

	a, err := matrix.New(cfg.MatrixSize, cfg.MatrixSize)
	if err != nil {
		return result, err
	}
	b, err := matrix.New(cfg.MatrixSize, cfg.MatrixSize)
	if err != nil {
		return result, err
	}
	a.FillRandom(rand.New(rand.NewSource(cfg.Seed)))
	b.FillRandom(rand.New(rand.NewSource(cfg.Seed + 1)))

	sums := make(map[string]float64)

	for _, name := range selectStrategies(factory.List(), cfg.Strategy, result.Baseline) {
		strategy, err := factory.Get(name)
		if err != nil {
			return result, err
		}

		var lastSum float64
		record, runErr := bench.Run(ctx, "matrix/"+name, cfg.Iterations, func(int) (float64, error) {
			product, err := strategy.Multiply(a, b)
			if err != nil {
				return 0, err
			}
			lastSum = product.Sum()
			return lastSum, nil
		})
		run := StrategyRun{Name: name, Record: record, Err: runErr}
		if runErr == nil {
			run.Checksum = fmt.Sprintf("%.6f", lastSum)
			sums[name] = lastSum
			log.Debug("matrix strategy completed",
				logging.String("strategy", name),
				logging.Dur("total", record.Total),
				logging.Float64("sum", lastSum))
		}
		result.Runs = append(result.Runs, run)
	}

	// The consistency check runs after every strategy has completed, so it
	// covers arbitrary registration order. A strategy executed before the
	// baseline must still be checked against it.
	if baselineSum, ok := sums[result.Baseline]; ok {
		for _, run := range result.Runs {
			if run.Err != nil || run.Name == result.Baseline {
				continue
			}
			if math.Abs(sums[run.Name]-baselineSum) > SumTolerance {
				result.Mismatch = apperrors.MismatchError{
					Domain:   result.Domain,
					Baseline: result.Baseline,
					Offender: run.Name,
					Expected: fmt.Sprintf("sum %.9f", baselineSum),
					Got:      fmt.Sprintf("sum %.9f", sums[run.Name]),
				}
				break
			}
		}
	}

	if result.Mismatch != nil {
		return result, result.Mismatch
	}
	return result, firstRunError(result.Runs)
}

// CompareSearch runs every selected search strategy over the configured
// text and pattern and checks that they report the same match index.
func CompareSearch(ctx context.Context, factory search.StrategyFactory, cfg config.AppConfig, log logging.Logger) (ComparisonResult, error) {
	result := ComparisonResult{Domain: "search", Baseline: "naive"}

	text := []byte(cfg.Text)
	pattern := []byte(cfg.Pattern)
	indices := make(map[string]int)

	for _, name := range selectStrategies(factory.List(), cfg.Strategy, result.Baseline) {
		strategy, err := factory.Get(name)
		if err != nil {
			return result, err
		}

		var lastIndex int
		record, runErr := bench.Run(ctx, "search/"+name, cfg.Iterations, func(int) (float64, error) {
			lastIndex = strategy.Search(text, pattern)
			return float64(lastIndex), nil
		})
		run := StrategyRun{Name: name, Record: record, Err: runErr}
		if runErr == nil {
			run.Checksum = fmt.Sprintf("index %d", lastIndex)
			indices[name] = lastIndex
			log.Debug("search strategy completed",
				logging.String("strategy", name),
				logging.Dur("total", record.Total),
				logging.Int("index", lastIndex))
		}
		result.Runs = append(result.Runs, run)
	}

	// Checked after the loop so a strategy that ran before the baseline is
	// held to the same exact-index agreement.
	if baselineIndex, ok := indices[result.Baseline]; ok {
		for _, run := range result.Runs {
			if run.Err != nil || run.Name == result.Baseline {
				continue
			}
			if indices[run.Name] != baselineIndex {
				result.Mismatch = apperrors.MismatchError{
					Domain:   result.Domain,
					Baseline: result.Baseline,
					Offender: run.Name,
					Expected: fmt.Sprintf("index %d", baselineIndex),
					Got:      fmt.Sprintf("index %d", indices[run.Name]),
				}
				break
			}
		}
	}

	if result.Mismatch != nil {
		return result, result.Mismatch
	}
	return result, firstRunError(result.Runs)
}

// mathGrid evaluates fn over the scalar evaluation grid [0.5, 2] and
// returns the accumulated sum. The grid stays inside the region where every
// truncated series converges to well below MathTolerance; in particular the
// log series degrades sharply as x approaches 0.
func mathGrid(fn func(x float64) float64) float64 {
	sum := 0.0
	for x := 0.5; x <= 2.0; x += 0.01 {
		sum += fn(x)
	}
	return sum
}

func taylorWorkload(x float64) float64 {
	return mathx.Sqrt(x) + mathx.Sin(x) + mathx.Cos(x) + mathx.Exp(x) + mathx.Log(x)
}

func stdlibWorkload(x float64) float64 {
	return math.Sqrt(x) + math.Sin(x) + math.Cos(x) + math.Exp(x) + math.Log(x)
}

// CompareMath runs the scalar approximation comparison: the series
// implementations against the standard library over a fixed grid, and the
// two Fibonacci variants against each other. The stdlib route is the
// accuracy baseline; the Fibonacci variants must agree exactly.
func CompareMath(ctx context.Context, cfg config.AppConfig, log logging.Logger) (ComparisonResult, error) {
	result := ComparisonResult{Domain: "math", Baseline: "stdlib"}

	scalarRoutes := []struct {
		name string
		fn   func(float64) float64
	}{
		{"stdlib", stdlibWorkload},
		{"taylor", taylorWorkload},
	}

	baselineSum := math.NaN()
	for _, route := range scalarRoutes {
		fn := route.fn
		var lastSum float64
		record, runErr := bench.Run(ctx, "math/"+route.name, cfg.Iterations, func(int) (float64, error) {
			lastSum = mathGrid(fn)
			return lastSum, nil
		})
		run := StrategyRun{Name: route.name, Record: record, Err: runErr}
		if runErr == nil {
			run.Checksum = fmt.Sprintf("%.9f", lastSum)
			log.Debug("math route completed",
				logging.String("route", route.name),
				logging.Dur("total", record.Total),
				logging.Float64("sum", lastSum))

			if route.name == result.Baseline {
				baselineSum = lastSum
			} else if !math.IsNaN(baselineSum) && math.Abs(lastSum-baselineSum) > MathTolerance {
				result.Mismatch = apperrors.MismatchError{
					Domain:   result.Domain,
					Baseline: result.Baseline,
					Offender: route.name,
					Expected: fmt.Sprintf("sum %.12f", baselineSum),
					Got:      fmt.Sprintf("sum %.12f", lastSum),
				}
			}
		}
		result.Runs = append(result.Runs, run)
	}

	fibRoutes := []struct {
		name string
		fn   func(uint) uint64
	}{
		{"fibfast", mathx.FibonacciFast},
		{"fibnaive", mathx.FibonacciNaive},
	}

	var fibBaseline uint64
	haveFibBaseline := false
	for _, route := range fibRoutes {
		fn := route.fn
		var lastValue uint64
		record, runErr := bench.Run(ctx, "math/"+route.name, cfg.Iterations, func(int) (float64, error) {
			lastValue = fn(fibIndex)
			return float64(lastValue), nil
		})
		run := StrategyRun{Name: route.name, Record: record, Err: runErr}
		if runErr == nil {
			run.Checksum = fmt.Sprintf("F(%d) = %d", fibIndex, lastValue)
			if !haveFibBaseline {
				fibBaseline = lastValue
				haveFibBaseline = true
			} else if lastValue != fibBaseline && result.Mismatch == nil {
				result.Mismatch = apperrors.MismatchError{
					Domain:   result.Domain,
					Baseline: "fibfast",
					Offender: route.name,
					Expected: fmt.Sprintf("%d", fibBaseline),
					Got:      fmt.Sprintf("%d", lastValue),
				}
			}
		}
		result.Runs = append(result.Runs, run)
	}

	if result.Mismatch != nil {
		return result, result.Mismatch
	}
	return result, firstRunError(result.Runs)
}

// firstRunError returns the first per-strategy failure, or nil.
func firstRunError(runs []StrategyRun) error {
	for _, run := range runs {
		if run.Err != nil {
			return run.Err
		}
	}
	return nil
}
