package bench

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"

	apperrors "github.com/agbru/algobench/internal/errors"
)

// sink receives a value derived from every benchmark iteration so the
// compiler cannot prove the workload result unused and eliminate it.
var sink float64

// KeepAlive records a value in the package sink. Workloads call it with a
// cheap summary of their result (a matrix sum, a found index) from inside
// the timed loop.
func KeepAlive(v float64) {
	sink = v
}

// Sink returns the last value passed to KeepAlive. Exposed for tests.
func Sink() float64 {
	return sink
}

// Run times iterations invocations of fn under a single span and returns
// the aggregated record. The workload function receives the iteration index
// and returns a result summary that is fed to KeepAlive, plus an error that
// aborts the run.
//
// The context is checked between iterations; cancellation surfaces as the
// context's error wrapped in a RunError.
func Run(ctx context.Context, name string, iterations int, fn func(i int) (float64, error)) (Record, error) {
	if iterations <= 0 {
		return Record{}, apperrors.NewInvalidInputError("iterations must be positive, got %d", iterations)
	}

	_, span := otel.Tracer("bench").Start(ctx, "bench.Run")
	defer span.End()

	var timer Timer
	timer.Start()
	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			timer.Stop()
			return Record{}, apperrors.RunError{Cause: err}
		}
		result, err := fn(i)
		if err != nil {
			timer.Stop()
			return Record{}, apperrors.RunError{Cause: apperrors.WrapError(err, "benchmark %q, iteration %d", name, i)}
		}
		KeepAlive(result)
	}
	timer.Stop()

	total := timer.Elapsed()
	record := Record{
		Name:         name,
		Iterations:   iterations,
		Total:        total,
		PerIteration: total / time.Duration(iterations),
	}
	observeRun(record)
	return record, nil
}
