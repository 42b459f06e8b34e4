// Package bench provides the measurement primitives of the harness: a
// wall-clock timer, a benchmark runner with dead code elimination guards,
// and the Prometheus instrumentation shared by all benchmark runs.
package bench

import "time"

// Timer measures a single wall-clock interval. The zero value is ready to
// use. A Timer is not safe for concurrent use.
type Timer struct {
	start   time.Time
	elapsed time.Duration
	running bool
}

// Start begins a new interval, discarding any previous measurement.
func (t *Timer) Start() {
	t.start = time.Now()
	t.elapsed = 0
	t.running = true
}

// Stop ends the current interval. Calling Stop on a timer that is not
// running is a no-op so the last measurement is preserved.
func (t *Timer) Stop() {
	if !t.running {
		return
	}
	t.elapsed = time.Since(t.start)
	t.running = false
}

// Reset clears the timer back to its zero state.
func (t *Timer) Reset() {
	*t = Timer{}
}

// Elapsed returns the measured interval. While the timer is running it
// returns the time elapsed so far.
func (t *Timer) Elapsed() time.Duration {
	if t.running {
		return time.Since(t.start)
	}
	return t.elapsed
}

// ElapsedMilliseconds returns the measured interval in milliseconds.
func (t *Timer) ElapsedMilliseconds() float64 {
	return float64(t.Elapsed()) / float64(time.Millisecond)
}

// ElapsedMicroseconds returns the measured interval in microseconds.
func (t *Timer) ElapsedMicroseconds() float64 {
	return float64(t.Elapsed()) / float64(time.Microsecond)
}
