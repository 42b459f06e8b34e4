/*
Package models defines the shared data structures of the comparison report.

These models are the stable JSON contract emitted by the -json flag and
consumed by external tooling (CI dashboards, regression trackers). They are
deliberately free of internal types so consumers do not import the
harness itself.
*/
package models

// RunReport is the serialized outcome of one strategy run.
type RunReport struct {
	Strategy       string  `json:"strategy"`                  // Strategy name within its domain.
	Iterations     int     `json:"iterations"`                // Number of timed repetitions.
	TotalNs        int64   `json:"total_ns"`                  // Wall-clock total in nanoseconds.
	PerIterationNs int64   `json:"per_iteration_ns"`          // Mean duration per iteration.
	Speedup        float64 `json:"speedup,omitempty"`         // Ratio versus the domain baseline.
	Checksum       string  `json:"checksum,omitempty"`        // Result summary used for the consistency check.
	Error          string  `json:"error,omitempty"`           // Failure message, if the run did not complete.
}

// ComparisonReport aggregates the runs of one domain.
type ComparisonReport struct {
	Domain   string      `json:"domain"`             // Comparison domain (matrix, search, math).
	Baseline string      `json:"baseline"`           // Reference strategy for consistency and speedup.
	Mismatch string      `json:"mismatch,omitempty"` // Non-empty if strategies disagreed on the result.
	Runs     []RunReport `json:"runs"`               // One entry per executed strategy.
}

// Report is the top-level JSON document of a harness invocation.
type Report struct {
	GeneratedAt string             `json:"generated_at"` // RFC3339 timestamp of the run.
	Host        string             `json:"host"`         // Machine description the run executed on.
	Comparisons []ComparisonReport `json:"comparisons"`  // One entry per executed domain.
}
