package orchestration

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/algobench/internal/bench"
	apperrors "github.com/agbru/algobench/internal/errors"
	"github.com/agbru/algobench/internal/testutil"
	"github.com/agbru/algobench/internal/ui"
)

func withoutColors(t *testing.T) {
	t.Helper()
	original := ui.GetCurrentTheme()
	ui.SetTheme("none")
	t.Cleanup(func() { ui.SetCurrentTheme(original) })
}

func successfulResult() ComparisonResult {
	return ComparisonResult{
		Domain:   "matrix",
		Baseline: "naive",
		Runs: []StrategyRun{
			{
				Name:     "naive",
				Record:   bench.Record{Name: "matrix/naive", Iterations: 2, Total: 200 * time.Millisecond, PerIteration: 100 * time.Millisecond},
				Checksum: "1234.567890",
			},
			{
				Name:     "blocked",
				Record:   bench.Record{Name: "matrix/blocked", Iterations: 2, Total: 100 * time.Millisecond, PerIteration: 50 * time.Millisecond},
				Checksum: "1234.567890",
			},
		},
	}
}

func TestRenderComparisonSuccess(t *testing.T) {
	withoutColors(t)
	var buf bytes.Buffer
	code := RenderComparison(successfulResult(), &buf)
	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}

	out := testutil.StripAnsiCodes(buf.String())
	if !strings.Contains(out, "matrix comparison") {
		t.Errorf("output should name the domain:\n%s", out)
	}
	// The faster strategy sorts first and shows its speedup over the baseline.
	if !strings.Contains(out, "2.00x") {
		t.Errorf("output should contain the speedup column:\n%s", out)
	}
	if !strings.Contains(out, "Global Status: Success") {
		t.Errorf("output should report global success:\n%s", out)
	}
	blockedPos := strings.Index(out, "blocked")
	naivePos := strings.Index(out, "naive")
	if blockedPos == -1 || naivePos == -1 || blockedPos > naivePos {
		t.Errorf("runs should be sorted fastest first:\n%s", out)
	}
}

func TestRenderComparisonMismatch(t *testing.T) {
	withoutColors(t)
	result := successfulResult()
	result.Mismatch = apperrors.MismatchError{
		Domain: "matrix", Baseline: "naive", Offender: "blocked",
		Expected: "sum 1.0", Got: "sum 2.0",
	}

	var buf bytes.Buffer
	code := RenderComparison(result, &buf)
	if code != apperrors.ExitErrorMismatch {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorMismatch)
	}
	if !strings.Contains(buf.String(), "CRITICAL ERROR") {
		t.Errorf("mismatch should be reported as critical:\n%s", buf.String())
	}
}

func TestRenderComparisonAllFailed(t *testing.T) {
	withoutColors(t)
	result := ComparisonResult{
		Domain:   "search",
		Baseline: "naive",
		Runs: []StrategyRun{
			{Name: "naive", Err: errors.New("boom")},
		},
	}

	var buf bytes.Buffer
	code := RenderComparison(result, &buf)
	if code != apperrors.ExitErrorGeneric {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorGeneric)
	}
	out := testutil.StripAnsiCodes(buf.String())
	if !strings.Contains(out, "No strategy could complete") {
		t.Errorf("output should report the global failure:\n%s", out)
	}
}

func TestRenderComparisonPartialFailure(t *testing.T) {
	withoutColors(t)
	result := successfulResult()
	result.Runs = append(result.Runs, StrategyRun{Name: "unrolled", Err: errors.New("boom")})

	var buf bytes.Buffer
	code := RenderComparison(result, &buf)
	if code == apperrors.ExitSuccess {
		t.Error("a partial failure must not exit with success")
	}
	if !strings.Contains(buf.String(), "Partial failure") {
		t.Errorf("output should report the partial failure:\n%s", buf.String())
	}
}
