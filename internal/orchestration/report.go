package orchestration

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/agbru/algobench/internal/cli"
	apperrors "github.com/agbru/algobench/internal/errors"
	"github.com/agbru/algobench/internal/ui"
)

// RenderComparison displays the comparative summary table for one domain
// and returns the process exit code reflecting its outcome.
//
// The table is sorted by per-iteration duration, successes first, and
// carries a speedup column relative to the baseline strategy. A consistency
// mismatch dominates every other outcome.
//
// Parameters:
//   - result: The comparison outcome to render.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func RenderComparison(result ComparisonResult, out io.Writer) int {
	runs := make([]StrategyRun, len(result.Runs))
	copy(runs, result.Runs)
	sort.Slice(runs, func(i, j int) bool {
		if (runs[i].Err == nil) != (runs[j].Err == nil) {
			return runs[i].Err == nil
		}
		return runs[i].Record.PerIteration < runs[j].Record.PerIteration
	})

	baselinePerIteration := time.Duration(0)
	for _, run := range runs {
		if run.Name == result.Baseline && run.Err == nil {
			baselinePerIteration = run.Record.PerIteration
			break
		}
	}

	fmt.Fprintf(out, "\n--- %s comparison ---\n", result.Domain)
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "%sStrategy%s\t%sPer iteration%s\t%sSpeedup%s\t%sChecksum%s\t%sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset())

	var firstError error
	successCount := 0
	for _, run := range runs {
		var status string
		if run.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), run.Err, ui.ColorReset())
			if firstError == nil {
				firstError = run.Err
			}
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
			successCount++
		}

		duration := cli.FormatExecutionDuration(run.Record.PerIteration)
		if run.Record.PerIteration == 0 {
			duration = "< 1µs"
		}
		speedup := "-"
		if run.Err == nil && baselinePerIteration > 0 && run.Record.PerIteration > 0 {
			speedup = fmt.Sprintf("%.2fx", float64(baselinePerIteration)/float64(run.Record.PerIteration))
		}

		fmt.Fprintf(tw, "%s%s%s\t%s%s%s\t%s\t%s\t%s\n",
			ui.ColorBlue(), run.Name, ui.ColorReset(),
			ui.ColorYellow(), duration, ui.ColorReset(),
			speedup, run.Checksum, status)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(out, "Warning: failed to flush tabwriter: %v\n", err)
	}

	if result.Mismatch != nil {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! Strategies disagree on the result: %v\n", result.Mismatch)
		return apperrors.ExitErrorMismatch
	}
	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No strategy could complete the run.\n")
		return apperrors.HandleRunError(firstError, 0, out, cli.CLIColorProvider{})
	}
	if firstError != nil {
		fmt.Fprintf(out, "\nGlobal Status: Partial failure. At least one strategy did not complete.\n")
		return apperrors.HandleRunError(firstError, 0, out, cli.CLIColorProvider{})
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All strategies agree on the result.\n")
	return apperrors.ExitSuccess
}
