package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/algobench/internal/cli"
	"github.com/agbru/algobench/internal/config"
	apperrors "github.com/agbru/algobench/internal/errors"
	"github.com/agbru/algobench/internal/logging"
	"github.com/agbru/algobench/internal/matrix"
	"github.com/agbru/algobench/internal/orchestration"
	"github.com/agbru/algobench/internal/search"
	"github.com/agbru/algobench/internal/sysinfo"
	"github.com/agbru/algobench/internal/ui"
	"github.com/agbru/algobench/pkg/models"
)

// Application represents the algobench application instance. It
// encapsulates the configuration and dispatches the configured comparison
// domains.
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The command-line arguments (typically os.Args).
//   - errWriter: The writer for error output.
//
// Returns:
//   - *Application: A new application instance.
//   - error: An error if configuration parsing or validation fails.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "algobench"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	// Strategy validation happens against the union of the registries; a
	// strategy that exists in a different domain than the requested one is
	// rejected later by the factory lookup.
	available := append(matrix.GlobalFactory().List(), search.GlobalFactory().List()...)

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, available)
	if err != nil {
		return nil, err
	}
	return &Application{Config: cfg, ErrWriter: errWriter}, nil
}

// domainRunner binds a domain name to its comparison function.
type domainRunner struct {
	name string
	run  func(ctx context.Context, log logging.Logger) (orchestration.ComparisonResult, error)
}

// runnersFor resolves the configured domain selection into the ordered list
// of comparisons to execute.
func (a *Application) runnersFor() []domainRunner {
	matrixRunner := domainRunner{"matrix", func(ctx context.Context, log logging.Logger) (orchestration.ComparisonResult, error) {
		return orchestration.CompareMatrix(ctx, matrix.GlobalFactory(), a.Config, log)
	}}
	searchRunner := domainRunner{"search", func(ctx context.Context, log logging.Logger) (orchestration.ComparisonResult, error) {
		return orchestration.CompareSearch(ctx, search.GlobalFactory(), a.Config, log)
	}}
	mathRunner := domainRunner{"math", func(ctx context.Context, log logging.Logger) (orchestration.ComparisonResult, error) {
		return orchestration.CompareMath(ctx, a.Config, log)
	}}

	switch a.Config.Domain {
	case "matrix":
		return []domainRunner{matrixRunner}
	case "search":
		return []domainRunner{searchRunner}
	case "math":
		return []domainRunner{mathRunner}
	default:
		return []domainRunner{matrixRunner, searchRunner, mathRunner}
	}
}

// Run executes the configured comparisons and renders the report.
//
// Parameters:
//   - ctx: The context for managing cancellation and timeouts.
//   - out: The writer for standard output.
//
// Returns:
//   - int: An exit code (0 for success, non-zero for errors).
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)

	var log logging.Logger = logging.NopLogger{}
	if a.Config.Verbose {
		log = logging.NewLogger(a.ErrWriter, "algobench")
	}

	ctx, cancels := SetupLifecycle(ctx, a.Config.Timeout)
	defer cancels.Cleanup()

	host := sysinfo.Collect()
	if !a.Config.Quiet && !a.Config.JSONOutput {
		cli.DisplayHostInfo(host, out)
	}

	runners := a.runnersFor()
	results := make([]orchestration.ComparisonResult, len(runners))
	errs := make([]error, len(runners))

	// The domains run one at a time so the measurements do not contend for
	// cores; the group handles cancellation propagation.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(1)
	startTime := time.Now()
	for i, runner := range runners {
		i, runner := i, runner
		g.Go(func() error {
			spinnerOff := a.Config.Quiet || a.Config.JSONOutput
			return cli.WithSpinner(fmt.Sprintf("running %s comparison", runner.name), spinnerOff, nil, func() error {
				results[i], errs[i] = runner.run(gctx, log)
				// A failed domain is recorded, not fatal to the whole run;
				// cancellation still stops the group.
				if gctx.Err() != nil {
					return gctx.Err()
				}
				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		return apperrors.HandleRunError(err, time.Since(startTime), a.ErrWriter, cli.CLIColorProvider{})
	}

	report := buildReport(host, results)
	if a.Config.OutputFile != "" {
		if err := writeReportFile(a.Config.OutputFile, report); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error writing report: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
	}

	if a.Config.JSONOutput {
		return a.printJSONReport(report, results, errs, out)
	}

	exitCode := apperrors.ExitSuccess
	for i, result := range results {
		code := orchestration.RenderComparison(result, out)
		if a.Config.Verbose {
			for _, run := range result.Runs {
				if run.Err == nil {
					cli.DisplayRecord(run.Record, out)
				}
			}
		}
		if code == apperrors.ExitSuccess && errs[i] != nil {
			// Setup failures (an unknown strategy, an invalid problem size)
			// produce no runs to render but still fail the comparison.
			code = apperrors.HandleRunError(errs[i], 0, a.ErrWriter, cli.CLIColorProvider{})
		}
		if code != apperrors.ExitSuccess && exitCode == apperrors.ExitSuccess {
			exitCode = code
		}
	}
	if a.Config.OutputFile != "" && exitCode == apperrors.ExitSuccess {
		fmt.Fprintf(out, "\n%s✓ Report saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), a.Config.OutputFile, ui.ColorReset())
	}
	return exitCode
}

// printJSONReport emits the report document and maps the worst outcome to
// an exit code.
func (a *Application) printJSONReport(report models.Report, results []orchestration.ComparisonResult, errs []error, out io.Writer) int {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error marshaling report: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	fmt.Fprintln(out, string(data))

	for _, result := range results {
		if result.Mismatch != nil {
			return apperrors.ExitErrorMismatch
		}
	}
	for _, result := range results {
		for _, run := range result.Runs {
			if run.Err != nil {
				return apperrors.HandleRunError(run.Err, 0, a.ErrWriter, cli.CLIColorProvider{})
			}
		}
	}
	for _, err := range errs {
		if err != nil {
			return apperrors.HandleRunError(err, 0, a.ErrWriter, cli.CLIColorProvider{})
		}
	}
	return apperrors.ExitSuccess
}

// buildReport converts the internal comparison results into the stable
// external report document.
func buildReport(host sysinfo.Info, results []orchestration.ComparisonResult) models.Report {
	report := models.Report{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Host:        host.String(),
	}
	for _, result := range results {
		comparison := models.ComparisonReport{
			Domain:   result.Domain,
			Baseline: result.Baseline,
		}
		if result.Mismatch != nil {
			comparison.Mismatch = result.Mismatch.Error()
		}

		var baselinePerIteration time.Duration
		for _, run := range result.Runs {
			if run.Name == result.Baseline && run.Err == nil {
				baselinePerIteration = run.Record.PerIteration
				break
			}
		}
		for _, run := range result.Runs {
			runReport := models.RunReport{
				Strategy:       run.Name,
				Iterations:     run.Record.Iterations,
				TotalNs:        run.Record.Total.Nanoseconds(),
				PerIterationNs: run.Record.PerIteration.Nanoseconds(),
				Checksum:       run.Checksum,
			}
			if run.Err != nil {
				runReport.Error = run.Err.Error()
			} else if baselinePerIteration > 0 && run.Record.PerIteration > 0 {
				runReport.Speedup = float64(baselinePerIteration) / float64(run.Record.PerIteration)
			}
			comparison.Runs = append(comparison.Runs, runReport)
		}
		report.Comparisons = append(report.Comparisons, comparison)
	}
	return report
}

// writeReportFile persists the JSON report document to the given path.
func writeReportFile(path string, report models.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return apperrors.WrapError(err, "marshaling report")
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
