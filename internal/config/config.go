// Package config provides the configuration management for the algobench
// application. It defines the data structure for the configuration, handles
// the parsing of command-line arguments, and performs validation on the
// configuration values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/algobench/internal/errors"
)

const (
	// EnvPrefix is the prefix for all environment variables used by
	// algobench. Environment variables provide an alternative to CLI flags,
	// following the 12-Factor App methodology.
	EnvPrefix = "ALGOBENCH_"
)

// Default configuration values, overridable via flags or environment.
const (
	// DefaultDomain runs every comparison domain.
	DefaultDomain = "all"
	// DefaultStrategy runs every strategy of the selected domain.
	DefaultStrategy = "all"
	// DefaultMatrixSize is the square matrix dimension used by the matrix
	// comparison.
	DefaultMatrixSize = 256
	// DefaultIterations is the number of timed repetitions per strategy.
	DefaultIterations = 10
	// DefaultSeed seeds the matrix fill so runs are reproducible.
	DefaultSeed int64 = 42
	// DefaultTimeout bounds a full comparison run.
	DefaultTimeout = 5 * time.Minute
	// DefaultText and DefaultPattern are the search comparison inputs.
	DefaultText    = "The quick brown fox jumps over the lazy dog"
	DefaultPattern = "fox"
)

// validDomains are the comparison domains the orchestrator knows.
var validDomains = []string{"all", "matrix", "search", "math"}

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags.
type AppConfig struct {
	// Domain selects the comparison to run ("all", "matrix", "search", "math").
	Domain string
	// Strategy restricts the run to one strategy of the domain, or "all".
	Strategy string
	// MatrixSize is the dimension of the square matrices to multiply.
	MatrixSize int
	// Text and Pattern are the inputs of the search comparison.
	Text    string
	Pattern string
	// Iterations is the number of timed repetitions per strategy.
	Iterations int
	// Seed seeds the random matrix fill. Equal seeds give equal inputs.
	Seed int64
	// Timeout sets the maximum duration for the whole run.
	Timeout time.Duration
	// Verbose enables debug logging.
	Verbose bool
	// Quiet suppresses the spinner and informational output for scripting.
	Quiet bool
	// NoColor disables colored output. Also respects the NO_COLOR env var.
	NoColor bool
	// JSONOutput emits the comparison report as JSON instead of a table.
	JSONOutput bool
	// OutputFile, if set, writes the report to this path as well.
	OutputFile string
}

// Validate checks the semantic consistency of the configuration.
//
// Parameters:
//   - availableStrategies: valid strategy names for the selected domain,
//     used to reject unknown -strategy values. Ignored when Domain is "all".
//
// Returns:
//   - error: A ConfigError if the configuration is invalid, nil otherwise.
func (c AppConfig) Validate(availableStrategies []string) error {
	domainOK := false
	for _, d := range validDomains {
		if d == c.Domain {
			domainOK = true
			break
		}
	}
	if !domainOK {
		return apperrors.NewConfigError("unrecognized domain: %q. Valid domains are: [%s]",
			c.Domain, strings.Join(validDomains, ", "))
	}
	if c.MatrixSize <= 0 {
		return apperrors.NewConfigError("matrix size must be strictly positive: %d", c.MatrixSize)
	}
	if c.Iterations <= 0 {
		return apperrors.NewConfigError("iteration count must be strictly positive: %d", c.Iterations)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.Strategy != "all" && c.Domain != "all" {
		found := false
		for _, s := range availableStrategies {
			if s == c.Strategy {
				found = true
				break
			}
		}
		if !found {
			return apperrors.NewConfigError("unrecognized strategy: %q. Valid strategies are: 'all' or [%s]",
				c.Strategy, strings.Join(availableStrategies, ", "))
		}
	}
	if c.Strategy != "all" && c.Domain == "all" {
		return apperrors.NewConfigError("-strategy requires a specific -domain")
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig.
// Priority is CLI flags, then environment variables, then defaults.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: The command-line arguments (typically os.Args[1:]).
//   - errorWriter: Destination for parsing errors and usage output.
//   - availableStrategies: valid strategy names for validation.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: An error if flag parsing or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableStrategies []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.Domain, "domain", DefaultDomain, "Comparison domain to run: 'all', 'matrix', 'search' or 'math'.")
	fs.StringVar(&config.Strategy, "strategy", DefaultStrategy, "Restrict the run to one strategy of the selected domain.")
	fs.IntVar(&config.MatrixSize, "size", DefaultMatrixSize, "Dimension of the square matrices to multiply.")
	fs.StringVar(&config.Text, "text", DefaultText, "Text to search in.")
	fs.StringVar(&config.Pattern, "pattern", DefaultPattern, "Pattern to search for.")
	fs.IntVar(&config.Iterations, "iterations", DefaultIterations, "Number of timed repetitions per strategy.")
	fs.Int64Var(&config.Seed, "seed", DefaultSeed, "Seed for the random matrix fill (equal seeds give equal inputs).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for the whole run.")
	fs.BoolVar(&config.Verbose, "v", false, "Enable debug logging.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Alias for -v.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode, minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output the comparison report in JSON format.")
	fs.StringVar(&config.OutputFile, "output", "", "Output file path for the report.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	config.Domain = strings.ToLower(config.Domain)
	config.Strategy = strings.ToLower(config.Strategy)
	if err := config.Validate(availableStrategies); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}
