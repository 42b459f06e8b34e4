// Package config provides the configuration management for the algobench
// application. This file contains environment variable utilities for
// configuration override.
package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// getEnvString returns the value of the environment variable with the given
// key (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns the environment value parsed as int, or the default if
// not set or invalid.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvInt64 returns the environment value parsed as int64, or the default
// if not set or invalid.
func getEnvInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseInt(val, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvBool returns the environment value parsed as bool. Accepts "true",
// "1", "yes" as true and "false", "0", "no" as false, case-insensitive.
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// getEnvDuration returns the environment value parsed as time.Duration
// ("5m", "30s"), or the default if not set or invalid.
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// isFlagSet checks if a flag was explicitly set on the command line, to
// decide whether an environment override applies.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// applyEnvOverrides applies environment variable values for any flags that
// were not explicitly set on the command line. Priority: CLI flags >
// environment variables > defaults.
//
// Supported environment variables:
//   - ALGOBENCH_DOMAIN: Comparison domain (string: all, matrix, search, math)
//   - ALGOBENCH_STRATEGY: Strategy restriction (string)
//   - ALGOBENCH_SIZE: Square matrix dimension (int)
//   - ALGOBENCH_TEXT: Search text (string)
//   - ALGOBENCH_PATTERN: Search pattern (string)
//   - ALGOBENCH_ITERATIONS: Timed repetitions per strategy (int)
//   - ALGOBENCH_SEED: Matrix fill seed (int64)
//   - ALGOBENCH_TIMEOUT: Run timeout (duration: "5m", "30s")
//   - ALGOBENCH_VERBOSE: Enable debug logging (bool)
//   - ALGOBENCH_QUIET: Enable quiet mode (bool)
//   - ALGOBENCH_NO_COLOR: Disable colored output (bool)
//   - ALGOBENCH_JSON: Enable JSON report output (bool)
//   - ALGOBENCH_OUTPUT: Report output file path (string)
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "domain") {
		config.Domain = getEnvString("DOMAIN", config.Domain)
	}
	if !isFlagSet(fs, "strategy") {
		config.Strategy = getEnvString("STRATEGY", config.Strategy)
	}
	if !isFlagSet(fs, "size") {
		config.MatrixSize = getEnvInt("SIZE", config.MatrixSize)
	}
	if !isFlagSet(fs, "text") {
		config.Text = getEnvString("TEXT", config.Text)
	}
	if !isFlagSet(fs, "pattern") {
		config.Pattern = getEnvString("PATTERN", config.Pattern)
	}
	if !isFlagSet(fs, "iterations") {
		config.Iterations = getEnvInt("ITERATIONS", config.Iterations)
	}
	if !isFlagSet(fs, "seed") {
		config.Seed = getEnvInt64("SEED", config.Seed)
	}
	if !isFlagSet(fs, "timeout") {
		config.Timeout = getEnvDuration("TIMEOUT", config.Timeout)
	}
	if !isFlagSet(fs, "v") && !isFlagSet(fs, "verbose") {
		config.Verbose = getEnvBool("VERBOSE", config.Verbose)
	}
	if !isFlagSet(fs, "quiet") && !isFlagSet(fs, "q") {
		config.Quiet = getEnvBool("QUIET", config.Quiet)
	}
	if !isFlagSet(fs, "no-color") {
		config.NoColor = getEnvBool("NO_COLOR", config.NoColor)
	}
	if !isFlagSet(fs, "json") {
		config.JSONOutput = getEnvBool("JSON", config.JSONOutput)
	}
	if !isFlagSet(fs, "output") && !isFlagSet(fs, "o") {
		config.OutputFile = getEnvString("OUTPUT", config.OutputFile)
	}
}
