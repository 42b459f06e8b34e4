package config

import (
	stderrors "errors"
	"io"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/algobench/internal/errors"
)

var matrixStrategies = []string{"blocked", "naive", "unrolled"}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig("algobench", nil, io.Discard, matrixStrategies)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Domain != "all" {
		t.Errorf("Domain = %q, want %q", cfg.Domain, "all")
	}
	if cfg.MatrixSize != DefaultMatrixSize {
		t.Errorf("MatrixSize = %d, want %d", cfg.MatrixSize, DefaultMatrixSize)
	}
	if cfg.Iterations != DefaultIterations {
		t.Errorf("Iterations = %d, want %d", cfg.Iterations, DefaultIterations)
	}
	if cfg.Seed != DefaultSeed {
		t.Errorf("Seed = %d, want %d", cfg.Seed, DefaultSeed)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.Pattern != DefaultPattern {
		t.Errorf("Pattern = %q, want %q", cfg.Pattern, DefaultPattern)
	}
}

func TestParseConfigFlags(t *testing.T) {
	args := []string{
		"-domain", "matrix",
		"-strategy", "blocked",
		"-size", "128",
		"-iterations", "3",
		"-seed", "7",
		"-timeout", "30s",
		"-q",
		"-json",
	}
	cfg, err := ParseConfig("algobench", args, io.Discard, matrixStrategies)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Domain != "matrix" || cfg.Strategy != "blocked" {
		t.Errorf("Domain/Strategy = %q/%q, want matrix/blocked", cfg.Domain, cfg.Strategy)
	}
	if cfg.MatrixSize != 128 || cfg.Iterations != 3 || cfg.Seed != 7 {
		t.Errorf("numeric flags not applied: %+v", cfg)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if !cfg.Quiet || !cfg.JSONOutput {
		t.Errorf("boolean flags not applied: %+v", cfg)
	}
}

func TestParseConfigNormalizesCase(t *testing.T) {
	cfg, err := ParseConfig("algobench", []string{"-domain", "Matrix", "-strategy", "NAIVE"}, io.Discard, matrixStrategies)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Domain != "matrix" || cfg.Strategy != "naive" {
		t.Errorf("Domain/Strategy = %q/%q, want lowercased values", cfg.Domain, cfg.Strategy)
	}
}

func TestParseConfigRejectsInvalid(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"UnknownDomain", []string{"-domain", "sorting"}},
		{"UnknownStrategy", []string{"-domain", "matrix", "-strategy", "quantum"}},
		{"StrategyWithoutDomain", []string{"-strategy", "naive"}},
		{"ZeroSize", []string{"-size", "0"}},
		{"NegativeIterations", []string{"-iterations", "-5"}},
		{"ZeroTimeout", []string{"-timeout", "0s"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var errOut strings.Builder
			if _, err := ParseConfig("algobench", tc.args, &errOut, matrixStrategies); err == nil {
				t.Errorf("ParseConfig(%v) should fail", tc.args)
			}
		})
	}
}

func TestValidateReturnsConfigError(t *testing.T) {
	cfg := AppConfig{Domain: "matrix", Strategy: "all", MatrixSize: -1, Iterations: 1, Timeout: time.Second}
	err := cfg.Validate(matrixStrategies)
	var confErr apperrors.ConfigError
	if !stderrors.As(err, &confErr) {
		t.Errorf("Validate returned %v, want ConfigError", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"DOMAIN", "search")
	t.Setenv(EnvPrefix+"ITERATIONS", "25")
	t.Setenv(EnvPrefix+"QUIET", "yes")

	cfg, err := ParseConfig("algobench", nil, io.Discard, nil)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Domain != "search" {
		t.Errorf("Domain = %q, want env override %q", cfg.Domain, "search")
	}
	if cfg.Iterations != 25 {
		t.Errorf("Iterations = %d, want env override 25", cfg.Iterations)
	}
	if !cfg.Quiet {
		t.Error("Quiet should be enabled via environment")
	}
}

func TestFlagsBeatEnv(t *testing.T) {
	t.Setenv(EnvPrefix+"SIZE", "512")
	cfg, err := ParseConfig("algobench", []string{"-size", "64"}, io.Discard, nil)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.MatrixSize != 64 {
		t.Errorf("MatrixSize = %d, CLI flag should beat environment", cfg.MatrixSize)
	}
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	t.Setenv(EnvPrefix+"ITERATIONS", "not-a-number")
	t.Setenv(EnvPrefix+"TIMEOUT", "soon")
	cfg, err := ParseConfig("algobench", nil, io.Discard, nil)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Iterations != DefaultIterations {
		t.Errorf("Iterations = %d, want default on unparsable env", cfg.Iterations)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want default on unparsable env", cfg.Timeout)
	}
}
