package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/algobench/internal/ui"
)

func TestFormatExecutionDuration(t *testing.T) {
	testCases := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{"Microseconds", 500 * time.Microsecond, "500µs"},
		{"Milliseconds", 42 * time.Millisecond, "42ms"},
		{"SubMillisecond", 999 * time.Microsecond, "999µs"},
		{"Seconds", 2 * time.Second, "2s"},
		{"Zero", 0, "0µs"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatExecutionDuration(tc.duration); got != tc.want {
				t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tc.duration, got, tc.want)
			}
		})
	}
}

func TestFormatNumberString(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"123", "123"},
		{"1234", "1,234"},
		{"1234567", "1,234,567"},
		{"-1234567", "-1,234,567"},
		{"100000", "100,000"},
	}
	for _, tc := range testCases {
		if got := formatNumberString(tc.in); got != tc.want {
			t.Errorf("formatNumberString(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// fakeSpinner records the spinner lifecycle for assertions.
type fakeSpinner struct {
	started bool
	stopped bool
	suffix  string
}

func (f *fakeSpinner) Start()                     { f.started = true }
func (f *fakeSpinner) Stop()                      { f.stopped = true }
func (f *fakeSpinner) UpdateSuffix(suffix string) { f.suffix = suffix }

func TestWithSpinnerLifecycle(t *testing.T) {
	fake := &fakeSpinner{}
	original := newSpinner
	newSpinner = func(options ...spinner.Option) Spinner { return fake }
	defer func() { newSpinner = original }()

	boom := errors.New("workload error")
	err := WithSpinner("comparing strategies", false, nil, func() error {
		if !fake.started {
			t.Error("spinner should be running while the workload executes")
		}
		return boom
	})

	if !errors.Is(err, boom) {
		t.Errorf("WithSpinner should return the workload error, got %v", err)
	}
	if !fake.stopped {
		t.Error("spinner should be stopped after the workload returns")
	}
	if fake.suffix == "" {
		t.Error("spinner suffix should carry the message")
	}
}

func TestWithSpinnerQuietSkipsSpinner(t *testing.T) {
	original := newSpinner
	newSpinner = func(options ...spinner.Option) Spinner {
		t.Fatal("quiet mode must not construct a spinner")
		return nil
	}
	defer func() { newSpinner = original }()

	called := false
	if err := WithSpinner("msg", true, nil, func() error { called = true; return nil }); err != nil {
		t.Fatalf("WithSpinner returned %v", err)
	}
	if !called {
		t.Error("workload should run in quiet mode")
	}
}

func TestCLIColorProviderFollowsTheme(t *testing.T) {
	originalTheme := ui.GetCurrentTheme()
	defer ui.SetCurrentTheme(originalTheme)

	ui.SetTheme("dark")
	provider := CLIColorProvider{}
	if provider.Yellow() == "" || provider.Reset() == "" {
		t.Error("dark theme should produce non-empty escape codes")
	}

	ui.SetTheme("none")
	if provider.Yellow() != "" || provider.Reset() != "" {
		t.Error("no-color theme should produce empty escape codes")
	}
}
