// Command algobench compares interchangeable implementations of dense
// matrix multiplication, string pattern search and scalar math
// approximation, verifying that they agree before reporting their relative
// performance.
package main

import (
	"context"
	"os"

	"github.com/agbru/algobench/internal/app"
	apperrors "github.com/agbru/algobench/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		os.Exit(apperrors.ExitSuccess)
	}

	a, err := app.New(os.Args, os.Stderr)
	if err != nil {
		os.Exit(apperrors.ExitErrorConfig)
	}
	os.Exit(a.Run(context.Background(), os.Stdout))
}
