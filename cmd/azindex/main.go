// Package main holds the main command line interface for azindex. The package itself is mainly concerned
// with configuring the necessary options before passing control to `internal/cli`, which holds the business
// logic itself.
package main

import (
	"fmt"
	"os"

	"github.com/ragulkarthick4/Azure-Search-index/internal/errors"
)

func main() {
	for _, err := range initializationErrors {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Logging is expected to take place in `internal/cli`, as text output is the primary way of
	// communicating to a user on the terminal. Configuration errors are the exception: they surface here,
	// decorated with their resolution.
	if err := rootCmd.Execute(); err != nil {
		if _, ok := errors.AsConfigurationError(err); ok {
			fmt.Fprintln(os.Stderr, errors.WithDecoration(err))
		}

		os.Exit(1)
	}
}
