//go:build mage
// +build mage

package main

import (
	"context"
	"os"

	"github.com/magefile/mage/sh"
)

// Default is the default build target.
var Default = Build

// Build builds the azindex CLI
func Build(ctx context.Context) error {
	args := []string{"./cmd/azindex"}

	if ldflags := os.Getenv("LDFLAGS"); ldflags != "" {
		args = append([]string{"-ldflags", ldflags}, args...)
	}

	return sh.RunV("go", append([]string{"build"}, args...)...)
}

// Clean removes any generated artifacts from the repository.
func Clean(ctx context.Context) error {
	return sh.Rm("./azindex")
}

// Lint runs the linter & performs static-analysis checks.
func Lint(ctx context.Context) error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Test executes the test-suite.
func Test(ctx context.Context) error {
	return sh.RunV("go", "run", "github.com/onsi/ginkgo/v2/ginkgo", "-p", "--randomize-all", "./...")
}
