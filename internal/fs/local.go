// Package fs is a thin wrapper around potential file-systems. By default, it is an abstraction over the `os` package
// from the standard library.
package fs

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/ragulkarthick4/Azure-Search-index/internal/errors"
)

// Local is a local file-system. It wraps the default `os` package
type Local struct{}

// Open opens a file for further processing
func (l Local) Open(name string) (File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return f, nil
}

// Glob expands a single file-path pattern
func (l Local) Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return matches, nil
}

// GlobMany expands a list of file-path patterns, de-duplicating the result
func (l Local) GlobMany(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	expandedPaths := make([]string, 0)

	for _, pattern := range patterns {
		matches, err := l.Glob(pattern)
		if err != nil {
			return nil, err
		}

		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}

			seen[match] = struct{}{}
			expandedPaths = append(expandedPaths, match)
		}
	}

	sort.Strings(expandedPaths)
	return expandedPaths, nil
}
