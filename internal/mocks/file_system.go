package mocks

import (
	"github.com/ragulkarthick4/Azure-Search-index/internal/errors"
	"github.com/ragulkarthick4/Azure-Search-index/internal/fs"
)

// FileSystem is a mocked implementation of 'fs.FileSystem'.
type FileSystem struct {
	MockOpen     func(name string) (fs.File, error)
	MockGlob     func(pattern string) ([]string, error)
	MockGlobMany func(patterns []string) ([]string, error)
}

// Open either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) Open(name string) (fs.File, error) {
	if f.MockOpen != nil {
		return f.MockOpen(name)
	}

	return nil, errors.NewInternalError("MockOpen was not configured")
}

// Glob either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) Glob(pattern string) ([]string, error) {
	if f.MockGlob != nil {
		return f.MockGlob(pattern)
	}

	return nil, errors.NewInternalError("MockGlob was not configured")
}

// GlobMany either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) GlobMany(patterns []string) ([]string, error) {
	if f.MockGlobMany != nil {
		return f.MockGlobMany(patterns)
	}

	return nil, errors.NewInternalError("MockGlobMany was not configured")
}
