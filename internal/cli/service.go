// Package cli holds the main business logic of the CLI. This is mainly:
// 1. Orchestrating the parse -> build -> upload pipeline based on the provided input parameters.
// 2. User-friendly logging
// However, this package _does not_ implement the actual terminal UI. That part is handled by `cmd/azindex`.
package cli

import (
	"time"

	"go.uber.org/zap"

	"github.com/ragulkarthick4/Azure-Search-index/internal/fs"
	"github.com/ragulkarthick4/Azure-Search-index/internal/parsing"
)

// Service is the main CLI service.
type Service struct {
	API        APIClient
	Log        *zap.SugaredLogger
	FileSystem fs.FileSystem

	// ParseConfig carries the fixed metadata context that gets stamped into every parsed report.
	ParseConfig parsing.Config

	// ProcessingTime is the instant of this run, matching ParseConfig.ProcessedAt. The index document
	// builder derives its canonical timestamps from it.
	ProcessingTime time.Time
}

func (s Service) logError(err error) error {
	s.Log.Errorf(err.Error())
	return err
}
