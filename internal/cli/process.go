package cli

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ragulkarthick4/Azure-Search-index/internal/errors"
	"github.com/ragulkarthick4/Azure-Search-index/internal/indexing"
	v1 "github.com/ragulkarthick4/Azure-Search-index/internal/reportschema/v1"
)

// Process is the implementation of `azindex process`. It expands the provided file-path patterns, parses
// every report, and uploads the resulting index documents to the search service. A report that fails to
// parse aborts the run without emitting any documents for it; a report is only ever uploaded as a complete
// batch.
func (s Service) Process(ctx context.Context, filepaths []string) error {
	reportPaths, err := s.FileSystem.GlobMany(filepaths)
	if err != nil {
		return s.logError(errors.NewSystemError("unable to expand file-path patterns: %s", err))
	}

	if len(reportPaths) == 0 {
		s.Log.Warn("No report documents found, nothing to process")
		return nil
	}

	if err := s.API.EnsureIndex(ctx); err != nil {
		return s.logError(errors.Wrap(err, "unable to prepare the search index"))
	}

	// The pipeline is pure & stateless, so independent reports can be parsed concurrently. Uploads happen
	// afterwards, once each report's batch is fully built.
	batches := make([][]v1.IndexDocument, len(reportPaths))
	eg, _ := errgroup.WithContext(ctx)

	for i, reportPath := range reportPaths {
		i, reportPath := i, reportPath

		eg.Go(func() error {
			documents, err := s.buildIndexDocuments(reportPath)
			if err != nil {
				return err
			}

			batches[i] = documents
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return s.logError(err)
	}

	for i, batch := range batches {
		if len(batch) == 0 {
			s.Log.Warnf("%q contains no test cases, nothing to upload", reportPaths[i])
			continue
		}

		if err := s.API.UploadDocuments(ctx, batch); err != nil {
			return s.logError(errors.Wrapf(err, "unable to upload index documents for %q", reportPaths[i]))
		}

		s.Log.Infof("Indexed %d test result(s) from %q", len(batch), reportPaths[i])
	}

	return nil
}

func (s Service) buildIndexDocuments(reportPath string) ([]v1.IndexDocument, error) {
	report, err := s.parseReport(reportPath)
	if err != nil {
		return nil, err
	}

	documents, err := indexing.Builder{ProcessingTime: s.ProcessingTime}.Build(report)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return documents, nil
}
