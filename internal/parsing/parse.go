// Package parsing holds the pipeline that turns a raw pytest-html report into a normalized report document.
// The embedded JSON blob is the preferred source for environment data; scraping the rendered tables is a
// strict fallback, never merged with partial blob results.
package parsing

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/ragulkarthick4/Azure-Search-index/internal/errors"
	"github.com/ragulkarthick4/Azure-Search-index/internal/fs"
	v1 "github.com/ragulkarthick4/Azure-Search-index/internal/reportschema/v1"
)

// DefaultTitle is used when a report carries no title element.
const DefaultTitle = "report.html"

// Config holds the fixed metadata context of a processing run. The metadata is supplied by the invoking
// process; it is never derived from the report document.
type Config struct {
	ProcessorVersion string
	ProcessedBy      string
	ProcessedAt      string
	Logger           *zap.SugaredLogger
}

// Validate checks the configuration for errors
func (c Config) Validate() error {
	if c.ProcessedBy == "" {
		return errors.NewConfigurationError(
			"Missing processing metadata",
			"No 'processed by' value was provided. Every report document is stamped with the user or system "+
				"that triggered the processing run.",
			"Set a value using the --processed-by flag.",
		)
	}

	if c.ProcessedAt == "" {
		return errors.NewConfigurationError(
			"Missing processing timestamp",
			"No 'processed at' value was provided. Every report document is stamped with the timestamp of "+
				"the processing run.",
			"Set a timestamp using the --processed-at flag, formatted as \"YYYY-MM-DD HH:MM:SS\".",
		)
	}

	if c.Logger == nil {
		return errors.NewInternalError("No logger was provided")
	}

	return nil
}

// Parse converts one HTML report into a normalized report document. Missing optional data degrades to
// documented defaults; Parse fails only if the input cannot be read or does not look like a report at all.
func Parse(file fs.File, cfg Config) (*v1.ReportDocument, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	doc, err := goquery.NewDocumentFromReader(file)
	if err != nil {
		return nil, errors.NewInputError("Unable to parse %q as markup: %s", file.Name(), err)
	}

	if doc.Find("table#results-table").Length() == 0 &&
		doc.Find("table#environment").Length() == 0 &&
		doc.Find("div#data-container").Length() == 0 {
		return nil, errors.NewInputError(
			"%q does not look like a test report: it has neither a results table, an environment table, "+
				"nor an embedded data container",
			file.Name(),
		)
	}

	extraction := ExtractEnvironment(doc)
	if extraction.Source == ExtractionSourceHTMLTable {
		cfg.Logger.Warnf("Scraping the environment table of %q: %s", file.Name(), extraction.FallbackReason)
	} else {
		cfg.Logger.Debugf("Environment of %q was extracted from the embedded blob", file.Name())
	}

	tests := ExtractTestResults(doc)
	cfg.Logger.Debugf("Extracted %d test case(s) from %q", len(tests), file.Name())

	title := strings.TrimSpace(doc.Find("h1#title").First().Text())
	if title == "" {
		title = DefaultTitle
	}

	return v1.NewReportDocument(title, extraction.Record, tests, v1.ReportMetadata{
		ProcessorVersion: cfg.ProcessorVersion,
		ProcessedBy:      cfg.ProcessedBy,
		ProcessedAt:      cfg.ProcessedAt,
	}), nil
}
