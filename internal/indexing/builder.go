// Package indexing flattens normalized report documents into self-contained index documents. It performs no
// network or storage side effects; handing the documents to the search service is the API layer's job.
package indexing

import (
	"time"

	"github.com/google/uuid"

	"github.com/ragulkarthick4/Azure-Search-index/internal/errors"
	v1 "github.com/ragulkarthick4/Azure-Search-index/internal/reportschema/v1"
)

// timestampFormat is the canonical UTC instant format the search index expects for its DateTimeOffset fields.
const timestampFormat = "2006-01-02T15:04:05Z"

// Builder turns report documents into index documents.
type Builder struct {
	// ProcessingTime is the instant stamped into every document as 'timestamp' and 'metadata.processed_at'.
	ProcessingTime time.Time
}

// Build produces one index document per test case record, preserving the record order. Every document gets a
// fresh random identifier and its own copy of the report's environment record, so repeated runs append to
// the index rather than overwrite earlier batches.
func (b Builder) Build(report *v1.ReportDocument) ([]v1.IndexDocument, error) {
	if report == nil {
		return nil, errors.NewInternalError("no report document was provided")
	}

	timestamp := b.ProcessingTime.UTC().Format(timestampFormat)
	documents := make([]v1.IndexDocument, len(report.Tests))

	for i, test := range report.Tests {
		id, err := uuid.NewRandom()
		if err != nil {
			return nil, errors.NewInternalError("unable to generate new UUID: %s", err)
		}

		documents[i] = v1.IndexDocument{
			ID:        id.String(),
			TestID:    test.TestID,
			Result:    test.Result,
			Duration:  test.Duration,
			Log:       test.Log,
			Timestamp: timestamp,
			// The environment record holds no reference types; assignment is a deep copy.
			Environment: report.Environment,
			Metadata: v1.ReportMetadata{
				ProcessorVersion: report.Metadata.ProcessorVersion,
				ProcessedBy:      report.Metadata.ProcessedBy,
				ProcessedAt:      timestamp,
			},
			Title: report.Title,
		}
	}

	return documents, nil
}
