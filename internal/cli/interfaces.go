package cli

import (
	"context"

	v1 "github.com/ragulkarthick4/Azure-Search-index/internal/reportschema/v1"
)

// APIClient is the interface of our search-service layer.
type APIClient interface {
	EnsureIndex(context.Context) error
	UploadDocuments(context.Context, []v1.IndexDocument) error
}
