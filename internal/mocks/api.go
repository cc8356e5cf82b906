// Package mocks holds hand-rolled mocks of our internal interfaces. Every mocked method calls the configured
// `Mock*` function of itself or returns an error if that doesn't exist.
package mocks

import (
	"context"

	"github.com/ragulkarthick4/Azure-Search-index/internal/errors"
	v1 "github.com/ragulkarthick4/Azure-Search-index/internal/reportschema/v1"
)

// API is a mocked implementation of 'api.Client'.
type API struct {
	MockEnsureIndex     func(context.Context) error
	MockUploadDocuments func(context.Context, []v1.IndexDocument) error
}

// EnsureIndex either calls the configured mock of itself or returns an error if that doesn't exist.
func (a *API) EnsureIndex(ctx context.Context) error {
	if a.MockEnsureIndex != nil {
		return a.MockEnsureIndex(ctx)
	}

	return errors.NewInternalError("MockEnsureIndex was not configured")
}

// UploadDocuments either calls the configured mock of itself or returns an error if that doesn't exist.
func (a *API) UploadDocuments(ctx context.Context, documents []v1.IndexDocument) error {
	if a.MockUploadDocuments != nil {
		return a.MockUploadDocuments(ctx, documents)
	}

	return errors.NewInternalError("MockUploadDocuments was not configured")
}
