package api

import (
	"go.uber.org/zap"

	"github.com/ragulkarthick4/Azure-Search-index/internal/errors"
)

// ClientConfig is the configuration object for the search-service API client
type ClientConfig struct {
	APIKey     string
	APIVersion string
	Debug      bool
	Host       string
	IndexName  string
	Insecure   bool
	Log        *zap.SugaredLogger
}

// Validate checks the configuration for errors
func (cc ClientConfig) Validate() error {
	if cc.Log == nil {
		return errors.NewInternalError("missing logger")
	}

	if cc.Host == "" {
		return errors.NewConfigurationError(
			"Missing search service host",
			"No search service host was provided. The client needs to know which service to talk to.",
			"Set the host using the --search-host flag, e.g. \"myservice.search.windows.net\".",
		)
	}

	if cc.APIKey == "" {
		return errors.NewConfigurationError(
			"Missing API key",
			"No admin key for the search service was provided. All requests to the service are authenticated.",
			"Set the key using the --api-key flag or the AZINDEX_API_KEY environment variable.",
		)
	}

	return nil
}

// WithDefaults returns a copy of the configuration with defaults applied where necessary.
func (cc ClientConfig) WithDefaults() ClientConfig {
	if cc.APIVersion == "" {
		cc.APIVersion = defaultAPIVersion
	}

	if cc.IndexName == "" {
		cc.IndexName = defaultIndexName
	}

	return cc
}
