package api

import "regexp"

const (
	defaultAPIVersion = "2023-11-01"
	defaultIndexName  = "testindex"

	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
	headerAPIKey      = "api-key"
)

var apiKeyHeaderRegexp = regexp.MustCompile(`(?i)api-key:.*`)
