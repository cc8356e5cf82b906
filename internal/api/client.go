// Package api holds the client for the search service. It is a fairly transparent package, mapping the
// service's REST calls to Go methods. Index- and service-provisioning beyond the idempotent index creation
// below is out of scope; it is expected to be handled by the surrounding infrastructure.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"strings"

	"github.com/ragulkarthick4/Azure-Search-index/internal/errors"
	v1 "github.com/ragulkarthick4/Azure-Search-index/internal/reportschema/v1"
)

// Client is the main client for the search service.
type Client struct {
	ClientConfig
	RoundTrip func(*http.Request) (*http.Response, error)
}

// NewClient is the preferred constructor for the API client. It makes sure that the configuration is valid &
// necessary defaults are applied.
func NewClient(cfg ClientConfig) (Client, error) {
	cfg = cfg.WithDefaults()

	if err := cfg.Validate(); err != nil {
		return Client{}, err
	}

	client := &http.Client{}

	roundTrip := func(req *http.Request) (*http.Response, error) {
		req.URL.Scheme = "https"
		if cfg.Insecure {
			req.URL.Scheme = "http"
		}

		req.URL.Host = cfg.Host
		req.Header.Set(headerAPIKey, cfg.APIKey)

		if cfg.Debug {
			hasBody := req.Body != nil
			dump, _ := httputil.DumpRequest(req, hasBody)
			sanitizedDump := apiKeyHeaderRegexp.ReplaceAll(dump, []byte("api-key: <redacted>"))
			cfg.Log.Debugf("Executing following HTTP request:\n\n%s\n", sanitizedDump)
		}

		resp, err := client.Do(req)
		if err != nil {
			return resp, errors.NewSystemError("unable to perform HTTP request to %q: %s", req.URL, err)
		}

		if cfg.Debug {
			dump, _ := httputil.DumpResponse(resp, true)
			cfg.Log.Debugf("Received following response:\n\n%s\n", dump)
		}

		return resp, nil
	}

	return Client{cfg, roundTrip}, nil
}

func (c Client) newRequest(ctx context.Context, method string, endpoint string, body []byte) (*http.Request, error) {
	var reader *bytes.Buffer
	if body == nil {
		reader = &bytes.Buffer{}
	} else {
		reader = bytes.NewBuffer(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, errors.NewInternalError("unable to construct HTTP request: %s", err)
	}

	queryValues := req.URL.Query()
	queryValues.Add("api-version", c.APIVersion)
	req.URL.RawQuery = queryValues.Encode()

	if body != nil {
		req.Header.Set(headerContentType, contentTypeJSON)
	}

	return req, nil
}

func (c Client) postJSON(ctx context.Context, endpoint string, body any) (*http.Response, error) {
	encodedBody, err := json.Marshal(body)
	if err != nil {
		return nil, errors.NewInternalError("unable to construct JSON object for request: %s", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, endpoint, encodedBody)
	if err != nil {
		return nil, err
	}

	resp, err := c.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// EnsureIndex makes sure the search index exists. An index that is already present is left untouched; there
// is deliberately no update-in-place of the schema here.
func (c Client) EnsureIndex(ctx context.Context) error {
	endpoint := fmt.Sprintf("/indexes('%s')", c.IndexName)

	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.RoundTrip(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 300 {
		c.Log.Debugf("Search index %q already exists", c.IndexName)
		return nil
	}

	if resp.StatusCode != http.StatusNotFound {
		return errors.NewInternalError(
			"Search service encountered an error while checking index %q. Status Code %d",
			c.IndexName,
			resp.StatusCode,
		)
	}

	c.Log.Debugf("Creating search index %q", c.IndexName)

	createResp, err := c.postJSON(ctx, "/indexes", newIndexSchema(c.IndexName))
	if err != nil {
		return err
	}
	defer createResp.Body.Close()

	// A conflict means another run created the index in the meantime, which is fine.
	if createResp.StatusCode >= 400 && createResp.StatusCode != http.StatusConflict {
		return errors.NewInternalError(
			"Search service encountered an error while creating index %q. Status Code %d",
			c.IndexName,
			createResp.StatusCode,
		)
	}

	return nil
}

const actionMergeOrUpload = "mergeOrUpload"

// indexAction is one entry of a bulk indexing request. Since every run generates fresh document ids,
// mergeOrUpload effectively appends.
type indexAction struct {
	Action string `json:"@search.action"`
	v1.IndexDocument
}

// UploadDocuments hands a batch of index documents to the search service in a single bulk request. The
// document id is the index key.
func (c Client) UploadDocuments(ctx context.Context, documents []v1.IndexDocument) error {
	if len(documents) == 0 {
		c.Log.Debug("No index documents to upload")
		return nil
	}

	actions := make([]indexAction, len(documents))
	for i, document := range documents {
		actions[i] = indexAction{Action: actionMergeOrUpload, IndexDocument: document}
	}

	reqBody := struct {
		Value []indexAction `json:"value"`
	}{Value: actions}

	endpoint := fmt.Sprintf("/indexes('%s')/docs/search.index", c.IndexName)

	resp, err := c.postJSON(ctx, endpoint, reqBody)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return errors.NewInternalError(
			"Search service encountered an error. Endpoint was %q, Status Code %d",
			endpoint,
			resp.StatusCode,
		)
	}

	respBody := struct {
		Value []struct {
			Key          string `json:"key"`
			Status       bool   `json:"status"`
			ErrorMessage string `json:"errorMessage"`
		} `json:"value"`
	}{}

	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return errors.NewInternalError(
			"unable to parse the response body. Endpoint was %q, Content-Type %q. Original Error: %s",
			endpoint,
			resp.Header.Get(headerContentType),
			err,
		)
	}

	failedKeys := make([]string, 0)
	for _, result := range respBody.Value {
		if !result.Status {
			failedKeys = append(failedKeys, result.Key)
		}
	}

	if len(failedKeys) != 0 {
		return errors.NewSystemError(
			"the search service rejected %d document(s): %s",
			len(failedKeys),
			strings.Join(failedKeys, ", "),
		)
	}

	return nil
}
