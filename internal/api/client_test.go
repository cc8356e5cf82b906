package api_test

import (
	"context"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap/zaptest"

	"github.com/ragulkarthick4/Azure-Search-index/internal/api"
	v1 "github.com/ragulkarthick4/Azure-Search-index/internal/reportschema/v1"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func jsonResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

var _ = Describe("Client", func() {
	var (
		ctx    context.Context
		client api.Client
	)

	newClient := func(roundTrip func(*http.Request) (*http.Response, error)) api.Client {
		c, err := api.NewClient(api.ClientConfig{
			APIKey: "some-key",
			Host:   "myservice.search.windows.net",
			Log:    zaptest.NewLogger(GinkgoT()).Sugar(),
		})
		Expect(err).ToNot(HaveOccurred())

		c.RoundTrip = roundTrip
		return c
	}

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("NewClient", func() {
		It("applies the default API version and index name", func() {
			client = newClient(nil)
			Expect(client.APIVersion).To(Equal("2023-11-01"))
			Expect(client.IndexName).To(Equal("testindex"))
		})

		It("rejects configurations without a host", func() {
			_, err := api.NewClient(api.ClientConfig{
				APIKey: "some-key",
				Log:    zaptest.NewLogger(GinkgoT()).Sugar(),
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Missing search service host"))
		})

		It("rejects configurations without an API key", func() {
			_, err := api.NewClient(api.ClientConfig{
				Host: "myservice.search.windows.net",
				Log:  zaptest.NewLogger(GinkgoT()).Sugar(),
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Missing API key"))
		})
	})

	Describe("EnsureIndex", func() {
		It("leaves an existing index untouched", func() {
			requests := make([]*http.Request, 0)

			client = newClient(func(req *http.Request) (*http.Response, error) {
				requests = append(requests, req)
				return jsonResponse(http.StatusOK, `{}`), nil
			})

			Expect(client.EnsureIndex(ctx)).To(Succeed())

			Expect(requests).To(HaveLen(1))
			Expect(requests[0].Method).To(Equal(http.MethodGet))
			Expect(requests[0].URL.Path).To(Equal("/indexes('testindex')"))
			Expect(requests[0].URL.Query().Get("api-version")).To(Equal("2023-11-01"))
		})

		It("creates the index when it does not exist", func() {
			requests := make([]*http.Request, 0)
			bodies := make([]string, 0)

			client = newClient(func(req *http.Request) (*http.Response, error) {
				requests = append(requests, req)

				if req.Method == http.MethodGet {
					return jsonResponse(http.StatusNotFound, `{}`), nil
				}

				body, err := io.ReadAll(req.Body)
				Expect(err).ToNot(HaveOccurred())
				bodies = append(bodies, string(body))

				return jsonResponse(http.StatusCreated, `{}`), nil
			})

			Expect(client.EnsureIndex(ctx)).To(Succeed())

			Expect(requests).To(HaveLen(2))
			Expect(requests[1].Method).To(Equal(http.MethodPost))
			Expect(requests[1].URL.Path).To(Equal("/indexes"))
			Expect(bodies[0]).To(ContainSubstring(`"name":"testindex"`))
			Expect(bodies[0]).To(ContainSubstring(`"fields"`))
		})

		It("tolerates a concurrent index creation", func() {
			client = newClient(func(req *http.Request) (*http.Response, error) {
				if req.Method == http.MethodGet {
					return jsonResponse(http.StatusNotFound, `{}`), nil
				}

				return jsonResponse(http.StatusConflict, `{}`), nil
			})

			Expect(client.EnsureIndex(ctx)).To(Succeed())
		})

		It("errors when the existence check fails", func() {
			client = newClient(func(req *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusInternalServerError, `{}`), nil
			})

			err := client.EnsureIndex(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Status Code 500"))
		})
	})

	Describe("UploadDocuments", func() {
		documents := []v1.IndexDocument{
			{ID: "id-1", TestID: "test_2.py::test_google_search", Result: "Passed"},
			{ID: "id-2", TestID: "test_2.py::test_login", Result: "Failed"},
		}

		It("does nothing for an empty batch", func() {
			client = newClient(func(req *http.Request) (*http.Response, error) {
				Fail("no request expected")
				return nil, nil
			})

			Expect(client.UploadDocuments(ctx, nil)).To(Succeed())
		})

		It("uploads the batch in a single bulk request", func() {
			requests := make([]*http.Request, 0)
			bodies := make([]string, 0)

			client = newClient(func(req *http.Request) (*http.Response, error) {
				requests = append(requests, req)

				body, err := io.ReadAll(req.Body)
				Expect(err).ToNot(HaveOccurred())
				bodies = append(bodies, string(body))

				return jsonResponse(http.StatusOK,
					`{"value":[{"key":"id-1","status":true},{"key":"id-2","status":true}]}`,
				), nil
			})

			Expect(client.UploadDocuments(ctx, documents)).To(Succeed())

			Expect(requests).To(HaveLen(1))
			Expect(requests[0].Method).To(Equal(http.MethodPost))
			Expect(requests[0].URL.Path).To(Equal("/indexes('testindex')/docs/search.index"))
			Expect(bodies[0]).To(ContainSubstring(`"@search.action":"mergeOrUpload"`))
			Expect(bodies[0]).To(ContainSubstring(`"id":"id-1"`))
			Expect(bodies[0]).To(ContainSubstring(`"id":"id-2"`))
		})

		It("errors when the service rejects individual documents", func() {
			client = newClient(func(req *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK,
					`{"value":[{"key":"id-1","status":true},`+
						`{"key":"id-2","status":false,"errorMessage":"boom"}]}`,
				), nil
			})

			err := client.UploadDocuments(ctx, documents)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("rejected 1 document(s)"))
			Expect(err.Error()).To(ContainSubstring("id-2"))
		})

		It("errors when the bulk request fails outright", func() {
			client = newClient(func(req *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusServiceUnavailable, `{}`), nil
			})

			err := client.UploadDocuments(ctx, documents)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Status Code 503"))
		})
	})
})
