package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
	v1 "github.com/weekbudget/backend/internal/controllers/v1"
	"github.com/weekbudget/backend/pkg/router"
)

// defaultAPIURL is used when API_URL is not set.
const defaultAPIURL = "http://example.com"

// Request sends a request through a fully configured router serving the
// controller and returns the recorded response.
//
// A string body is sent as is, any other non-nil body is encoded as JSON.
func Request(co v1.Controller, t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	t.Helper()

	apiURL := defaultAPIURL
	if env, ok := os.LookupEnv("API_URL"); ok {
		apiURL = env
	}

	baseURL, err := url.Parse(apiURL)
	require.Nil(t, err, "API_URL must be a valid URL")

	r, teardown, err := router.Config(baseURL, router.Options{})
	defer teardown()
	require.Nil(t, err, "Router could not be initialized")

	router.AttachRoutes(co, r.Group("/"))

	req := httptest.NewRequest(method, reqURL, encodeBody(t, body))
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	return *recorder
}

func encodeBody(t *testing.T, body any) io.Reader {
	switch b := body.(type) {
	case nil:
		return http.NoBody
	case string:
		return bytes.NewBufferString(b)
	default:
		encoded, err := json.Marshal(b)
		require.Nil(t, err, "Request body could not be encoded")
		return bytes.NewReader(encoded)
	}
}

// DecodeResponse decodes the JSON body of the response into target.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	t.Helper()

	err := json.Unmarshal(r.Body.Bytes(), target)
	require.Nil(t, err, "Response %q could not be decoded into %v. Request ID: %s", r.Body, reflect.TypeOf(target), r.Header().Get("X-Request-ID"))
}

// AssertHTTPStatus fails the test if the status code is none of the expected ones.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	t.Helper()

	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: %q, body: %s", r.Header().Get("X-Request-ID"), r.Body.String())
}
