// Package testutil holds helpers shared by handler tests and integration
// suites.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "benefitd/pkg/domain-errors"
	"benefitd/pkg/platform/httputil"
)

// NewJSONRequest builds a request whose body is body marshaled to JSON. A nil
// body sends no payload but keeps the JSON content type.
func NewJSONRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func NewRequest(t *testing.T, method, path string) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, path, nil)
}

// DoRequest serves req on handler and returns the recorded response.
func DoRequest(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

// UnmarshalResponse decodes the response body into a new T.
func UnmarshalResponse[T any](t *testing.T, rr *httptest.ResponseRecorder) *T {
	t.Helper()
	var out T
	decode(t, rr, &out)
	return &out
}

// UnmarshalErrorResponse decodes the error envelope written by httputil.WriteError.
func UnmarshalErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) httputil.ErrorResponse {
	t.Helper()
	var out httputil.ErrorResponse
	decode(t, rr, &out)
	return out
}

func AssertStatus(t *testing.T, rr *httptest.ResponseRecorder, expected int) {
	t.Helper()
	assert.Equal(t, expected, rr.Code, "unexpected status code, body: %s", rr.Body.String())
}

func AssertStatusOK(t *testing.T, rr *httptest.ResponseRecorder) {
	t.Helper()
	AssertStatus(t, rr, http.StatusOK)
}

// AssertResultCode checks the numeric result code carried by rule-table
// rejections.
func AssertResultCode(t *testing.T, rr *httptest.ResponseRecorder, expected dErrors.ResultCode) {
	t.Helper()
	assert.Equal(t, int(expected), UnmarshalErrorResponse(t, rr).Code, "unexpected result code")
}

// AssertStatusAndError checks the status and the "error" field of the envelope.
func AssertStatusAndError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedCode string) {
	t.Helper()
	AssertStatus(t, rr, expectedStatus)
	assert.Equal(t, expectedCode, UnmarshalErrorResponse(t, rr).Error, "unexpected error code")
}

// decode leaves the body unread, so one response can be decoded more than once.
func decode(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v), "failed to unmarshal response: %s", rr.Body.String())
}
