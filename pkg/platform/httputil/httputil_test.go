package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "benefitd/pkg/domain-errors"
)

func TestWriteError(t *testing.T) {
	t.Run("internal error omits description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeInternal, "db failed"))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "internal_error" {
			t.Fatalf("expected error code internal_error, got %q", body["error"])
		}
		if _, ok := body["error_description"]; ok {
			t.Fatalf("expected error_description to be omitted for internal errors")
		}
	})

	t.Run("bad request includes description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid input"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "bad_request" {
			t.Fatalf("expected error code bad_request, got %q", body["error"])
		}
		if body["error_description"] != "invalid input" {
			t.Fatalf("expected error_description to be returned for bad request")
		}
	})

	t.Run("rule errors carry their result code", func(t *testing.T) {
		tests := []struct {
			code   dErrors.Code
			status int
			result int
		}{
			{dErrors.CodeForbidden, http.StatusForbidden, 100},
			{dErrors.CodeConflict, http.StatusConflict, 101},
			{dErrors.CodeNotFound, http.StatusNotFound, 102},
			{dErrors.CodeExpired, http.StatusGone, 103},
		}
		for _, tt := range tests {
			w := httptest.NewRecorder()
			WriteError(w, dErrors.New(tt.code, "rejected"))

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.result, body.Code)
			assert.Equal(t, string(tt.code), body.Error)
		}
	})
}

type thresholdsRequest struct {
	Electricity int64 `json:"electricity"`
}

func (r *thresholdsRequest) Validate() error {
	if r.Electricity < 0 {
		return dErrors.New(dErrors.CodeValidation, "electricity must not be negative")
	}
	return nil
}

func TestDecodeAndPrepare(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	decode := func(body string) (*thresholdsRequest, *httptest.ResponseRecorder) {
		r := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
		w := httptest.NewRecorder()
		req, ok := DecodeAndPrepare[thresholdsRequest](w, r, logger, context.Background(), "req-1")
		if !ok {
			return nil, w
		}
		return req, w
	}

	t.Run("valid body", func(t *testing.T) {
		req, _ := decode(`{"electricity": 600}`)
		require.NotNil(t, req)
		assert.Equal(t, int64(600), req.Electricity)
	})

	t.Run("empty body", func(t *testing.T) {
		req, w := decode("")
		assert.Nil(t, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "request body is required")
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		req, w := decode(`{"electricity": 1, "admin": "me"}`)
		assert.Nil(t, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validation failure", func(t *testing.T) {
		req, w := decode(`{"electricity": -1}`)
		assert.Nil(t, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "must not be negative")
	})
}

func TestQueryInt64(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/subsidy/calculate?income=20000&household_size=two", nil)

	v, err := QueryInt64(req, "income")
	require.NoError(t, err)
	assert.Equal(t, int64(20000), v)

	_, err = QueryInt64(req, "household_size")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	_, err = QueryInt64(req, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing is required")
}
