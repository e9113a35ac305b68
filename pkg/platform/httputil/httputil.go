// Package httputil holds the JSON request/response helpers shared by handlers.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	dErrors "benefitd/pkg/domain-errors"
)

// MaxBodyBytes bounds request bodies decoded by DecodeAndPrepare.
const MaxBodyBytes = 64 << 10

// Validatable is implemented by request DTOs that normalize and check themselves.
type Validatable interface {
	Validate() error
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	Code             int    `json:"code,omitempty"`
}

var statusByCode = map[dErrors.Code]int{
	dErrors.CodeBadRequest:         http.StatusBadRequest,
	dErrors.CodeValidation:         http.StatusBadRequest,
	dErrors.CodeInvalidInput:       http.StatusBadRequest,
	dErrors.CodeUnauthorized:       http.StatusUnauthorized,
	dErrors.CodeForbidden:          http.StatusForbidden,
	dErrors.CodeNotFound:           http.StatusNotFound,
	dErrors.CodeConflict:           http.StatusConflict,
	dErrors.CodeExpired:            http.StatusGone,
	dErrors.CodeInvariantViolation: http.StatusUnprocessableEntity,
	dErrors.CodeTimeout:            http.StatusGatewayTimeout,
	dErrors.CodeInternal:           http.StatusInternalServerError,
}

// StatusFor maps a domain error code to an HTTP status.
func StatusFor(code dErrors.Code) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates err into the JSON error envelope. Internal errors
// never leak their description.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	resp := ErrorResponse{
		Error: string(code),
		Code:  int(dErrors.ResultCodeOf(err)),
	}
	if code != dErrors.CodeInternal {
		resp.ErrorDescription = err.Error()
	}
	WriteJSON(w, StatusFor(code), resp)
}

// DecodeAndPrepare decodes a JSON body into T and validates it. On failure it
// writes the error response, logs it, and returns ok=false.
func DecodeAndPrepare[T any, PT interface {
	*T
	Validatable
}](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	var req T
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		msg := "invalid JSON body"
		if errors.Is(err, io.EOF) {
			msg = "request body is required"
		}
		logger.WarnContext(ctx, "failed to decode request",
			"request_id", requestID,
			"error", err,
		)
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, msg))
		return nil, false
	}

	if err := PT(&req).Validate(); err != nil {
		logger.WarnContext(ctx, "invalid request",
			"request_id", requestID,
			"error", err,
		)
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			err = dErrors.New(dErrors.CodeValidation, err.Error())
		}
		WriteError(w, err)
		return nil, false
	}
	return &req, true
}

// QueryInt64 reads a required integer query parameter.
func QueryInt64(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, dErrors.New(dErrors.CodeValidation, name+" is required")
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeValidation, name+" must be an integer")
	}
	return v, nil
}
