// Package domainerrors defines coded errors shared by services and transports.
//
// Services return these so handlers can translate them into HTTP responses and
// callers can branch on the code without string matching:
//
//	if dErrors.HasCode(err, dErrors.CodeNotFound) { ... }
//
// Infrastructure layers return pkg/platform/sentinel errors instead; services
// are responsible for translating those into coded errors here.
package domainerrors

import (
	"errors"
)

// Code classifies a domain error.
type Code string

const (
	CodeBadRequest         Code = "bad_request"
	CodeValidation         Code = "validation_error"
	CodeInvalidInput       Code = "invalid_input"
	CodeUnauthorized       Code = "unauthorized"
	CodeForbidden          Code = "forbidden"
	CodeNotFound           Code = "not_found"
	CodeConflict           Code = "conflict"
	CodeExpired            Code = "expired"
	CodeInvariantViolation Code = "invariant_violation"
	CodeTimeout            Code = "timeout"
	CodeInternal           Code = "internal_error"
)

// ResultCode is the numeric error code exposed to callers of the rule tables.
// The values mirror the codes the on-chain contracts return.
type ResultCode int

const (
	ResultNone                ResultCode = 0
	ResultNotAdmin            ResultCode = 100
	ResultDuplicate           ResultCode = 101
	ResultNotFound            ResultCode = 102
	ResultVerificationExpired ResultCode = 103
)

var resultCodes = map[Code]ResultCode{
	CodeForbidden: ResultNotAdmin,
	CodeConflict:  ResultDuplicate,
	CodeNotFound:  ResultNotFound,
	CodeExpired:   ResultVerificationExpired,
}

// Error is a coded domain error. Cause is optional and exposed through Unwrap.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a coded error.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches a code and message to an underlying error.
// Wrapping a nil error returns nil.
func Wrap(err error, code Code, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: msg, Cause: err}
}

// CodeOf returns the code of the outermost domain error in the chain,
// or CodeInternal if err carries no code.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// HasCode reports whether the outermost domain error in the chain has the given code.
func HasCode(err error, code Code) bool {
	if err == nil {
		return false
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// ResultCodeOf maps err to its numeric result code, or ResultNone when the
// error has no contract-level meaning.
func ResultCodeOf(err error) ResultCode {
	if err == nil {
		return ResultNone
	}
	return resultCodes[CodeOf(err)]
}

// Is is errors.Is re-exported so callers need a single import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
