// Package errors provides structured application errors with stable wire
// codes and HTTP status mapping. Every user-visible failure is a JSON object
// with an "error" code string plus a human "message"; handlers and middleware
// never leak stack traces or internal exceptions to the client.
package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is the stable machine-readable error code sent on the wire.
	Code Code
	// Message is a human-readable error message.
	Message string
	// HTTPStatus is the HTTP status code for this error.
	HTTPStatus int
	// Extra contains additional wire fields merged into the response body
	// (e.g. "path" on unauthorized, "fields" on validation failures).
	Extra map[string]any
	// Cause is the underlying error, never serialized.
	Cause error
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithExtra sets a single additional wire field and returns the receiver.
func (e *AppError) WithExtra(key string, value any) *AppError {
	if e.Extra == nil {
		e.Extra = make(map[string]any)
	}
	e.Extra[key] = value
	return e
}

// --- Common Error Constructors ---

// Unauthorized is the uniform rejection for protected routes. The same body
// is returned whether the credential was missing, malformed, tampered with,
// or expired, so verification internals are not leaked.
func Unauthorized(path string) *AppError {
	return &AppError{
		Code: CodeUnauthorized, Message: "Full authentication is required to access this resource",
		HTTPStatus: http.StatusUnauthorized,
		Extra:      map[string]any{"path": path},
	}
}

// InvalidCredentials is the uniform login failure. It never distinguishes
// "no such user" from "wrong password".
func InvalidCredentials(username string) *AppError {
	return &AppError{
		Code: CodeInvalidCredentials, Message: "Username or password incorrect",
		HTTPStatus: http.StatusUnauthorized,
		Extra:      map[string]any{"username": username},
	}
}

// UserExists is the registration conflict outcome.
func UserExists() *AppError {
	return &AppError{
		Code: CodeUserExists, Message: "Username already taken",
		HTTPStatus: http.StatusConflict,
	}
}

// ValidationFailed reports missing or malformed request fields as a
// field-to-message map.
func ValidationFailed(fields map[string]string) *AppError {
	return &AppError{
		Code: CodeValidationFailed, Message: "Request validation failed",
		HTTPStatus: http.StatusBadRequest,
		Extra:      map[string]any{"fields": fields},
	}
}

// NotFound reports a missing resource.
func NotFound(resource string) *AppError {
	return &AppError{
		Code: CodeNotFound, Message: fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// BadRequest reports an unparseable or otherwise invalid request.
func BadRequest(reason string) *AppError {
	return &AppError{
		Code: CodeBadRequest, Message: reason,
		HTTPStatus: http.StatusBadRequest,
	}
}

// RateLimited reports that the client exceeded a request rate limit.
func RateLimited() *AppError {
	return &AppError{
		Code: CodeRateLimited, Message: "Too many requests, slow down",
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// Internal wraps an unexpected failure. The cause is logged, never sent.
func Internal(cause error) *AppError {
	return &AppError{
		Code: CodeInternal, Message: "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}
