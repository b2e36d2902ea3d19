package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   Code
		wantStatus int
	}{
		{"unauthorized", Unauthorized("/api/cars"), CodeUnauthorized, http.StatusUnauthorized},
		{"invalid credentials", InvalidCredentials("alice"), CodeInvalidCredentials, http.StatusUnauthorized},
		{"user exists", UserExists(), CodeUserExists, http.StatusConflict},
		{"validation failed", ValidationFailed(map[string]string{"username": "is required"}), CodeValidationFailed, http.StatusBadRequest},
		{"not found", NotFound("car"), CodeNotFound, http.StatusNotFound},
		{"bad request", BadRequest("nope"), CodeBadRequest, http.StatusBadRequest},
		{"rate limited", RateLimited(), CodeRateLimited, http.StatusTooManyRequests},
		{"internal", Internal(errors.New("boom")), CodeInternal, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.wantCode {
				t.Errorf("code = %s, want %s", tc.err.Code, tc.wantCode)
			}
			if tc.err.HTTPStatus != tc.wantStatus {
				t.Errorf("status = %d, want %d", tc.err.HTTPStatus, tc.wantStatus)
			}
		})
	}
}

func TestBody(t *testing.T) {
	body := Unauthorized("/api/cars").Body()
	if body["error"] != "unauthorized" {
		t.Errorf("error = %v", body["error"])
	}
	if body["path"] != "/api/cars" {
		t.Errorf("path = %v", body["path"])
	}
	if _, ok := body["message"]; !ok {
		t.Error("message missing")
	}

	// The cause must never appear on the wire.
	body = Internal(errors.New("secret database details")).Body()
	for k, v := range body {
		if s, ok := v.(string); ok && s == "secret database details" {
			t.Errorf("cause leaked into body under key %q", k)
		}
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NotFound("owner")
	wrapped := fmt.Errorf("handler: %w", appErr)

	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected to unwrap AppError")
	}
	if got.Code != CodeNotFound {
		t.Errorf("code = %s", got.Code)
	}

	if _, ok := AsAppError(errors.New("plain")); ok {
		t.Error("plain error should not convert")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	if !errors.Is(Internal(cause), cause) {
		t.Error("Internal should wrap its cause")
	}
}
