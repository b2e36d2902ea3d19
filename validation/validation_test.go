package validation

import (
	"testing"

	apperrors "github.com/skillsenselab/carhub/errors"
)

type sampleRequest struct {
	Username string `json:"username" validate:"required,notblank,max=10"`
	Password string `json:"password" validate:"required,min=8"`
	Year     int    `json:"year" validate:"omitempty,gte=1886"`
}

func TestValidate_OK(t *testing.T) {
	err := Validate(sampleRequest{Username: "alice", Password: "secret123"})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate_FieldNamesAreJSONTags(t *testing.T) {
	err := Validate(sampleRequest{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != apperrors.CodeValidationFailed {
		t.Errorf("code = %s", appErr.Code)
	}

	fields, ok := appErr.Extra["fields"].(map[string]string)
	if !ok {
		t.Fatalf("fields missing: %v", appErr.Extra)
	}
	if _, ok := fields["username"]; !ok {
		t.Errorf("fields = %v, want key username", fields)
	}
	if _, ok := fields["password"]; !ok {
		t.Errorf("fields = %v, want key password", fields)
	}
}

func TestValidate_Messages(t *testing.T) {
	tests := []struct {
		name  string
		req   sampleRequest
		field string
		want  string
	}{
		{"required", sampleRequest{Password: "secret123"}, "username", "is required"},
		{"min", sampleRequest{Username: "alice", Password: "short"}, "password", "must be at least 8 characters"},
		{"max", sampleRequest{Username: "far-too-long-name", Password: "secret123"}, "username", "must be at most 10 characters"},
		{"gte", sampleRequest{Username: "alice", Password: "secret123", Year: 1600}, "year", "must be at least 1886"},
		{"notblank", sampleRequest{Username: "   ", Password: "secret123"}, "username", "must not be blank"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.req)
			appErr, ok := apperrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %v", err)
			}
			fields := appErr.Extra["fields"].(map[string]string)
			if got := fields[tc.field]; got != tc.want {
				t.Errorf("fields[%s] = %q, want %q", tc.field, got, tc.want)
			}
		})
	}
}
