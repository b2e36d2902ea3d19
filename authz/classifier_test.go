package authz

import (
	"net/http"
	"testing"
)

func TestDefaultRules(t *testing.T) {
	c := NewClassifier(DefaultRules()...)

	tests := []struct {
		method string
		path   string
		want   Access
	}{
		{"POST", "/auth/login", Public},
		{"POST", "/auth/register", Public},
		{"GET", "/health", Public},
		{"GET", "/alive", Public},
		{"GET", "/ready", Public},
		{"GET", "/info", Public},
		{"GET", "/docs", Public},
		{"GET", "/docs/openapi.json", Public},
		{"OPTIONS", "/api/cars", Public},
		{"OPTIONS", "/anything/at/all", Public},

		// Method matters: only POST is public on the auth endpoints.
		{"GET", "/auth/login", Authenticated},
		{"DELETE", "/health", Authenticated},

		// Everything else requires authentication.
		{"GET", "/api/cars", Authenticated},
		{"POST", "/api/owners", Authenticated},
		{"GET", "/", Authenticated},
		{"GET", "/healthz", Authenticated},
	}
	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			if got := c.Classify(tc.method, tc.path); got != tc.want {
				t.Errorf("Classify(%s, %s) = %v, want %v", tc.method, tc.path, got, tc.want)
			}
		})
	}
}

func TestClassify_FailsClosed(t *testing.T) {
	c := NewClassifier() // empty table
	if got := c.Classify(http.MethodGet, "/anything"); got != Authenticated {
		t.Errorf("empty table classified %v, want Authenticated", got)
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	c := NewClassifier(
		Rule{Method: "GET", Pattern: "/a/*", Access: Public},
		Rule{Method: "GET", Pattern: "/a/secret", Access: Authenticated},
	)
	if got := c.Classify("GET", "/a/secret"); got != Public {
		t.Errorf("expected the earlier rule to win, got %v", got)
	}
}

func TestMatchPath(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"*", "/anything", true},
		{"*", "/", true},
		{"/health", "/health", true},
		{"/health", "/health/", false},
		{"/health", "/healthz", false},
		{"/docs/*", "/docs", true},
		{"/docs/*", "/docs/", true},
		{"/docs/*", "/docs/a/b", true},
		{"/docs/*", "/docsx", false},
		{"/docs/*", "/doc", false},
	}
	for _, tc := range tests {
		t.Run(tc.pattern+" vs "+tc.path, func(t *testing.T) {
			if got := MatchPath(tc.pattern, tc.path); got != tc.want {
				t.Errorf("MatchPath(%q, %q) = %v, want %v", tc.pattern, tc.path, got, tc.want)
			}
		})
	}
}
