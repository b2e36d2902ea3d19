package token

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestService(t *testing.T, ttl time.Duration) *Service {
	t.Helper()
	svc, err := NewService(&Config{Secret: testSecret, TTL: ttl, Issuer: "test"})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	svc := newTestService(t, 15*time.Minute)
	t0 := time.Unix(1700000000, 0)

	signed, err := svc.Issue("alice", t0)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := svc.Verify(signed, t0)
	if err != nil {
		t.Fatalf("Verify at issue time: %v", err)
	}
	if claims.Subject != "alice" {
		t.Errorf("subject = %q, want %q", claims.Subject, "alice")
	}
}

func TestVerify_TimeWindow(t *testing.T) {
	ttl := 15 * time.Minute
	svc := newTestService(t, ttl)
	t0 := time.Unix(1700000000, 0)

	signed, err := svc.Issue("alice", t0)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tests := []struct {
		name    string
		at      time.Time
		wantErr error
	}{
		{"at issue", t0, nil},
		{"mid lifetime", t0.Add(ttl / 2), nil},
		{"one second before expiry", t0.Add(ttl - time.Second), nil},
		{"exactly at expiry", t0.Add(ttl), ErrExpired},
		{"after expiry", t0.Add(ttl + time.Hour), ErrExpired},
		{"before issued", t0.Add(-time.Second), ErrMalformed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Verify(signed, tc.at)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Verify at %v: err = %v, want %v", tc.at, err, tc.wantErr)
			}
		})
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	svc := newTestService(t, 15*time.Minute)
	t0 := time.Unix(1700000000, 0)

	signed, err := svc.Issue("alice", t0)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Flip the last character of the signature.
	last := signed[len(signed)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := signed[:len(signed)-1] + string(flipped)

	_, err = svc.Verify(tampered, t0)
	if !errors.Is(err, ErrBadSignature) {
		t.Errorf("tampered token: err = %v, want ErrBadSignature", err)
	}
}

func TestVerify_WrongKey(t *testing.T) {
	svc := newTestService(t, 15*time.Minute)
	t0 := time.Unix(1700000000, 0)

	other, err := NewService(&Config{Secret: "another-secret-another-secret", TTL: 15 * time.Minute})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	signed, err := other.Issue("alice", t0)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := svc.Verify(signed, t0); !errors.Is(err, ErrBadSignature) {
		t.Errorf("foreign-key token: err = %v, want ErrBadSignature", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	svc := newTestService(t, 15*time.Minute)
	now := time.Unix(1700000000, 0)

	inputs := []string{
		"",
		"garbage",
		"a.b",
		"a.b.c",
		"....",
	}
	for _, input := range inputs {
		if _, err := svc.Verify(input, now); !errors.Is(err, ErrMalformed) {
			t.Errorf("Verify(%q): err = %v, want ErrMalformed", input, err)
		}
	}
}

func TestNewService_RejectsWeakSecret(t *testing.T) {
	if _, err := NewService(&Config{Secret: "short"}); err == nil {
		t.Fatal("expected error for short secret")
	}
	if _, err := NewService(&Config{}); err == nil {
		t.Fatal("expected error for missing secret")
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrMalformed, "malformed"},
		{ErrBadSignature, "bad_signature"},
		{ErrExpired, "expired"},
		{errors.New("other"), ""},
		{nil, ""},
	}
	for _, tc := range tests {
		if got := Kind(tc.err); got != tc.want {
			t.Errorf("Kind(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
