// Copyright (c) 2026 LivePoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "password123" {
		t.Fatal("Hash equals the plaintext password")
	}

	if err := CheckPassword(hash, "password123"); err != nil {
		t.Errorf("Expected correct password to verify, got %v", err)
	}
	if err := CheckPassword(hash, "wrong-password"); err == nil {
		t.Error("Expected wrong password to be rejected")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := IssueToken("user-1", "test-secret")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	sub, err := VerifyToken(token, "test-secret")
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if sub != "user-1" {
		t.Errorf("Expected subject user-1, got %q", sub)
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := IssueToken("user-1", "test-secret")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	if _, err := VerifyToken(token, "other-secret"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyTokenGarbage(t *testing.T) {
	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := VerifyToken(tokenString, "test-secret"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("VerifyToken(%q): expected ErrInvalidToken, got %v", tokenString, err)
		}
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid header", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing header", "", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"bare token", "abc.def.ghi", "", true},
		{"empty token", "Bearer ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrMissingToken) {
					t.Errorf("Expected ErrMissingToken, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected token %q, got %q", tt.want, got)
			}
		})
	}
}
