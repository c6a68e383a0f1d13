// Copyright (c) 2026 LivePoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/livepoll/livepoll/cliparse"
	"github.com/livepoll/livepoll/realtime"
)

// newTestMux builds the route table without a live database; these tests
// only hit routes that never touch it.
func newTestMux() *http.ServeMux {
	cfg := cliparse.Config{Port: 5000, JWTSecret: "test-jwt-secret"}
	return NewRouter(nil, cfg, realtime.NewHub())
}

func TestHealthRoute(t *testing.T) {
	mux := newTestMux()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected OK body, got %q", w.Body.String())
	}
}

func TestRootRoute(t *testing.T) {
	mux := newTestMux()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
	if w.Body.String() != "livepoll API v1" {
		t.Errorf("Unexpected banner: %q", w.Body.String())
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestMux()

	tests := []struct {
		method string
		path   string
	}{
		{"DELETE", "/health"},
		{"GET", "/auth/register"},
		{"PUT", "/polls"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s %s: expected 405, got %d", tt.method, tt.path, w.Code)
		}
	}
}
