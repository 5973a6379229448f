package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestIsAllowedOrigin(t *testing.T) {
	allowed := []string{"https://prism.example.com", " https://app.example.com/ "}

	tests := []struct {
		origin  string
		devMode bool
		want    bool
	}{
		{"https://prism.example.com", false, true},
		{"http://prism.example.com/palettes", false, true},
		{"https://app.example.com", false, true},
		{"https://evil.example.com", false, false},
		{"http://localhost:5173", true, true},
		{"http://localhost:5173", false, false},
		{"http://localhost", true, false},
	}
	for _, tt := range tests {
		if got := isAllowedOrigin(tt.origin, allowed, tt.devMode); got != tt.want {
			t.Errorf("isAllowedOrigin(%q, dev=%v) = %v, want %v", tt.origin, tt.devMode, got, tt.want)
		}
	}
}

func TestCorsWrapper(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/colors/random", nil)
	req.Header.Set("Origin", "https://prism.example.com")
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("allowed origin status %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://prism.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/v1/palettes/saved", nil)
	req.Header.Set("Origin", "https://prism.example.com")
	rec = httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("preflight status %d, want 200", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/colors/random", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("foreign origin status %d, want 403", rec.Code)
	}
}

func TestHome(t *testing.T) {
	ts := newTestServer(t)

	if rec := ts.do(t, http.MethodGet, "/", nil); rec.Code != http.StatusOK || rec.Body.String() != "Prism Palette API" {
		t.Errorf("home = %d %q", rec.Code, rec.Body)
	}
	if rec := ts.do(t, http.MethodGet, "/nope", nil); rec.Code != http.StatusNotFound {
		t.Errorf("unknown path = %d, want 404", rec.Code)
	}
}

func TestServeUntilShutsDown(t *testing.T) {
	ts := newTestServer(t)
	ts.app.Config.HTTPPort = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ts.app.serveUntil(ctx, ts.app.newServer(http.NewServeMux())) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serveUntil: %v", err)
		}
	case <-time.After(2 * shutdownTimeout):
		t.Fatal("server did not shut down")
	}
}
