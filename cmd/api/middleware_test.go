package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Beka01247/restaurant-api/internal/ratelimiter"
)

func TestRateLimiterMiddleware(t *testing.T) {
	cfg := config{
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: 2,
			Enabled:              true,
		},
	}
	app := newTestApplication(t, cfg)

	for i := 0; i < 2; i++ {
		rr := app.do(t, http.MethodGet, "/", "")
		checkResponseCode(t, http.StatusOK, rr.Code)
	}

	rr := app.do(t, http.MethodGet, "/", "")
	checkResponseCode(t, http.StatusTooManyRequests, rr.Code)
	if rr.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}
}

func TestRateLimiterDisabled(t *testing.T) {
	app := newTestApplication(t, config{})

	for i := 0; i < 5; i++ {
		rr := app.do(t, http.MethodGet, "/", "")
		checkResponseCode(t, http.StatusOK, rr.Code)
	}
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	app := newTestApplication(t, config{})

	req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	req.Header.Set("Origin", "https://tables.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	rr := httptest.NewRecorder()
	app.handler.ServeHTTP(rr, req)

	if rr.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Errorf("missing Access-Control-Allow-Origin, headers = %v", rr.Header())
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.10:54321"
	if got := clientIP(req); got != "192.0.2.10" {
		t.Errorf("clientIP() = %q", got)
	}

	req.RemoteAddr = "192.0.2.10"
	if got := clientIP(req); got != "192.0.2.10" {
		t.Errorf("clientIP() = %q", got)
	}
}
