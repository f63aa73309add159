package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSecureHeaders(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	SecureHeaders(inner).ServeHTTP(w, req)

	expected := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "no-referrer",
	}
	for header, want := range expected {
		if got := w.Header().Get(header); got != want {
			t.Errorf("Expected %s: %q, got %q", header, want, got)
		}
	}
}

func TestCreateUserRateLimited(t *testing.T) {
	// Distinct IP so the shared limiter state of other tests stays
	// untouched
	ip := "203.0.113.7"
	defer createLimiter.Reset(ip)

	status := func() int {
		req := httptest.NewRequest("POST", "/users", nil)
		req.RemoteAddr = ip + ":5555"
		w := httptest.NewRecorder()
		testRouter.ServeHTTP(w, req)
		return w.Code
	}

	// Saturate the window
	for i := 0; i < maxAttempts; i++ {
		createLimiter.Record(ip)
	}

	if got := status(); got != http.StatusTooManyRequests {
		t.Errorf("Expected 429 for blocked IP, got %d", got)
	}

	createLimiter.Reset(ip)
	if got := status(); got == http.StatusTooManyRequests {
		t.Error("Expected request to pass after Reset, still 429")
	}
}
