package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORSMiddleware_AllowedOrigin(t *testing.T) {
	middleware := CORSMiddleware([]string{"http://localhost:3000", "http://localhost:5173"})
	handler := middleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Errorf("Expected CORS header for allowed origin, got %s", w.Header().Get("Access-Control-Allow-Origin"))
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Errorf("Expected credentials header, got %s", w.Header().Get("Access-Control-Allow-Credentials"))
	}
}

func TestCORSMiddleware_DisallowedOrigin(t *testing.T) {
	middleware := CORSMiddleware([]string{"http://localhost:3000"})
	handler := middleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "http://evil.com")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Errorf("Expected no CORS header for disallowed origin, got %s", w.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestCORSMiddleware_OPTIONSRequest(t *testing.T) {
	middleware := CORSMiddleware([]string{"http://localhost:3000"})
	handler := middleware(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected 204 for OPTIONS request, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("Expected CORS methods header for OPTIONS request")
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	handler := SecurityHeadersMiddleware(okHandler())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Errorf("Expected nosniff header, got %s", w.Header().Get("X-Content-Type-Options"))
	}
	if w.Header().Get("X-Frame-Options") != "DENY" {
		t.Errorf("Expected DENY frame options, got %s", w.Header().Get("X-Frame-Options"))
	}
}

func TestRequestSizeLimitMiddleware_RejectsOversized(t *testing.T) {
	middleware := RequestSizeLimitMiddleware(16)
	handler := middleware(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(strings.Repeat("x", 64)))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected 413 for oversized body, got %d", w.Code)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r)
	}))

	t.Run("generates id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		if seen == "" {
			t.Error("Expected a request id on the context")
		}
		if w.Header().Get("X-Request-Id") != seen {
			t.Error("Expected response header to echo the request id")
		}
	})

	t.Run("preserves well-formed caller id", func(t *testing.T) {
		callerID := uuid.New().String()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-Id", callerID)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if seen != callerID {
			t.Errorf("Expected caller-supplied id, got %s", seen)
		}
	})

	t.Run("replaces malformed caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-Id", "not-a-uuid")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if seen == "not-a-uuid" {
			t.Error("Expected a malformed caller id to be replaced")
		}
		if _, err := uuid.Parse(seen); err != nil {
			t.Errorf("Expected a minted UUID, got %s", seen)
		}
	})
}

func TestRateLimitMiddleware_Blocks(t *testing.T) {
	rl := NewRateLimitMiddleware(1, 1)
	defer rl.Stop()
	handler := rl.Middleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected first request to pass, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("Expected 429 after burst exhausted, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("Expected Retry-After header on 429")
	}
}

func TestRateLimitMiddleware_KeysByForwardedFor(t *testing.T) {
	rl := NewRateLimitMiddleware(1, 1)
	defer rl.Stop()
	handler := rl.Middleware(okHandler())

	// Same socket address, but each entry's first forwarded hop differs,
	// so each gets its own bucket.
	for _, client := range []string{"203.0.113.7", "203.0.113.8"} {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set("X-Forwarded-For", client+", 10.0.0.1")

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("Expected independent bucket for %s, got %d", client, w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = "10.0.0.2:5678"
	req.Header.Set("X-Forwarded-For", "203.0.113.7")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("Expected shared bucket across socket addresses for the same client, got %d", w.Code)
	}
}

func TestRateLimitMiddleware_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimitMiddleware(1, 1)
	rl.Stop()
	rl.Stop()
}
