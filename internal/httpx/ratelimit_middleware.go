package httpx

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware keeps one token bucket per client address.
// Buckets idle longer than the cleanup interval are evicted by a
// background janitor, which runs until Stop is called.
type RateLimitMiddleware struct {
	limiters map[string]*clientLimiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	cleanup  time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

func NewRateLimitMiddleware(rps float64, burst int) *RateLimitMiddleware {
	rl := &RateLimitMiddleware{
		limiters: make(map[string]*clientLimiter),
		rate:     rate.Limit(rps),
		burst:    burst,
		cleanup:  5 * time.Minute,
		done:     make(chan struct{}),
	}

	go rl.evictStale()
	return rl
}

// Stop terminates the eviction goroutine. Safe to call more than once.
func (rl *RateLimitMiddleware) Stop() {
	rl.stopOnce.Do(func() { close(rl.done) })
}

func (rl *RateLimitMiddleware) evictStale() {
	ticker := time.NewTicker(rl.cleanup)
	defer ticker.Stop()
	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.mu.Lock()
			for key, cl := range rl.limiters {
				if time.Since(cl.lastSeen) > rl.cleanup {
					delete(rl.limiters, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

func (rl *RateLimitMiddleware) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, exists := rl.limiters[key]
	if !exists {
		cl = &clientLimiter{
			limiter:  rate.NewLimiter(rl.rate, rl.burst),
			lastSeen: time.Now(),
		}
		rl.limiters[key] = cl
	} else {
		cl.lastSeen = time.Now()
	}

	return cl.limiter
}

// clientKey buckets by the nearest client hop: the first entry of
// X-Forwarded-For when a proxy set it, the socket address otherwise.
func clientKey(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	return r.RemoteAddr
}

func (rl *RateLimitMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limiter := rl.getLimiter(clientKey(r))
		if !limiter.Allow() {
			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(rl.rate)))
			JSONError(w, r, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Too many requests", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func retryAfterSeconds(limit rate.Limit) int {
	if limit <= 0 {
		return 1
	}
	secs := int(1 / float64(limit))
	if secs < 1 {
		secs = 1
	}
	return secs
}
