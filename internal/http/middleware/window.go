// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements a fixed-window counter for low-frequency endpoints
// such as newsletter signup, where the limit is phrased as "N requests per
// hour" rather than a sustained rate. Unlike the token bucket in
// ratelimit.go, a rejected caller learns exactly when the window resets via
// Retry-After.
package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// windowEntry tracks one identity's count within the current window.
type windowEntry struct {
	count      int
	windowFrom time.Time
}

// FixedWindowLimiter counts requests per identity inside fixed time windows.
// When the window elapses the count resets to zero; there is no carry-over.
//
// This type is safe for concurrent use.
type FixedWindowLimiter struct {
	max    int
	window time.Duration
	keyFn  keyFunc

	mu      sync.Mutex
	entries map[string]*windowEntry
	sweepN  uint64

	// now is swappable for tests.
	now func() time.Time
}

// NewFixedWindowLimiter constructs a limiter allowing max requests per window
// per identity. Values of max <= 0 are coerced to 1.
func NewFixedWindowLimiter(max int, window time.Duration, keyFn keyFunc) *FixedWindowLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Hour
	}
	return &FixedWindowLimiter{
		max:     max,
		window:  window,
		keyFn:   keyFn,
		entries: make(map[string]*windowEntry),
		now:     time.Now,
	}
}

// allow records one request for key and reports whether it fits the window.
// The second return value is how long until the window resets, for Retry-After.
func (fl *FixedWindowLimiter) allow(key string) (bool, time.Duration) {
	now := fl.now()

	fl.mu.Lock()
	defer fl.mu.Unlock()

	// Opportunistic sweep of stale windows so the map stays bounded.
	fl.sweepN++
	if fl.sweepN >= 5000 {
		for k, e := range fl.entries {
			if now.Sub(e.windowFrom) >= fl.window {
				delete(fl.entries, k)
			}
		}
		fl.sweepN = 0
	}

	e, ok := fl.entries[key]
	if !ok || now.Sub(e.windowFrom) >= fl.window {
		fl.entries[key] = &windowEntry{count: 1, windowFrom: now}
		return true, 0
	}

	if e.count >= fl.max {
		return false, e.windowFrom.Add(fl.window).Sub(now)
	}
	e.count++
	return true, 0
}

// Handler returns a Gin middleware enforcing the fixed-window limit. Rejected
// requests receive 429 with the standard error envelope and a Retry-After
// header in whole seconds (at least 1).
func (fl *FixedWindowLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, retryIn := fl.allow(fl.keyFn(c))
		if ok {
			c.Next()
			return
		}

		secs := int(retryIn.Round(time.Second).Seconds())
		if secs < 1 {
			secs = 1
		}
		c.Header("Retry-After", strconv.Itoa(secs))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"request_id": c.Writer.Header().Get("X-Request-ID"),
			"code":       "rate_limited",
			"error":      "too many signup attempts, try again later",
		})
	}
}
