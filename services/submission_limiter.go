package services

import (
	"strings"
	"sync"
	"time"
)

const (
	// DefaultRateLimitWindow is the sliding window for lead submissions
	DefaultRateLimitWindow = 10 * time.Minute
	// DefaultRateLimitMax is the maximum submissions per client within the window
	DefaultRateLimitMax = 5
	// UnknownClientID is the shared bucket used when proxy headers are absent.
	// Clients behind infrastructure that strips X-Forwarded-For and X-Real-IP
	// all land in this one bucket. Known coarse-graining, left as-is.
	UnknownClientID = "unknown"
)

// SubmissionLimiter is a process-local sliding-window rate limiter keyed by
// client identifier. It provides no protection across multiple server
// instances; that is a stated limitation of the design, not a bug.
type SubmissionLimiter struct {
	window time.Duration
	max    int

	mu       sync.Mutex
	byClient map[string][]time.Time
}

// LeadLimiter guards the lead submission handler. Replaced in main with a
// config-parameterized instance; tests swap in their own.
var LeadLimiter = NewSubmissionLimiter(DefaultRateLimitWindow, DefaultRateLimitMax)

// NewSubmissionLimiter creates a limiter with the given window and threshold
func NewSubmissionLimiter(window time.Duration, max int) *SubmissionLimiter {
	if window <= 0 {
		window = DefaultRateLimitWindow
	}
	if max <= 0 {
		max = DefaultRateLimitMax
	}
	return &SubmissionLimiter{
		window:   window,
		max:      max,
		byClient: make(map[string][]time.Time),
	}
}

// CheckAndRecord reports whether the client may submit and, if so, records the
// attempt. Stale timestamps are pruned on every call regardless of outcome,
// so a single key's slice stays bounded. The check and the record happen under
// one lock to avoid two concurrent requests both observing spare capacity.
func (l *SubmissionLimiter) CheckAndRecord(clientID string) bool {
	now := time.Now()
	windowStart := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.byClient[clientID][:0:0]
	for _, t := range l.byClient[clientID] {
		if !t.Before(windowStart) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= l.max {
		l.byClient[clientID] = recent
		return false
	}

	l.byClient[clientID] = append(recent, now)
	return true
}

// DeriveClientID resolves the rate-limit key from proxy headers: the first
// comma-separated value of X-Forwarded-For, then X-Real-IP, then the shared
// "unknown" sentinel.
func DeriveClientID(forwardedFor, realIP string) string {
	if forwardedFor != "" {
		first := strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
		if first != "" {
			return first
		}
		return UnknownClientID
	}
	if realIP != "" {
		return realIP
	}
	return UnknownClientID
}
