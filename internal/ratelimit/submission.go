package ratelimit

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Submission quotas per identifier (authenticated user id or client IP).
const (
	MaxSubmissionsPerHour = 5
	MaxSubmissionsPerDay  = 50
)

// QuotaError is a recoverable, user-facing rejection. The reason text is
// surfaced verbatim to the caller.
type QuotaError struct {
	Reason string
}

func (e *QuotaError) Error() string {
	return e.Reason
}

// SubmissionLimiter tracks submission counts per identifier in hour and day
// buckets keyed by the truncated timestamp. Buckets naturally stop being
// queried once time advances; expired ones are evicted inline on access
// rather than by a background timer.
type SubmissionLimiter struct {
	mu     sync.Mutex
	counts map[string]int
	now    func() time.Time
}

// NewSubmissionLimiter creates a limiter with the standard quotas.
func NewSubmissionLimiter() *SubmissionLimiter {
	return &SubmissionLimiter{
		counts: make(map[string]int),
		now:    time.Now,
	}
}

// Admit checks and consumes quota for one submission. The increment and the
// threshold comparison are serialized per limiter, so two concurrent
// submissions cannot both take the last slot. Admission runs before
// feasibility validation, so an invalid submission still consumes quota.
func (l *SubmissionLimiter) Admit(identifier string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	hourKey := fmt.Sprintf("%s_h%d", identifier, now.UnixMilli()/time.Hour.Milliseconds())
	dayKey := fmt.Sprintf("%s_d%d", identifier, now.UnixMilli()/(24*time.Hour.Milliseconds()))

	if l.counts[hourKey] >= MaxSubmissionsPerHour {
		return &QuotaError{Reason: "Too many submissions this hour. Please wait."}
	}
	if l.counts[dayKey] >= MaxSubmissionsPerDay {
		return &QuotaError{Reason: "Too many submissions today. Please try again tomorrow."}
	}

	l.counts[hourKey]++
	l.counts[dayKey]++

	l.evictExpired(now)
	return nil
}

// evictExpired drops buckets whose key no longer matches the current hour
// or day index. Bounds memory; callers already hold the lock.
func (l *SubmissionLimiter) evictExpired(now time.Time) {
	hourSuffix := fmt.Sprintf("_h%d", now.UnixMilli()/time.Hour.Milliseconds())
	daySuffix := fmt.Sprintf("_d%d", now.UnixMilli()/(24*time.Hour.Milliseconds()))
	for key := range l.counts {
		if strings.HasSuffix(key, hourSuffix) || strings.HasSuffix(key, daySuffix) {
			continue
		}
		delete(l.counts, key)
	}
}
