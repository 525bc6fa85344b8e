package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limiterAt(start time.Time) (*SubmissionLimiter, *time.Time) {
	now := start
	l := NewSubmissionLimiter()
	l.now = func() time.Time { return now }
	return l, &now
}

func TestAdmitHourlyLimit(t *testing.T) {
	l, _ := limiterAt(time.Date(2025, 3, 10, 14, 5, 0, 0, time.UTC))

	for i := 0; i < MaxSubmissionsPerHour; i++ {
		require.NoError(t, l.Admit("user-1"), "submission %d should be admitted", i+1)
	}

	err := l.Admit("user-1")
	require.Error(t, err)
	var quota *QuotaError
	require.ErrorAs(t, err, &quota)
	assert.Equal(t, "Too many submissions this hour. Please wait.", quota.Reason)
}

func TestAdmitHourlyLimitResetsNextHour(t *testing.T) {
	l, now := limiterAt(time.Date(2025, 3, 10, 14, 59, 0, 0, time.UTC))

	for i := 0; i < MaxSubmissionsPerHour; i++ {
		require.NoError(t, l.Admit("user-1"))
	}
	require.Error(t, l.Admit("user-1"))

	*now = now.Add(2 * time.Minute) // crosses into 15:01
	assert.NoError(t, l.Admit("user-1"))
}

func TestAdmitDailyLimit(t *testing.T) {
	l, now := limiterAt(time.Date(2025, 3, 10, 0, 30, 0, 0, time.UTC))

	admitted := 0
	for hour := 0; admitted < MaxSubmissionsPerDay; hour++ {
		for i := 0; i < MaxSubmissionsPerHour && admitted < MaxSubmissionsPerDay; i++ {
			require.NoError(t, l.Admit("user-1"))
			admitted++
		}
		*now = now.Add(time.Hour)
	}

	err := l.Admit("user-1")
	require.Error(t, err)
	var quota *QuotaError
	require.ErrorAs(t, err, &quota)
	assert.Equal(t, "Too many submissions today. Please try again tomorrow.", quota.Reason)
}

func TestAdmitIdentifiersAreIndependent(t *testing.T) {
	l, _ := limiterAt(time.Date(2025, 3, 10, 14, 5, 0, 0, time.UTC))

	for i := 0; i < MaxSubmissionsPerHour; i++ {
		require.NoError(t, l.Admit("user-1"))
	}
	require.Error(t, l.Admit("user-1"))
	assert.NoError(t, l.Admit("user-2"))
}

func TestEvictExpiredBoundsMemory(t *testing.T) {
	l, now := limiterAt(time.Date(2025, 3, 10, 14, 5, 0, 0, time.UTC))

	for i := 0; i < 10; i++ {
		require.NoError(t, l.Admit(fmt.Sprintf("user-%d", i)))
	}
	// one hour and one day bucket per identifier
	assert.Len(t, l.counts, 20)

	*now = now.Add(48 * time.Hour)
	require.NoError(t, l.Admit("user-fresh"))
	assert.Len(t, l.counts, 2)
}

func TestAdmitConcurrentSameIdentifier(t *testing.T) {
	l, _ := limiterAt(time.Date(2025, 3, 10, 14, 5, 0, 0, time.UTC))

	results := make(chan error, 20)
	for i := 0; i < 20; i++ {
		go func() {
			results <- l.Admit("shared")
		}()
	}

	admitted := 0
	for i := 0; i < 20; i++ {
		if err := <-results; err == nil {
			admitted++
		}
	}
	assert.Equal(t, MaxSubmissionsPerHour, admitted)
}
