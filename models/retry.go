package models

import "time"

// MaxRetryAttempts bounds the retries performed for a single remote save.
const MaxRetryAttempts = 3

// RetryState tracks one in-flight remote request.
type RetryState struct {
	Attempt     int
	NextRetryAt time.Time
	LastError   error
}

// Reset clears s after a successful attempt.
func (s *RetryState) Reset() {
	*s = RetryState{}
}

// Exhausted reports whether s has gone past the retry bound.
func (s RetryState) Exhausted(maxAttempts int) bool {
	return s.Attempt > maxAttempts
}
