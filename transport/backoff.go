package transport

import "time"

// BackoffPolicy returns the delay before reconnect attempt number attempt
// (zero-based). Injectable so the schedule can be unit-tested and tightened
// in tests without a real network connection.
type BackoffPolicy func(attempt int) time.Duration

// StepBackoff is the default reconnection schedule: the first attempt
// retries immediately, the next two wait 2s, the following three 5s, and
// every attempt after that 10s. Deliberately coarse and monotonically
// non-decreasing rather than exponential: reconnection load stays bounded
// while transient blips still recover quickly.
func StepBackoff(attempt int) time.Duration {
	switch {
	case attempt <= 0:
		return 0
	case attempt <= 2:
		return 2 * time.Second
	case attempt <= 5:
		return 5 * time.Second
	default:
		return 10 * time.Second
	}
}
