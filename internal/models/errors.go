package models

import (
	"fmt"
	"time"
)

// ValidationError reports malformed input rejected before any network
// activity. Never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// RateLimitError reports a denied admission. The caller may retry once the
// window rolls.
type RateLimitError struct {
	Limit      int
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit of %d scans/minute exceeded, retry in %s",
		e.Limit, e.RetryAfter.Round(time.Second))
}

// NetworkError reports a failed external call from one of the stage clients
type NetworkError struct {
	Op       string
	Hostname string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s for %s failed: %v", e.Op, e.Hostname, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
