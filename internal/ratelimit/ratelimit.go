// Package ratelimit bounds how many new scans may start within a sliding
// one-minute admission window. Cache hits never consult this limiter.
package ratelimit

import (
	"sync"
	"time"

	"github.com/swcstudio/domainscan/internal/models"
)

const defaultWindow = time.Minute

// Limiter is a sliding-window admission limiter. Timestamps older than the
// window are pruned opportunistically on each Admit call; there is no timer.
type Limiter struct {
	mu         sync.Mutex
	limit      int
	window     time.Duration
	admissions []time.Time
	now        func() time.Time
}

// New creates a limiter allowing at most limit admissions per minute
func New(limit int) *Limiter {
	return &Limiter{
		limit:  limit,
		window: defaultWindow,
		now:    time.Now,
	}
}

// Admit records a new admission if the trailing window has capacity.
// Returns a RateLimitError when the window is full.
func (l *Limiter) Admit() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.prune(now)

	if len(l.admissions) >= l.limit {
		retry := l.window - now.Sub(l.admissions[0])
		if retry < 0 {
			retry = 0
		}
		return &models.RateLimitError{Limit: l.limit, RetryAfter: retry}
	}

	l.admissions = append(l.admissions, now)
	return nil
}

// Active returns the number of admissions currently inside the window
func (l *Limiter) Active() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prune(l.now())
	return len(l.admissions)
}

// prune drops timestamps older than the window. Caller must hold mu.
// Admissions are appended in time order, so the slice stays sorted.
func (l *Limiter) prune(now time.Time) {
	cutoff := now.Add(-l.window)
	i := 0
	for i < len(l.admissions) && !l.admissions[i].After(cutoff) {
		i++
	}
	if i > 0 {
		l.admissions = append(l.admissions[:0], l.admissions[i:]...)
	}
}
