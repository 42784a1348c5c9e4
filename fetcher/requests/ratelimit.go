package requests

import (
	"riftrewind/pkg/config"
	"sync"
	"time"
)

// Single riot rate limiting window.
type RiotLimit struct {
	limit         int
	resetInterval time.Duration
	count         int
	lastReset     time.Time
}

// RateLimiter holds every Riot rate limit window plus the background fetch pacing.
type RateLimiter struct {
	windows []*RiotLimit

	// Fetch interval for the background jobs.
	// Will be the slowest interval that lets all requests be consumed before reseting.
	fetchInterval time.Duration

	lastFetch time.Time
	mu        sync.Mutex
}

// CreateRateLimiter builds a limiter from the configured Riot windows.
func CreateRateLimiter() *RateLimiter {
	return &RateLimiter{
		windows: []*RiotLimit{
			{
				limit:         config.Limits.Lower.Count,
				resetInterval: config.Limits.Lower.ResetInterval,
				lastReset:     time.Now(),
			},
			{
				limit:         config.Limits.Higher.Count,
				resetInterval: config.Limits.Higher.ResetInterval,
				lastReset:     time.Now(),
			},
		},
		fetchInterval: config.Limits.SlowInterval,
		lastFetch:     time.Now(),
	}
}

// Reset the count of any window whose interval elapsed.
func (r *RateLimiter) resetCounts() {
	now := time.Now()
	for _, window := range r.windows {
		if now.Sub(window.lastReset) >= window.resetInterval {
			window.count = 0
			window.lastReset = now
		}
	}
}

// Check if no window is at its limit.
func (r *RateLimiter) checkLimits() bool {
	for _, window := range r.windows {
		if window.count >= window.limit {
			return false
		}
	}
	return true
}

// Increment the counter of each window.
func (r *RateLimiter) incrementCounts() {
	for _, window := range r.windows {
		window.count++
	}
}

// WaitApi blocks until a user facing (on demand) request can run.
func (r *RateLimiter) WaitApi() {
	if r.canRunApi() {
		return
	}

	r.waitWindowsReset()
	r.WaitApi()
}

// WaitJob blocks until a background request can run, respecting the slow interval.
func (r *RateLimiter) WaitJob() {
	if r.canRunJob() {
		return
	}

	if elapsed := time.Since(r.lastFetch); elapsed < r.fetchInterval {
		time.Sleep(r.fetchInterval - elapsed)
	}

	r.waitWindowsReset()
	r.WaitJob()
}

// Wait until every exhausted window resets.
func (r *RateLimiter) waitWindowsReset() {
	var waitTime time.Duration
	for _, window := range r.windows {
		if window.count < window.limit {
			continue
		}

		elapsed := time.Since(window.lastReset)
		waitTill := window.resetInterval - elapsed
		if waitTill > waitTime {
			waitTime = waitTill
		}
	}
	time.Sleep(waitTime)
}

// Verify if a background request can run right now.
func (r *RateLimiter) canRunJob() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resetCounts()

	if time.Since(r.lastFetch) < r.fetchInterval {
		return false
	}

	if !r.checkLimits() {
		return false
	}

	r.incrementCounts()
	r.lastFetch = time.Now()
	return true
}

// Verify if a on demand request can run right now.
func (r *RateLimiter) canRunApi() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resetCounts()

	if !r.checkLimits() {
		return false
	}

	r.incrementCounts()
	return true
}
