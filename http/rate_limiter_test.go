package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestLimiter(capacity int, window time.Duration) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(capacity, window)
	rl.now = clock.Now
	return rl, clock
}

func TestRateLimiter_AllowsUpToCapacity(t *testing.T) {
	rl, _ := newTestLimiter(3, time.Minute)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := rl.Allow("10.0.0.1")
		assert.True(t, allowed, "request %d", i+1)
	}

	allowed, retryAfter := rl.Allow("10.0.0.1")
	assert.False(t, allowed)
	assert.Equal(t, time.Minute, retryAfter)

	allowed, _ = rl.Allow("10.0.0.2")
	assert.True(t, allowed)
}

func TestRateLimiter_RefillsAfterWindow(t *testing.T) {
	rl, clock := newTestLimiter(1, time.Minute)
	defer rl.Stop()

	allowed, _ := rl.Allow("10.0.0.1")
	assert.True(t, allowed)

	clock.now = clock.now.Add(20 * time.Second)
	allowed, retryAfter := rl.Allow("10.0.0.1")
	assert.False(t, allowed)
	assert.Equal(t, 40*time.Second, retryAfter)

	clock.now = clock.now.Add(40 * time.Second)
	allowed, _ = rl.Allow("10.0.0.1")
	assert.True(t, allowed)
}

func TestRateLimiter_CleanupDropsIdleClients(t *testing.T) {
	rl, clock := newTestLimiter(1, time.Minute)
	defer rl.Stop()

	rl.Allow("10.0.0.1")
	clock.now = clock.now.Add(2 * time.Hour)
	rl.Allow("10.0.0.2")

	rl.cleanup()

	assert.NotContains(t, rl.clients, "10.0.0.1")
	assert.Contains(t, rl.clients, "10.0.0.2")
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	assert.NotPanics(t, func() {
		rl.Stop()
		rl.Stop()
	})
}
