package middleware

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)
	for i := range 5 {
		require.True(t, rl.Allow("1.2.3.4"), "request %d should be allowed", i+1)
	}
	assert.False(t, rl.Allow("1.2.3.4"), "request beyond limit should be denied")
}

func TestRateLimiterIsolatesIPs(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	for range 3 {
		rl.Allow("1.2.3.4")
	}
	assert.False(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("5.6.7.8"), "different IP should not be affected")
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)

	rl.mu.Lock()
	past := time.Now().Add(-2 * time.Minute)
	rl.requests["1.2.3.4"] = []time.Time{past, past}
	rl.mu.Unlock()

	assert.True(t, rl.Allow("1.2.3.4"), "should allow after old entries expire")
}

func TestRateLimiterConcurrentAccess(t *testing.T) {
	rl := NewRateLimiter(4, time.Minute)
	var wg sync.WaitGroup
	allowed := make([]int, 8)

	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ip := fmt.Sprintf("10.0.0.%d", i)
			for range 6 {
				if rl.Allow(ip) {
					allowed[i]++
				}
			}
		}()
	}
	wg.Wait()

	for i, count := range allowed {
		assert.Equal(t, 4, count, "ip %d", i)
	}
}
