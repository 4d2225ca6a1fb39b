package http

import (
	"math"
	"sync"
	"time"
)

const (
	bucketIdleThreshold = 1 * time.Hour
	cleanupInterval     = 30 * time.Minute
)

type clientBucket struct {
	tokens   float64
	lastSeen time.Time
}

// RateLimiter is a per-client token bucket that refills continuously at
// capacity tokens per window.
type RateLimiter struct {
	mu          sync.Mutex
	capacity    float64
	perToken    time.Duration
	clients     map[string]*clientBucket
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity:    float64(capacity),
		perToken:    window / time.Duration(capacity),
		clients:     make(map[string]*clientBucket),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for key, bucket := range r.clients {
		if now.Sub(bucket.lastSeen) > bucketIdleThreshold {
			delete(r.clients, key)
		}
	}
}

func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

// Allow takes a token for key. When none is left it reports how long until
// the next one.
func (r *RateLimiter) Allow(key string) (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	bucket, exists := r.clients[key]
	if !exists {
		r.clients[key] = &clientBucket{tokens: r.capacity - 1, lastSeen: now}
		return true, 0
	}

	elapsed := now.Sub(bucket.lastSeen)
	bucket.tokens = math.Min(r.capacity, bucket.tokens+float64(elapsed)/float64(r.perToken))
	bucket.lastSeen = now

	if bucket.tokens < 1 {
		missing := 1 - bucket.tokens
		return false, time.Duration(missing * float64(r.perToken))
	}

	bucket.tokens--
	return true, 0
}
