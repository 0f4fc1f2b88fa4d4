package http

import (
	"sync"
	"time"
)

// rateLimiter throttles credential-bearing form posts per client IP so the
// login form cannot be used to brute-force the remote API.
type rateLimiter struct {
	mu           sync.Mutex
	clients      map[string]*clientInfo
	limit        int
	window       time.Duration
	stopCleanup  chan struct{}
	shutdownOnce sync.Once
}

type clientInfo struct {
	windowStart time.Time
	requests    int
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	rl := &rateLimiter{
		clients:     make(map[string]*clientInfo),
		limit:       limit,
		window:      window,
		stopCleanup: make(chan struct{}),
	}
	go rl.startCleanup()
	return rl
}

// allow reports whether a request from the given IP fits in the current
// window.
func (rl *rateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	client, exists := rl.clients[clientIP]
	if !exists || now.Sub(client.windowStart) >= rl.window {
		rl.clients[clientIP] = &clientInfo{windowStart: now, requests: 1}
		return true
	}

	client.requests++
	return client.requests <= rl.limit
}

func (rl *rateLimiter) startCleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupStaleEntries()
		case <-rl.stopCleanup:
			return
		}
	}
}

// cleanupStaleEntries drops clients idle for two full windows.
func (rl *rateLimiter) cleanupStaleEntries() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-2 * rl.window)
	for ip, client := range rl.clients {
		if client.windowStart.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}

func (rl *rateLimiter) stop() {
	rl.shutdownOnce.Do(func() {
		close(rl.stopCleanup)
	})
}
