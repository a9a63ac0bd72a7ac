package limiter

import (
	"sync"
	"time"
)

// MemoryLimiter counts failures per key inside a sliding window.
type MemoryLimiter struct {
	mu        sync.Mutex
	history   map[string][]time.Time
	window    time.Duration
	maxFails  int
	lastSweep time.Time
}

func NewMemoryLimiter(window time.Duration, maxFails int) *MemoryLimiter {
	return &MemoryLimiter{
		history:  make(map[string][]time.Time),
		window:   window,
		maxFails: maxFails,
	}
}

// TooMany reports whether key reached maxFails inside the window. Expired
// entries are pruned on every call and empty keys are forgotten.
func (r *MemoryLimiter) TooMany(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	recent := r.history[key][:0]

	for _, at := range r.history[key] {
		if now.Sub(at) <= r.window {
			recent = append(recent, at)
		}
	}

	if len(recent) == 0 {
		delete(r.history, key)
		return false
	}

	r.history[key] = recent

	return len(recent) >= r.maxFails
}

// Fail records a failure for key. At most once per window it also drops every
// key whose failures have all expired, so one-shot keys do not accumulate.
func (r *MemoryLimiter) Fail(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()

	if now.Sub(r.lastSweep) > r.window {
		r.sweep(now)
		r.lastSweep = now
	}

	r.history[key] = append(r.history[key], now)
}

func (r *MemoryLimiter) sweep(now time.Time) {
	for key, attempts := range r.history {
		if len(attempts) == 0 || now.Sub(attempts[len(attempts)-1]) > r.window {
			delete(r.history, key)
		}
	}
}
