package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryWindowLimiter is the in-process fixed-window limiter used when no
// redis is configured. Counters for past windows are dropped lazily on the
// next request from the same session.
type MemoryWindowLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	counts map[string]*windowCount

	now func() time.Time
}

type windowCount struct {
	window int64
	count  int
}

func NewMemoryWindow(limit int, window time.Duration) *MemoryWindowLimiter {
	return &MemoryWindowLimiter{
		limit:  limit,
		window: window,
		counts: make(map[string]*windowCount),
		now:    time.Now,
	}
}

func (m *MemoryWindowLimiter) currentWindow() int64 {
	return m.now().Unix() / int64(m.window.Seconds())
}

func (m *MemoryWindowLimiter) Allow(ctx context.Context, sessionKey string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.currentWindow()
	wc, ok := m.counts[sessionKey]
	if !ok || wc.window != current {
		wc = &windowCount{window: current}
		m.counts[sessionKey] = wc
	}

	wc.count++

	return wc.count <= m.limit, nil
}

func (m *MemoryWindowLimiter) Remaining(ctx context.Context, sessionKey string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	wc, ok := m.counts[sessionKey]
	if !ok || wc.window != m.currentWindow() {
		return m.limit, nil
	}

	remaining := m.limit - wc.count
	if remaining < 0 {
		remaining = 0
	}

	return remaining, nil
}

func (m *MemoryWindowLimiter) Limit() int {
	return m.limit
}

func (m *MemoryWindowLimiter) Window() time.Duration {
	return m.window
}

func (m *MemoryWindowLimiter) Reset(ctx context.Context, sessionKey string) (time.Time, error) {
	next := (m.currentWindow() + 1) * int64(m.window.Seconds())
	return time.Unix(next, 0), nil
}
