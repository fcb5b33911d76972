package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestMemoryWindowAllowsUpToLimit(t *testing.T) {
	l := NewMemoryWindow(3, time.Minute)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		allowed, err := l.Allow(ctx, "anon_a")
		if err != nil {
			t.Fatalf("Allow() error = %v", err)
		}
		if !allowed {
			t.Fatalf("request %d should be allowed", i)
		}
	}

	allowed, _ := l.Allow(ctx, "anon_a")
	if allowed {
		t.Error("request over the limit should be rejected")
	}
}

func TestMemoryWindowKeysAreIndependent(t *testing.T) {
	l := NewMemoryWindow(1, time.Minute)
	ctx := context.Background()

	l.Allow(ctx, "anon_a")
	allowed, _ := l.Allow(ctx, "anon_b")
	if !allowed {
		t.Error("a second session should have its own window")
	}
}

func TestMemoryWindowRemaining(t *testing.T) {
	l := NewMemoryWindow(5, time.Minute)
	ctx := context.Background()

	remaining, err := l.Remaining(ctx, "anon_a")
	if err != nil || remaining != 5 {
		t.Fatalf("Remaining() = %d, %v, want 5, nil", remaining, err)
	}

	l.Allow(ctx, "anon_a")
	l.Allow(ctx, "anon_a")

	remaining, _ = l.Remaining(ctx, "anon_a")
	if remaining != 3 {
		t.Errorf("Remaining() = %d, want 3", remaining)
	}
}

func TestMemoryWindowRollsOver(t *testing.T) {
	l := NewMemoryWindow(1, time.Minute)
	ctx := context.Background()

	base := time.Unix(1_700_000_000, 0)
	l.now = func() time.Time { return base }

	l.Allow(ctx, "anon_a")
	if allowed, _ := l.Allow(ctx, "anon_a"); allowed {
		t.Fatal("second request in the same window should be rejected")
	}

	l.now = func() time.Time { return base.Add(time.Minute) }
	if allowed, _ := l.Allow(ctx, "anon_a"); !allowed {
		t.Error("a new window should reset the counter")
	}
}

func TestFactoryFallsBackToMemory(t *testing.T) {
	l := NewLimiter(nil, 10, time.Minute)
	if _, ok := l.(*MemoryWindowLimiter); !ok {
		t.Errorf("NewLimiter(nil, ...) = %T, want *MemoryWindowLimiter", l)
	}
	if l.Limit() != 10 {
		t.Errorf("Limit() = %d, want 10", l.Limit())
	}
}
