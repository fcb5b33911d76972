package usage

import (
	"sync"

	"github.com/lazygpt/gateway/internal/session"
)

// Stats is an aggregate snapshot of the ledger.
type Stats struct {
	ActiveSessions int `json:"active_sessions"`
	AnonSessions   int `json:"anon_sessions"`
	ProSessions    int `json:"pro_sessions"`
	TotalRequests  int `json:"total_requests"`
}

// Ledger tracks how many requests each free-tier session has made during
// this process lifetime. Entries have no TTL; they survive until Reset or
// process restart. Safe for concurrent use.
type Ledger struct {
	mu        sync.Mutex
	freeLimit int
	counts    map[string]int
}

func NewLedger(freeLimit int) *Ledger {
	return &Ledger{
		freeLimit: freeLimit,
		counts:    make(map[string]int),
	}
}

// IncrementAndCheck records one request for the session and reports whether
// it is still within the free-tier ceiling. Pro sessions bypass the ledger
// entirely: never counted, always allowed. The stored count caps at
// freeLimit+1 so repeated over-limit requests do not grow the entry.
func (l *Ledger) IncrementAndCheck(key string) (allowed bool, count int) {
	if session.IsPro(key) {
		return true, 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	count = l.counts[key] + 1
	if count > l.freeLimit+1 {
		count = l.freeLimit + 1
	}
	l.counts[key] = count

	return count <= l.freeLimit, count
}

// Count returns the stored count for a session, 0 when absent.
func (l *Ledger) Count(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.counts[key]
}

// Reset removes the session's entry. A no-op for unknown keys.
func (l *Ledger) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.counts, key)
}

// FreeLimit returns the configured free-tier ceiling.
func (l *Ledger) FreeLimit() int {
	return l.freeLimit
}

// Stats counts tracked sessions by naming convention and sums stored counts.
func (l *Ledger) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := Stats{ActiveSessions: len(l.counts)}
	for key, count := range l.counts {
		switch {
		case session.IsAnon(key):
			s.AnonSessions++
		case session.IsPro(key):
			s.ProSessions++
		}
		s.TotalRequests += count
	}

	return s
}
