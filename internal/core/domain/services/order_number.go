package services

import (
	"fmt"
	"sync"
	"time"
)

// OrderNumberGenerator produces human-facing order numbers of the form
//
//	PREFIX-YYYYMMDD-SSSSSSSSS
//
// where the nine-digit sequence is seeded from the milliseconds elapsed since
// midnight (UTC) at startup and on every day rollover, then incremented per
// order under a mutex. Numbers are therefore date-prefixed, strictly
// increasing within a process run, and remain collision-free across same-day
// restarts as long as the sustained order rate stays below one per
// millisecond. The unique database index on the order number is the backstop
// for anything beyond that.
//
// The generator is safe for concurrent use.
type OrderNumberGenerator struct {
	prefix string

	mu  sync.Mutex
	day string
	seq uint64
}

// NewOrderNumberGenerator creates a generator using the given prefix,
// e.g. "FD" produces numbers like "FD-20260830-043200123".
func NewOrderNumberGenerator(prefix string) *OrderNumberGenerator {
	return &OrderNumberGenerator{prefix: prefix}
}

// Next returns a fresh order number for the given time.
// Every call returns a distinct value; identical creation requests never
// share a number.
func (g *OrderNumberGenerator) Next(now time.Time) string {
	now = now.UTC()
	day := now.Format("20060102")

	g.mu.Lock()
	defer g.mu.Unlock()

	if day != g.day {
		g.day = day
		g.seq = millisSinceMidnight(now)
	}
	g.seq++

	return fmt.Sprintf("%s-%s-%09d", g.prefix, day, g.seq)
}

func millisSinceMidnight(now time.Time) uint64 {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return uint64(now.Sub(midnight).Milliseconds()) //nolint:gosec // duration since midnight is non-negative
}
