package tiling

import (
	"sync"
	"sync/atomic"
)

// none is returned for negative widths. It has zero capacity, so appending
// to it never touches shared memory.
var none = []Tiling{}

// Enumerator computes tilings and memoizes them per width.
//
// Entries are created on first request and kept for the lifetime of the
// Enumerator; there is no eviction. Negative widths are not memoized since
// they are answered without any work.
//
// An Enumerator is safe for concurrent use. Lookups of an already computed
// width take a shared lock; computing a new width holds the exclusive lock
// for the duration of the recursion.
type Enumerator struct {
	mu     sync.RWMutex
	memo   map[int][]Tiling
	hits   atomic.Int64
	misses atomic.Int64
}

// Stats reports memoization activity.
type Stats struct {
	Entries int   // Widths currently memoized
	Hits    int64 // Lookups answered from the memo
	Misses  int64 // Widths that had to be computed
}

// New creates an Enumerator with an empty memo.
func New() *Enumerator {
	return &Enumerator{memo: make(map[int][]Tiling)}
}

// Enumerate returns every tiling of a 2×n board.
//
// Tilings starting with [Vertical] come first (followed by the tilings of
// width n-1 in their own order), then those starting with [HorizontalPair]
// (followed by the tilings of width n-2). Enumerate(0) returns a single
// empty tiling and Enumerate(n) for n < 0 returns an empty slice.
//
// The returned slice is memoized and shared with later callers; it must not
// be modified.
func (e *Enumerator) Enumerate(n int) []Tiling {
	if n < 0 {
		return none
	}

	e.mu.RLock()
	ts, ok := e.memo[n]
	e.mu.RUnlock()
	if ok {
		e.hits.Add(1)
		return ts
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.solve(n)
}

// solve runs the recursion. The caller must hold e.mu exclusively.
func (e *Enumerator) solve(n int) []Tiling {
	if n < 0 {
		return none
	}
	if ts, ok := e.memo[n]; ok {
		e.hits.Add(1)
		return ts
	}
	e.misses.Add(1)

	var ts []Tiling
	if n == 0 {
		ts = []Tiling{{}}
	} else {
		subs := make([][]Tiling, len(Tokens))
		size := 0
		for i, tok := range Tokens {
			subs[i] = e.solve(n - tok.Width())
			size += len(subs[i])
		}
		ts = make([]Tiling, 0, size)
		for i, tok := range Tokens {
			for _, rest := range subs[i] {
				ts = append(ts, prepend(tok, rest))
			}
		}
	}

	e.memo[n] = ts
	return ts
}

// Cached reports whether width n has already been computed.
func (e *Enumerator) Cached(n int) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.memo[n]
	return ok
}

// Stats returns a snapshot of memoization counters.
func (e *Enumerator) Stats() Stats {
	e.mu.RLock()
	entries := len(e.memo)
	e.mu.RUnlock()
	return Stats{
		Entries: entries,
		Hits:    e.hits.Load(),
		Misses:  e.misses.Load(),
	}
}

var (
	defaultOnce sync.Once
	defaultEnum *Enumerator
)

// Default returns the process-wide Enumerator used by [Enumerate].
// It is created on first use.
func Default() *Enumerator {
	defaultOnce.Do(func() { defaultEnum = New() })
	return defaultEnum
}

// Enumerate returns every tiling of a 2×n board using the process-wide
// Enumerator. See [Enumerator.Enumerate] for ordering and sharing rules.
func Enumerate(n int) []Tiling {
	return Default().Enumerate(n)
}
