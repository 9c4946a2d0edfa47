// Package tiling enumerates the tilings of a 2×N board.
//
// A board two cells tall and N cells wide can be covered by two kinds of
// placements:
//   - [Vertical]: one domino standing upright, filling a single column
//   - [HorizontalPair]: two dominoes lying flat, stacked, filling two columns
//
// A [Tiling] records the placements from left to right. The number of
// tilings of width n follows the Fibonacci recurrence F(n) = F(n-1) + F(n-2)
// with F(0) = F(1) = 1, so widths 0 through 10 yield
// 1, 1, 2, 3, 5, 8, 13, 21, 34, 55 and 89 tilings.
//
// # Enumeration
//
// [Enumerator.Enumerate] builds the full list recursively: every tiling of
// width n-1 prefixed with a Vertical, followed by every tiling of width n-2
// prefixed with a HorizontalPair. The two branches differ in their first
// placement, so the result never contains duplicates. This order is stable
// and part of the contract:
//
//	tiling.Enumerate(3) // [VVV VH HV]
//
// Results are memoized per width for the lifetime of the Enumerator and the
// same slice is returned on every later call. Callers must treat returned
// tilings as read-only.
//
// The package-level [Enumerate] uses a process-wide Enumerator. Create a
// private one with [New] when an isolated cache is preferable (tests, or a
// server that wants to report its own [Stats]).
//
// # Lazy Enumeration
//
// For widths whose output would be too large to hold in memory, [All]
// yields the same tilings in the same order without building or caching the
// list:
//
//	for t := range tiling.All(40) {
//	    fmt.Println(t)
//	}
//
// [Count] returns the number of tilings without enumerating them. It uses
// math/big and is exact for any width.
package tiling
