package tiling

import (
	"iter"
	"slices"
)

// All yields every tiling of a 2×n board in the same order as
// [Enumerator.Enumerate], one at a time, without memoizing anything.
//
// Memory use is proportional to n rather than to the number of tilings.
// The sequence can be ranged over any number of times; each yielded tiling
// is a fresh slice owned by the caller.
func All(n int) iter.Seq[Tiling] {
	return func(yield func(Tiling) bool) {
		prefix := make(Tiling, 0, max(n, 0))
		walk(n, prefix, yield)
	}
}

// walk extends prefix depth-first, Vertical before HorizontalPair.
// It returns false once yield asks to stop.
func walk(n int, prefix Tiling, yield func(Tiling) bool) bool {
	switch {
	case n < 0:
		return true
	case n == 0:
		return yield(slices.Clone(prefix))
	}
	if !walk(n-1, append(prefix, Vertical), yield) {
		return false
	}
	return walk(n-2, append(prefix, HorizontalPair), yield)
}
