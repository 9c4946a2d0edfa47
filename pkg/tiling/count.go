package tiling

import "math/big"

// Count returns the number of tilings of a 2×n board without enumerating
// them: 0 for n < 0, otherwise F(n) with F(0) = F(1) = 1.
//
// The result is exact for any n. Counts exceed int64 from n = 92 onward.
func Count(n int) *big.Int {
	if n < 0 {
		return new(big.Int)
	}
	a, b := big.NewInt(1), big.NewInt(1)
	for i := 1; i <= n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return a
}
