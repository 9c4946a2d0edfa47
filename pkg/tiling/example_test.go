package tiling_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/dominoes/pkg/tiling"
)

func ExampleEnumerate() {
	for _, t := range tiling.Enumerate(3) {
		fmt.Println(t)
	}
	// Output:
	// VVV
	// VH
	// HV
}

func ExampleAll() {
	n := 0
	for t := range tiling.All(4) {
		n++
		fmt.Println(n, t)
	}
	// Output:
	// 1 VVVV
	// 2 VVH
	// 3 VHV
	// 4 HVV
	// 5 HH
}

func ExampleCount() {
	counts := make([]string, 0, 11)
	for n := 0; n <= 10; n++ {
		counts = append(counts, tiling.Count(n).String())
	}
	fmt.Println(strings.Join(counts, " "))
	fmt.Println(tiling.Count(100))
	// Output:
	// 1 1 2 3 5 8 13 21 34 55 89
	// 573147844013817084101
}

func ExampleParse() {
	t, err := tiling.Parse("V,H,V")
	if err != nil {
		panic(err)
	}
	fmt.Println(t, t.Width(), t.Dominoes())
	// Output:
	// VHV 4 4
}
