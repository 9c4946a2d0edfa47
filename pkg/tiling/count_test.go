package tiling

import "testing"

func TestCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{-5, "0"},
		{-1, "0"},
		{0, "1"},
		{1, "1"},
		{2, "2"},
		{3, "3"},
		{10, "89"},
		{91, "7540113804746346429"},
		{92, "12200160415121876738"},
	}

	for _, tt := range tests {
		if got := Count(tt.n).String(); got != tt.want {
			t.Errorf("Count(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
}

func TestCountMatchesEnumerate(t *testing.T) {
	e := New()
	for n := 0; n <= 15; n++ {
		if got, want := int64(len(e.Enumerate(n))), Count(n).Int64(); got != want {
			t.Errorf("n=%d: len(Enumerate) = %d, Count = %d", n, got, want)
		}
	}
}
