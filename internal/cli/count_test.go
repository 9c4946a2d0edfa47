package cli

import (
	"slices"
	"strings"
	"testing"
)

func TestParseWidths(t *testing.T) {
	tests := []struct {
		args    []string
		want    []int
		wantErr bool
	}{
		{nil, []int{0, 1, 2, 3}, false},
		{[]string{"5"}, []int{5}, false},
		{[]string{"2", "0", "100"}, []int{2, 0, 100}, false},
		{[]string{"3-6"}, []int{3, 4, 5, 6}, false},
		{[]string{"1", "4-4"}, []int{1, 4}, false},
		{[]string{"-3"}, nil, true},
		{[]string{"x"}, nil, true},
		{[]string{"6-3"}, nil, true},
		{[]string{"1-x"}, nil, true},
		{[]string{"0-5000"}, nil, true},
		{[]string{"10000"}, []int{10000}, false},
		{[]string{"10001"}, nil, true},
		{[]string{"9990-10001"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, ","), func(t *testing.T) {
			got, err := parseWidths(tt.args, 3)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseWidths(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if !tt.wantErr && !slices.Equal(got, tt.want) {
				t.Errorf("parseWidths(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestCountTable(t *testing.T) {
	out := countTable([]int{0, 4, 10, 100})
	for _, want := range []string{"Width", "Tilings", "5", "89", "573147844013817084101"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
