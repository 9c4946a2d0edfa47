package render

import (
	"testing"

	"github.com/matzehuels/dominoes/pkg/tiling"
)

func TestNewCards(t *testing.T) {
	cards := NewCards(tiling.Enumerate(3))
	if len(cards) != 3 {
		t.Fatalf("len(cards) = %d, want 3", len(cards))
	}
	wantLabels := []string{"Tiling #1", "Tiling #2", "Tiling #3"}
	for i, c := range cards {
		if c.Index != i+1 {
			t.Errorf("cards[%d].Index = %d", i, c.Index)
		}
		if c.Label != wantLabels[i] {
			t.Errorf("cards[%d].Label = %q, want %q", i, c.Label, wantLabels[i])
		}
		if c.Layout.Width != 3 {
			t.Errorf("cards[%d].Layout.Width = %d, want 3", i, c.Layout.Width)
		}
	}
	if cards[1].Tiling.String() != "VH" {
		t.Errorf("cards[1].Tiling = %s, want VH", cards[1].Tiling)
	}
}

func TestNewCardsEmpty(t *testing.T) {
	if cards := NewCards(tiling.Enumerate(-1)); len(cards) != 0 {
		t.Errorf("NewCards(none) = %v, want empty", cards)
	}
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		FormatSVG:     "image/svg+xml",
		FormatTree:    "image/svg+xml",
		FormatTreePNG: "image/png",
		FormatPNG:     "image/png",
		FormatJSON:    "application/json",
		FormatText:    "text/plain; charset=utf-8",
	}
	for format, want := range tests {
		if got := ContentType(format); got != want {
			t.Errorf("ContentType(%q) = %q, want %q", format, got, want)
		}
	}
}

func TestSummary(t *testing.T) {
	if got := Summary(4, 5); got != "5 tilings of a 2×4 board" {
		t.Errorf("Summary(4, 5) = %q", got)
	}
	if got := Summary(1, 1); got != "1 tiling of a 2×1 board" {
		t.Errorf("Summary(1, 1) = %q", got)
	}
}
