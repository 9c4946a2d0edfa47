package sink

import (
	"strings"
	"testing"

	"github.com/matzehuels/dominoes/pkg/render"
	"github.com/matzehuels/dominoes/pkg/tiling"
)

func TestRenderTextPlain(t *testing.T) {
	cards := render.NewCards(tiling.Enumerate(3))
	out := RenderText(3, cards, WithTextColor(false))

	if !strings.HasPrefix(out, "3 tilings of a 2×3 board\n") {
		t.Errorf("missing headline: %q", out)
	}
	for _, want := range []string{"Tiling #1", "Tiling #2", "Tiling #3", "┃ ┃ ┃", "┃ ━━━", "━━━ ┃"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderText missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("plain rendering should not contain ANSI escapes")
	}
}

func TestRenderTextColumns(t *testing.T) {
	cards := render.NewCards(tiling.Enumerate(4))
	oneCol := RenderText(4, cards, WithTextColor(false), WithTextColumns(1))
	fiveCol := RenderText(4, cards, WithTextColor(false), WithTextColumns(5))

	if strings.Count(oneCol, "\n") <= strings.Count(fiveCol, "\n") {
		t.Error("one card per row should produce more lines than five per row")
	}
}

func TestRenderTextCardEmpty(t *testing.T) {
	cards := render.NewCards(tiling.Enumerate(0))
	out := RenderTextCard(cards[0], WithTextColor(false))
	if !strings.Contains(out, glyphNone) {
		t.Errorf("empty tiling should render %q: %s", glyphNone, out)
	}
}
