package sink

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/dominoes/pkg/render"
	"github.com/matzehuels/dominoes/pkg/render/styles"
	"github.com/matzehuels/dominoes/pkg/tiling"
)

func TestRenderSVGStructure(t *testing.T) {
	cards := render.NewCards(tiling.Enumerate(4))
	svg := string(RenderSVG(4, cards))

	if !strings.HasPrefix(svg, "<svg ") {
		t.Error("RenderSVG should start with <svg")
	}
	if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("RenderSVG should end with </svg>")
	}
	if got := strings.Count(svg, `<g class="tiling"`); got != 5 {
		t.Errorf("card groups = %d, want 5", got)
	}
	for _, label := range []string{"Tiling #1", "Tiling #5", "5 tilings of a 2×4 board"} {
		if !strings.Contains(svg, label) {
			t.Errorf("RenderSVG missing %q", label)
		}
	}
	// 4 dominoes per card, 5 cards
	if got := strings.Count(svg, `class="tile `); got != 20 {
		t.Errorf("tiles = %d, want 20", got)
	}
}

func TestRenderSVGWellFormed(t *testing.T) {
	cards := render.NewCards(tiling.Enumerate(3))
	for _, style := range []styles.Style{styles.Simple{}, styles.Blueprint{}} {
		svg := RenderSVG(3, cards, WithStyle(style), WithColumns(2))
		dec := xml.NewDecoder(strings.NewReader(string(svg)))
		for {
			_, err := dec.Token()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					t.Errorf("%s: invalid XML: %v", style.Name(), err)
				}
				break
			}
		}
	}
}

func TestRenderSVGTileOrientation(t *testing.T) {
	cards := render.NewCards([]tiling.Tiling{{tiling.Vertical, tiling.HorizontalPair}})
	svg := string(RenderSVG(3, cards))

	if got := strings.Count(svg, "tile-v"); got < 1 {
		t.Error("expected a vertical tile")
	}
	if !strings.Contains(svg, `id="c1-t2"`) || !strings.Contains(svg, `id="c1-t3"`) {
		t.Error("expected two stacked horizontal tiles")
	}
	if !strings.Contains(svg, `data-code="VH"`) {
		t.Error("card should carry its tiling code")
	}
}

func TestRenderSVGEmpty(t *testing.T) {
	svg := string(RenderSVG(0, nil))
	if !strings.Contains(svg, "0 tilings of a 2×0 board") {
		t.Errorf("empty gallery should still have a header: %s", svg)
	}
}

func TestSVGOptionsIgnoreInvalid(t *testing.T) {
	r := newSVGRenderer(WithColumns(0), WithUnit(-1))
	if r.columns != defaultColumns || r.unit != defaultUnit {
		t.Errorf("invalid options should be ignored: %+v", r)
	}
}
