package tree

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/dominoes/pkg/tiling"
)

func TestToDOTStructure(t *testing.T) {
	dot := ToDOT(3, Options{})

	if !strings.HasPrefix(dot, "digraph Tilings {") {
		t.Error("ToDOT() should start with 'digraph Tilings {'")
	}
	if !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Error("ToDOT() should end with '}'")
	}
	for _, exp := range []string{"rankdir=TB", "bgcolor=\"transparent\"", "fontname="} {
		if !strings.Contains(dot, exp) {
			t.Errorf("ToDOT() missing %q", exp)
		}
	}
}

func TestToDOTLeavesMatchCount(t *testing.T) {
	for n := 0; n <= 8; n++ {
		dot := ToDOT(n, Options{})
		got := strings.Count(dot, "doublecircle")
		want := int(tiling.Count(n).Int64())
		if got != want {
			t.Errorf("width %d: %d success leaves, want %d", n, got, want)
		}
	}
}

func TestToDOTEdgeLabels(t *testing.T) {
	dot := ToDOT(2, Options{})
	// 2 -> 1 (V), 1 -> 0 (V), 1 -> -1 (H), 2 -> 0 (H)
	if got := strings.Count(dot, `[label="V"]`); got != 2 {
		t.Errorf("V edges = %d, want 2", got)
	}
	if got := strings.Count(dot, `[label="H"]`); got != 2 {
		t.Errorf("H edges = %d, want 2", got)
	}
}

func TestToDOTCollapsed(t *testing.T) {
	dot := ToDOT(10, Options{Collapse: true})

	// One node per width 10..-1
	if got := strings.Count(dot, "shape="); got != 12 {
		t.Errorf("collapsed nodes = %d, want 12", got)
	}
	if got := strings.Count(dot, "->"); got != 20 {
		t.Errorf("collapsed edges = %d, want 20", got)
	}
	if !strings.Contains(dot, "w10 -> w9 [label=\"V\"]") || !strings.Contains(dot, "w1 -> w_neg1 [label=\"H\"]") {
		t.Errorf("collapsed tree missing expected edges:\n%s", dot)
	}
}

func TestToDOTCollapsedZero(t *testing.T) {
	dot := ToDOT(0, Options{Collapse: true})
	if strings.Count(dot, "shape=") != 1 || strings.Contains(dot, "->") {
		t.Errorf("width 0 should be a single success node:\n%s", dot)
	}
}

func TestToDOTNegative(t *testing.T) {
	for _, collapse := range []bool{false, true} {
		dot := ToDOT(-1, Options{Collapse: collapse})
		if strings.Contains(dot, "doublecircle") || !strings.Contains(dot, "dashed") {
			t.Errorf("collapse=%v: negative width should be a single overshoot node:\n%s", collapse, dot)
		}
	}
}

func TestToDOTClampsFullTree(t *testing.T) {
	big := ToDOT(40, Options{})
	capped := ToDOT(MaxWidth, Options{})
	if big != capped {
		t.Error("full tree should clamp to MaxWidth")
	}
}

func TestRenderImages(t *testing.T) {
	ctx := context.Background()

	svg, err := RenderSVG(ctx, 3, Options{})
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Errorf("RenderSVG output is not SVG:\n%s", svg)
	}

	png, err := RenderPNG(ctx, 3, Options{Collapse: true})
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")) {
		t.Errorf("RenderPNG output lacks the PNG signature (%d bytes)", len(png))
	}
}
