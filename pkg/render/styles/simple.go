package styles

import (
	"bytes"
	"fmt"
)

// Simple draws white cards with teal upright tiles and amber flat tiles.
type Simple struct{}

func (Simple) Name() string { return "simple" }

func (Simple) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <style>
    .card-label { font: 600 12px -apple-system, "Segoe UI", sans-serif; fill: #475569; }
    .header { font: 700 16px -apple-system, "Segoe UI", sans-serif; fill: #0f172a; }
    .tile { stroke: #0f172a; stroke-width: 1.5; }
    .tile-v { fill: #14b8a6; }
    .tile-h { fill: #f59e0b; }
  </style>
`)
}

func (Simple) RenderBackground(buf *bytes.Buffer, w, h float64) {
	fmt.Fprintf(buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="#f8fafc"/>`+"\n", w, h)
}

func (Simple) RenderHeader(buf *bytes.Buffer, x, y float64, text string) {
	fmt.Fprintf(buf, `  <text class="header" x="%.1f" y="%.1f">%s</text>`+"\n", x, y, EscapeXML(text))
}

func (Simple) RenderCard(buf *bytes.Buffer, c Card) {
	fmt.Fprintf(buf, `  <rect class="card" id="card-%d" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="8" fill="#ffffff" stroke="#cbd5e1"/>`+"\n",
		c.Index, c.X, c.Y, c.W, c.H)
	fmt.Fprintf(buf, `  <text class="card-label" x="%.1f" y="%.1f">%s</text>`+"\n", c.X+10, c.LabelY, EscapeXML(c.Label))
}

func (Simple) RenderTile(buf *bytes.Buffer, t Tile) {
	class := "tile tile-h"
	if t.Tall {
		class = "tile tile-v"
	}
	fmt.Fprintf(buf, `  <rect class="%s" id="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="3"/>`+"\n",
		class, t.ID, t.X, t.Y, t.W, t.H)
}
