package styles

import (
	"bytes"
	"fmt"
)

// Blueprint draws outlined tiles on a dark blue grid.
type Blueprint struct{}

func (Blueprint) Name() string { return "blueprint" }

func (Blueprint) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <pattern id="bp-grid" width="12" height="12" patternUnits="userSpaceOnUse">
      <path d="M 12 0 L 0 0 0 12" fill="none" stroke="#1e3a8a" stroke-width="0.5"/>
    </pattern>
  </defs>
  <style>
    .card-label { font: 12px "SF Mono", Menlo, monospace; fill: #bfdbfe; }
    .header { font: 700 16px "SF Mono", Menlo, monospace; fill: #eff6ff; }
    .tile { fill: none; stroke-width: 2; }
    .tile-v { stroke: #e0f2fe; }
    .tile-h { stroke: #93c5fd; stroke-dasharray: 4 2; }
  </style>
`)
}

func (Blueprint) RenderBackground(buf *bytes.Buffer, w, h float64) {
	fmt.Fprintf(buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="#1e40af"/>`+"\n", w, h)
	fmt.Fprintf(buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="url(#bp-grid)"/>`+"\n", w, h)
}

func (Blueprint) RenderHeader(buf *bytes.Buffer, x, y float64, text string) {
	fmt.Fprintf(buf, `  <text class="header" x="%.1f" y="%.1f">%s</text>`+"\n", x, y, EscapeXML(text))
}

func (Blueprint) RenderCard(buf *bytes.Buffer, c Card) {
	fmt.Fprintf(buf, `  <rect class="card" id="card-%d" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#60a5fa" stroke-dasharray="6 3"/>`+"\n",
		c.Index, c.X, c.Y, c.W, c.H)
	fmt.Fprintf(buf, `  <text class="card-label" x="%.1f" y="%.1f">%s</text>`+"\n", c.X+10, c.LabelY, EscapeXML(c.Label))
}

func (Blueprint) RenderTile(buf *bytes.Buffer, t Tile) {
	class := "tile tile-h"
	if t.Tall {
		class = "tile tile-v"
	}
	fmt.Fprintf(buf, `  <rect class="%s" id="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n",
		class, t.ID, t.X, t.Y, t.W, t.H)
}
