package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/dominoes/pkg/render"
	"github.com/matzehuels/dominoes/pkg/render/styles"
)

// Gallery geometry in SVG user units.
const (
	defaultUnit    = 24.0 // Side of one board cell
	defaultColumns = 4    // Cards per row
	cardPad        = 12.0
	cardLabelH     = 24.0
	cardGap        = 16.0
	pageMargin     = 20.0
	headerH        = 32.0
	tileInset      = 1.5
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style   styles.Style
	columns int
	unit    float64
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithColumns sets the number of cards per row. Values below 1 are ignored.
func WithColumns(n int) SVGOption {
	return func(r *svgRenderer) {
		if n > 0 {
			r.columns = n
		}
	}
}

// WithUnit sets the side length of one board cell. Values <= 0 are ignored.
func WithUnit(u float64) SVGOption {
	return func(r *svgRenderer) {
		if u > 0 {
			r.unit = u
		}
	}
}

// RenderSVG draws every card as a 2×width board inside a single SVG page,
// headed by the tiling count.
func RenderSVG(width int, cards []render.Card, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	cols := max(1, min(r.columns, len(cards)))
	rows := (len(cards) + cols - 1) / cols

	cardW := 2*cardPad + float64(max(width, 1))*r.unit
	cardH := cardLabelH + 2*r.unit + cardPad
	pageW := 2*pageMargin + float64(cols)*cardW + float64(cols-1)*cardGap
	pageH := 2*pageMargin + headerH + float64(rows)*cardH + float64(max(rows-1, 0))*cardGap

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		pageW, pageH, pageW, pageH)

	r.style.RenderDefs(&buf)
	r.style.RenderBackground(&buf, pageW, pageH)
	r.style.RenderHeader(&buf, pageMargin, pageMargin+headerH/2+6, render.Summary(width, len(cards)))

	for i, c := range cards {
		x := pageMargin + float64(i%cols)*(cardW+cardGap)
		y := pageMargin + headerH + float64(i/cols)*(cardH+cardGap)
		r.renderCard(&buf, c, x, y, cardW, cardH)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Simple{}, columns: defaultColumns, unit: defaultUnit}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r *svgRenderer) renderCard(buf *bytes.Buffer, c render.Card, x, y, w, h float64) {
	fmt.Fprintf(buf, `  <g class="tiling" data-code="%s">`+"\n", c.Tiling)
	r.style.RenderCard(buf, styles.Card{
		Index:  c.Index,
		Label:  c.Label,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
		LabelY: y + cardLabelH*0.7,
	})

	boardX := x + cardPad
	boardY := y + cardLabelH
	for _, t := range c.Layout.Tiles {
		r.style.RenderTile(buf, styles.Tile{
			ID:   fmt.Sprintf("c%d-t%d", c.Index, t.ID),
			X:    boardX + float64(t.Col)*r.unit + tileInset,
			Y:    boardY + float64(t.Row)*r.unit + tileInset,
			W:    float64(t.Cols)*r.unit - 2*tileInset,
			H:    float64(t.Rows)*r.unit - 2*tileInset,
			Tall: t.Tall(),
		})
	}
	buf.WriteString("  </g>\n")
}
