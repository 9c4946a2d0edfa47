package sink

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/dominoes/pkg/render"
	"github.com/matzehuels/dominoes/pkg/tiling"
)

var (
	colorTall  = lipgloss.Color("36")  // Teal
	colorFlat  = lipgloss.Color("220") // Amber
	colorFrame = lipgloss.Color("240") // Dim gray
	colorLabel = lipgloss.Color("245") // Gray
)

// Glyphs used for the terminal board. Each column is one character wide
// and placements are separated by a space, so a flat pair spans three.
const (
	glyphTall = "┃"
	glyphFlat = "━━━"
	glyphNone = "∅"
)

// TextOption configures text rendering via [RenderText].
type TextOption func(*textRenderer)

type textRenderer struct {
	columns int
	color   bool
}

// WithTextColumns sets the number of cards per row. Values below 1 are ignored.
func WithTextColumns(n int) TextOption {
	return func(r *textRenderer) {
		if n > 0 {
			r.columns = n
		}
	}
}

// WithTextColor toggles ANSI colours for tiles and labels.
func WithTextColor(on bool) TextOption { return func(r *textRenderer) { r.color = on } }

func newTextRenderer(opts ...TextOption) textRenderer {
	r := textRenderer{columns: defaultColumns, color: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderText draws the cards as bordered boxes, several per line, under a
// summary headline.
func RenderText(width int, cards []render.Card, opts ...TextOption) string {
	r := newTextRenderer(opts...)

	var b strings.Builder
	b.WriteString(r.paint(render.Summary(width, len(cards)), lipgloss.NewStyle().Bold(true)))
	b.WriteString("\n")

	for start := 0; start < len(cards); start += r.columns {
		end := min(start+r.columns, len(cards))
		boxes := make([]string, 0, end-start)
		for _, c := range cards[start:end] {
			boxes = append(boxes, r.card(c))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderTextCard draws a single card.
func RenderTextCard(c render.Card, opts ...TextOption) string {
	r := newTextRenderer(opts...)
	return r.card(c)
}

func (r textRenderer) card(c render.Card) string {
	top, bottom := r.rows(c.Tiling)
	body := r.paint(c.Label, lipgloss.NewStyle().Foreground(colorLabel)) + "\n" + top + "\n" + bottom

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		MarginRight(1)
	if r.color {
		frame = frame.BorderForeground(colorFrame)
	}
	return frame.Render(body)
}

// rows returns the two board rows. Every placement spans both rows, so the
// rows are drawn token by token in lockstep.
func (r textRenderer) rows(t tiling.Tiling) (string, string) {
	if len(t) == 0 {
		return glyphNone, glyphNone
	}
	tall := lipgloss.NewStyle().Foreground(colorTall)
	flat := lipgloss.NewStyle().Foreground(colorFlat)

	parts := make([]string, 0, len(t))
	for _, tok := range t {
		switch tok {
		case tiling.Vertical:
			parts = append(parts, r.paint(glyphTall, tall))
		case tiling.HorizontalPair:
			parts = append(parts, r.paint(glyphFlat, flat))
		}
	}
	row := strings.Join(parts, " ")
	return row, row
}

func (r textRenderer) paint(s string, style lipgloss.Style) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}
