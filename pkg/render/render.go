package render

import (
	"fmt"

	"github.com/matzehuels/dominoes/pkg/board"
	"github.com/matzehuels/dominoes/pkg/tiling"
)

// Output formats.
const (
	FormatText = "text" // Terminal cards
	FormatSVG  = "svg"  // SVG gallery
	FormatPNG  = "png"  // SVG gallery rasterized by rsvg-convert
	FormatPDF  = "pdf"  // SVG gallery converted by rsvg-convert
	FormatJSON = "json" // Machine-readable gallery
	FormatDOT  = "dot"  // Decision tree as Graphviz DOT
	FormatTree = "tree" // Decision tree rendered to SVG by Graphviz

	FormatTreePNG = "tree-png" // Decision tree rasterized by Graphviz
)

// Formats lists every supported output format.
var Formats = []string{FormatText, FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatDOT, FormatTree, FormatTreePNG}

// ContentType returns the MIME type for a format.
func ContentType(format string) string {
	switch format {
	case FormatSVG, FormatTree:
		return "image/svg+xml"
	case FormatPNG, FormatTreePNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	case FormatJSON:
		return "application/json"
	case FormatDOT:
		return "text/vnd.graphviz; charset=utf-8"
	}
	return "text/plain; charset=utf-8"
}

// Card is one tiling prepared for display.
type Card struct {
	Index  int           // 1-based position in the enumeration
	Label  string        // "Tiling #<Index>"
	Tiling tiling.Tiling // Placement sequence
	Layout board.Layout  // Cells covered by each domino
}

// Label returns the display label for the card at 1-based index i.
func Label(i int) string {
	return fmt.Sprintf("Tiling #%d", i)
}

// NewCards builds one card per tiling, preserving enumeration order.
func NewCards(ts []tiling.Tiling) []Card {
	cards := make([]Card, len(ts))
	for i, t := range ts {
		cards[i] = Card{
			Index:  i + 1,
			Label:  Label(i + 1),
			Tiling: t,
			Layout: board.New(t),
		}
	}
	return cards
}

// Summary returns the headline shown above a gallery, e.g.
// "5 tilings of a 2×4 board".
func Summary(width, count int) string {
	noun := "tilings"
	if count == 1 {
		noun = "tiling"
	}
	return fmt.Sprintf("%d %s of a 2×%d board", count, noun, width)
}
