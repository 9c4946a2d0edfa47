package sink

import (
	"encoding/json"

	"github.com/matzehuels/dominoes/pkg/board"
	"github.com/matzehuels/dominoes/pkg/render"
	"github.com/matzehuels/dominoes/pkg/tiling"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style  string
	id     string
	indent bool
}

// WithJSONStyle records the style name in the output for round-trip
// rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONID records the generation run ID.
func WithJSONID(id string) JSONOption { return func(r *jsonRenderer) { r.id = id } }

// WithJSONIndent pretty-prints the document.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

// Document is the JSON form of a gallery.
type Document struct {
	ID      string        `json:"id,omitempty"`
	Width   int           `json:"width"`
	Count   int           `json:"count"`
	Summary string        `json:"summary"`
	Style   string        `json:"style,omitempty"`
	Tilings []TilingEntry `json:"tilings"`
}

// TilingEntry is one card in a [Document].
type TilingEntry struct {
	Index  int           `json:"index"`
	Label  string        `json:"label"`
	Code   string        `json:"code"`
	Tokens tiling.Tiling `json:"tokens"`
	Tiles  []board.Tile  `json:"tiles"`
	Grid   [][]int       `json:"grid"`
}

// NewDocument converts cards into their JSON form.
func NewDocument(width int, cards []render.Card) Document {
	doc := Document{
		Width:   width,
		Count:   len(cards),
		Summary: render.Summary(width, len(cards)),
		Tilings: make([]TilingEntry, len(cards)),
	}
	for i, c := range cards {
		tokens := c.Tiling
		if tokens == nil {
			tokens = tiling.Tiling{}
		}
		doc.Tilings[i] = TilingEntry{
			Index:  c.Index,
			Label:  c.Label,
			Code:   c.Tiling.String(),
			Tokens: tokens,
			Tiles:  c.Layout.Tiles,
			Grid:   [][]int{c.Layout.Grid[0], c.Layout.Grid[1]},
		}
	}
	return doc
}

// RenderJSON encodes the gallery as JSON.
func RenderJSON(width int, cards []render.Card, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	doc := NewDocument(width, cards)
	doc.Style = r.style
	doc.ID = r.id

	if r.indent {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}
