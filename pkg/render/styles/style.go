// Package styles defines the colour schemes of the SVG gallery.
package styles

import (
	"bytes"
	"encoding/xml"
	"slices"
)

// Style defines the visual appearance of the SVG gallery.
// Implementations control how the page, cards and tiles are drawn.
type Style interface {
	// Name returns the identifier used on the command line and in cache keys.
	Name() string
	// RenderDefs writes SVG <defs> and <style> content.
	RenderDefs(buf *bytes.Buffer)
	// RenderBackground writes the page background.
	RenderBackground(buf *bytes.Buffer, w, h float64)
	// RenderHeader writes the summary line above the cards.
	RenderHeader(buf *bytes.Buffer, x, y float64, text string)
	// RenderCard writes a card frame and its label.
	RenderCard(buf *bytes.Buffer, c Card)
	// RenderTile writes a single domino.
	RenderTile(buf *bytes.Buffer, t Tile)
}

// Card contains the data needed to draw a card frame.
type Card struct {
	Index      int
	Label      string
	X, Y, W, H float64
	LabelY     float64 // Baseline of the label text
}

// Tile contains the data needed to draw one domino.
type Tile struct {
	ID         string  // Unique within the document, e.g. "c3-t2"
	X, Y, W, H float64 // Position and dimensions
	Tall       bool    // Upright (vertical) domino
}

// Names lists the available styles.
var Names = []string{"simple", "blueprint"}

// ByName returns the style with the given name.
func ByName(name string) (Style, bool) {
	switch name {
	case "", "simple":
		return Simple{}, true
	case "blueprint":
		return Blueprint{}, true
	}
	return nil, false
}

// Valid reports whether name is a known style.
func Valid(name string) bool {
	return name == "" || slices.Contains(Names, name)
}

// EscapeXML escapes s for use in SVG text and attributes.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
