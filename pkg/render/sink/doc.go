// Package sink writes gallery cards to concrete output formats.
//
// Each renderer takes the board width and the cards produced by
// [render.NewCards] and returns the encoded document:
//
//   - [RenderSVG]: a self-contained SVG page, one card per tiling
//   - [RenderJSON]: the cards with their tiles and cell grid
//   - [RenderText]: bordered cards for the terminal, drawn with lipgloss
//
// Renderers are configured with functional options and never modify the
// cards they are given.
package sink
