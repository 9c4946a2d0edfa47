// Package render turns enumerated tilings into visual outputs.
//
// # Overview
//
// Rendering works on [Card]s: one card per tiling, carrying its 1-based
// index, its "Tiling #k" label and its [board.Layout]. [NewCards] builds
// them from an enumeration result.
//
// Output formats live in subpackages:
//
//   - [sink]: text cards for the terminal, an SVG gallery, and JSON
//   - [tree]: the V/H decision tree of the enumeration as Graphviz DOT or SVG
//   - [styles]: colour schemes used by the SVG gallery
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert a rendered SVG gallery to other
// formats using the external rsvg-convert tool (from librsvg).
//
//	svg := sink.RenderSVG(width, cards, sink.WithStyle(styles.Blueprint{}))
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
package render
