// Package tree renders the decision tree behind the tiling enumeration.
//
// Each node is a remaining width. From width n the enumeration branches
// into V (width n-1) and H (width n-2); a branch reaching 0 completes a
// tiling, a branch reaching -1 overshoots and is discarded. Reading the V/H
// edge labels along a root-to-success path spells out one tiling, and the
// success leaves appear left to right in enumeration order.
//
// The full tree repeats whole subtrees. With [Options.Collapse] the same
// width is drawn once and shared, which is exactly the structure the
// memoized enumerator computes.
package tree

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// MaxWidth bounds the full (non-collapsed) tree. Its node count grows like
// the Fibonacci numbers; width 16 already has several thousand nodes.
const MaxWidth = 16

// Options configures tree rendering.
type Options struct {
	// Collapse draws each width once and shares it between branches.
	Collapse bool
}

// ToDOT returns a Graphviz DOT representation of the decision tree for a
// board of the given width.
//
// Node representation:
//   - Interior widths: ellipse labelled with the remaining width
//   - Completed tilings (width 0): green double circle
//   - Overshoots (width -1): grey dashed box
//
// Widths above [MaxWidth] are clamped when Collapse is false.
func ToDOT(width int, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Tilings {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, style=filled, fillcolor=white];\n")
	buf.WriteString("  edge [fontname=\"SF Mono, Menlo, monospace\", fontsize=12];\n\n")

	if opts.Collapse {
		writeCollapsed(&buf, width)
	} else {
		w := &treeWriter{buf: &buf}
		w.node(min(width, MaxWidth))
	}

	buf.WriteString("}\n")
	return buf.String()
}

type treeWriter struct {
	buf  *bytes.Buffer
	next int
}

// node writes the subtree for width n and returns its node ID.
func (w *treeWriter) node(n int) string {
	id := fmt.Sprintf("n%d", w.next)
	w.next++
	writeNodeAttrs(w.buf, id, n)
	if n <= 0 {
		return id
	}
	v := w.node(n - 1)
	fmt.Fprintf(w.buf, "  %s -> %s [label=\"V\"];\n", id, v)
	h := w.node(n - 2)
	fmt.Fprintf(w.buf, "  %s -> %s [label=\"H\"];\n", id, h)
	return id
}

// writeCollapsed writes one node per width from width down to -1.
func writeCollapsed(buf *bytes.Buffer, width int) {
	if width < 0 {
		writeNodeAttrs(buf, widthID(width), width)
		return
	}
	lo := -1
	if width == 0 {
		lo = 0
	}
	for n := width; n >= lo; n-- {
		writeNodeAttrs(buf, widthID(n), n)
	}
	for n := width; n >= 1; n-- {
		fmt.Fprintf(buf, "  %s -> %s [label=\"V\"];\n", widthID(n), widthID(n-1))
		fmt.Fprintf(buf, "  %s -> %s [label=\"H\"];\n", widthID(n), widthID(n-2))
	}
}

func widthID(n int) string {
	if n < 0 {
		return fmt.Sprintf("w_neg%d", -n)
	}
	return fmt.Sprintf("w%d", n)
}

func writeNodeAttrs(buf *bytes.Buffer, id string, n int) {
	switch {
	case n == 0:
		fmt.Fprintf(buf, "  %s [label=\"0\", shape=doublecircle, fillcolor=\"#bbf7d0\"];\n", id)
	case n < 0:
		fmt.Fprintf(buf, "  %s [label=\"%d\", shape=box, style=\"filled,dashed\", fillcolor=\"#e5e7eb\"];\n", id, n)
	default:
		fmt.Fprintf(buf, "  %s [label=\"%d\", shape=ellipse];\n", id, n)
	}
}

// RenderSVG renders the decision tree as an SVG image.
//
// RenderSVG generates a DOT representation via ToDOT, then uses Graphviz to
// render it. All errors are wrapped with context.
func RenderSVG(ctx context.Context, width int, opts Options) ([]byte, error) {
	return renderDOT(ctx, ToDOT(width, opts), graphviz.SVG)
}

// RenderPNG renders the decision tree as a PNG image.
func RenderPNG(ctx context.Context, width int, opts Options) ([]byte, error) {
	return renderDOT(ctx, ToDOT(width, opts), graphviz.PNG)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
