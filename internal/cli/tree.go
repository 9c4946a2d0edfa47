package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dominoes/pkg/errors"
	"github.com/matzehuels/dominoes/pkg/gallery"
	"github.com/matzehuels/dominoes/pkg/render"
	"github.com/matzehuels/dominoes/pkg/render/tree"
)

// treeOpts holds the command-line flags for the tree command.
type treeOpts struct {
	output   string
	dot      bool
	collapse bool
}

// treeCommand draws the recursion that produces the tilings.
func (c *CLI) treeCommand() *cobra.Command {
	var opts treeOpts

	cmd := &cobra.Command{
		Use:   "tree <width>",
		Short: "Draw the recursion tree of the enumeration",
		Long: `Draw the recursion tree of the enumeration for a 2×N board.

Each node is a remaining width. A vertical domino steps down by one, a
horizontal pair by two. Leaves at width 0 are complete tilings; leaves at
-1 are placements that overshoot the board. With --collapse each width
appears once, which shows how the memo shares work.

The tree is rendered to SVG with Graphviz, to PNG when the output ends in
.png, or printed as DOT with --dot.`,
		Example: `  dominoes tree 4
  dominoes tree 6 --collapse -o memo.svg
  dominoes tree 5 -o tree.png
  dominoes tree 5 --dot | dot -Tsvg > tree.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTree(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default tree-<width>.svg; stdout with --dot)")
	cmd.Flags().BoolVar(&opts.dot, "dot", false, "write Graphviz DOT instead of SVG")
	cmd.Flags().BoolVar(&opts.collapse, "collapse", false, "draw each width once")

	return cmd
}

func (c *CLI) runTree(ctx context.Context, input string, opts treeOpts) error {
	g, err := c.newGallery(true, false)
	if err != nil {
		return err
	}
	defer g.Close()

	width, err := errors.ParseWidth(input, g.Options().Min, g.Options().Max)
	if err != nil {
		return err
	}
	if !opts.collapse && width > tree.MaxWidth {
		printWarning("Full tree clamped to width %d", tree.MaxWidth)
	}

	format := treeFormat(opts)
	art, err := g.Render(ctx, width, gallery.RenderOptions{Format: format, Collapse: opts.collapse})
	if err != nil {
		return fmt.Errorf("tree: %w", err)
	}

	output := opts.output
	if output == "" && !opts.dot {
		output = defaultOutput("tree", width, format)
	}
	if err := writeOutput(output, art.Data); err != nil {
		return err
	}
	if output != "" {
		printSuccess("Tree complete")
		printFile(output)
	}
	return nil
}

// treeFormat picks DOT for --dot, otherwise PNG or SVG by output extension.
func treeFormat(opts treeOpts) string {
	switch {
	case opts.dot:
		return render.FormatDOT
	case formatFromPath(opts.output) == render.FormatPNG:
		return render.FormatTreePNG
	}
	return render.FormatTree
}
