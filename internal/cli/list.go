package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dominoes/pkg/errors"
	"github.com/matzehuels/dominoes/pkg/gallery"
	"github.com/matzehuels/dominoes/pkg/render"
)

// listOpts holds the command-line flags for the list command.
type listOpts struct {
	format  string
	output  string
	style   string
	columns int
	color   bool
}

// listCommand prints every tiling of one width.
func (c *CLI) listCommand() *cobra.Command {
	opts := listOpts{color: true}

	cmd := &cobra.Command{
		Use:   "list [width]",
		Short: "List every tiling of a 2×N board",
		Long: `List every tiling of a 2×N board as labelled cards.

Tilings are listed in a fixed order: those starting with a vertical domino
first, then those starting with a horizontal pair. Without a width the
configured default is used.`,
		Example: `  dominoes list 4
  dominoes list 6 --format json -o tilings.json
  dominoes list 5 --format dot`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strconv.Itoa(c.Config.Gallery.DefaultWidth)
			if len(args) == 1 {
				input = args[0]
			}
			return c.runList(cmd.Context(), input, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", render.FormatText, "output format: text, json, svg, dot")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.style, "style", "", "SVG style: simple, blueprint")
	cmd.Flags().IntVar(&opts.columns, "columns", 0, "cards per row")
	cmd.Flags().BoolVar(&opts.color, "color", opts.color, "colour terminal cards")

	return cmd
}

func (c *CLI) runList(ctx context.Context, input string, opts listOpts) error {
	logger := loggerFromContext(ctx)

	g, err := c.newGallery(true, false)
	if err != nil {
		return err
	}
	defer g.Close()

	width, err := errors.ParseWidth(input, g.Options().Min, g.Options().Max)
	if err != nil {
		return err
	}
	if opts.style == "" {
		opts.style = c.Config.Render.Style
	}
	if opts.columns == 0 {
		opts.columns = c.Config.Render.Columns
	}

	prog := newProgress(logger)
	art, err := g.Render(ctx, width, gallery.RenderOptions{
		Format:  opts.format,
		Style:   opts.style,
		Columns: opts.columns,
		Color:   opts.color && opts.output == "",
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Listed 2×%d tilings as %s", width, opts.format))

	if err := writeOutput(opts.output, art.Data); err != nil {
		return err
	}
	if opts.output != "" {
		printSuccess("Wrote %s", opts.format)
		printFile(opts.output)
	}
	return nil
}
