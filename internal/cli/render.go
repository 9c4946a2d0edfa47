package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dominoes/pkg/errors"
	"github.com/matzehuels/dominoes/pkg/gallery"
	"github.com/matzehuels/dominoes/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string
	format  string
	style   string
	columns int
	scale   float64
}

// renderCommand writes the gallery for one width to a file.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <width>",
		Short: "Render the tiling gallery to SVG, PNG, PDF or JSON",
		Long: `Render every tiling of a 2×N board as a gallery of cards.

The format is taken from --format, then from the output file extension,
then from the config file. PNG and PDF output require rsvg-convert
(librsvg) on PATH.`,
		Example: `  dominoes render 5 -o five.svg
  dominoes render 8 -o eight.png --style blueprint --scale 3
  dominoes render 4 --format pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default tilings-<width>.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg, png, pdf, json, text, dot, tree")
	cmd.Flags().StringVar(&opts.style, "style", "", "visual style: simple, blueprint")
	cmd.Flags().IntVar(&opts.columns, "columns", 0, "cards per row")
	cmd.Flags().Float64Var(&opts.scale, "scale", gallery.DefaultPNGScale, "PNG scale factor")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	format, err := resolveFormat(opts.format, opts.output, c.Config.Render.Format)
	if err != nil {
		return err
	}
	if opts.style == "" {
		opts.style = c.Config.Render.Style
	}
	if opts.columns == 0 {
		opts.columns = c.Config.Render.Columns
	}

	g, err := c.newGallery(true, false)
	if err != nil {
		return err
	}
	defer g.Close()

	width, err := errors.ParseWidth(input, g.Options().Min, g.Options().Max)
	if err != nil {
		return err
	}
	output := opts.output
	if output == "" {
		output = defaultOutput("tilings", width, format)
	}

	logger.Debug("rendering", "width", width, "format", format, "style", opts.style, "output", output)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", format))
	spinner.Start()

	art, err := g.Render(ctx, width, gallery.RenderOptions{
		Format:  format,
		Style:   opts.style,
		Columns: opts.columns,
		Scale:   opts.scale,
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if err := writeOutput(output, art.Data); err != nil {
		return err
	}

	printSuccess("Render complete")
	printFile(output)
	printStats(int(countFor(width)), width, art.Cached)
	if format == render.FormatSVG {
		printNewline()
		printNextStep("Browse interactively", fmt.Sprintf("%s browse --width %d", appName, width))
	}
	return nil
}
