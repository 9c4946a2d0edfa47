package gallery

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dominoes/pkg/cache"
	"github.com/matzehuels/dominoes/pkg/errors"
	"github.com/matzehuels/dominoes/pkg/render"
	"github.com/matzehuels/dominoes/pkg/render/styles"
	"github.com/matzehuels/dominoes/pkg/tiling"
)

// Options bounds and paces generation.
type Options struct {
	Min     int           // Smallest accepted width
	Max     int           // Largest accepted width
	Default int           // Width restored by Reset
	Delay   time.Duration // Cosmetic pause before interactive generation
}

// DefaultOptions returns the reference bounds: widths 1..10, default 4,
// and a 100ms delay.
func DefaultOptions() Options {
	return Options{
		Min:     errors.MinWidth,
		Max:     errors.MaxWidth,
		Default: errors.DefaultWidth,
		Delay:   100 * time.Millisecond,
	}
}

// Validate checks that the bounds are consistent.
func (o Options) Validate() error {
	if o.Min < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "min width %d is negative", o.Min)
	}
	if o.Min > o.Max {
		return errors.New(errors.ErrCodeInvalidConfig, "min width %d exceeds max width %d", o.Min, o.Max)
	}
	if o.Default < o.Min || o.Default > o.Max {
		return errors.New(errors.ErrCodeInvalidConfig, "default width %d outside %d..%d", o.Default, o.Min, o.Max)
	}
	if o.Delay < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "delay %s is negative", o.Delay)
	}
	return nil
}

// RenderOptions selects an artifact.
type RenderOptions struct {
	Format   string  // One of render.Formats
	Style    string  // SVG style name; empty means "simple"
	Columns  int     // Cards per row for svg, png, pdf and text; 0 uses the renderer default
	Collapse bool    // Share repeated widths in tree and dot output
	Color    bool    // ANSI colours in text output
	Scale    float64 // PNG scale factor; 0 uses DefaultPNGScale
}

// DefaultPNGScale is the rasterization scale used when none is given.
const DefaultPNGScale = 2.0

// Validate checks format and style names.
func (o RenderOptions) Validate() error {
	if err := errors.ValidateFormat(o.Format, render.Formats); err != nil {
		return err
	}
	if !styles.Valid(o.Style) {
		return errors.ValidateStyle(o.Style, styles.Names)
	}
	return nil
}

// keyOpts keeps only the fields that affect the chosen format's bytes, so
// equivalent requests share a cache entry.
func (o RenderOptions) keyOpts() cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: o.Format}
	switch o.Format {
	case render.FormatSVG, render.FormatPDF:
		k.Style, k.Columns = styleName(o.Style), o.Columns
	case render.FormatPNG:
		k.Style, k.Columns, k.Scale = styleName(o.Style), o.Columns, o.scale()
	case render.FormatText:
		k.Columns, k.Color = o.Columns, o.Color
	case render.FormatDOT, render.FormatTree, render.FormatTreePNG:
		k.Collapse = o.Collapse
	}
	return k
}

func (o RenderOptions) scale() float64 {
	if o.Scale <= 0 {
		return DefaultPNGScale
	}
	return o.Scale
}

func styleName(s string) string {
	if s == "" {
		return styles.Names[0]
	}
	return s
}

// Option configures a Gallery.
type Option func(*Gallery)

// WithLogger sets the logger. The default is log.Default().
func WithLogger(l *log.Logger) Option {
	return func(g *Gallery) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithCache sets the artifact cache. The default is a MemoryCache.
func WithCache(c cache.Cache) Option {
	return func(g *Gallery) {
		if c != nil {
			g.cache = c
		}
	}
}

// WithKeyer sets the artifact key builder.
func WithKeyer(k cache.Keyer) Option {
	return func(g *Gallery) {
		if k != nil {
			g.keyer = k
		}
	}
}

// WithEnumerator sets the tiling enumerator. The default is the
// process-wide tiling.Default().
func WithEnumerator(e *tiling.Enumerator) Option {
	return func(g *Gallery) {
		if e != nil {
			g.enum = e
		}
	}
}
