package gallery

import (
	"context"
	"time"

	"github.com/matzehuels/dominoes/pkg/cache"
	"github.com/matzehuels/dominoes/pkg/errors"
	"github.com/matzehuels/dominoes/pkg/observability"
	"github.com/matzehuels/dominoes/pkg/render"
	"github.com/matzehuels/dominoes/pkg/render/sink"
	"github.com/matzehuels/dominoes/pkg/render/styles"
	"github.com/matzehuels/dominoes/pkg/render/tree"
)

// Artifact is a rendered gallery in one format.
type Artifact struct {
	Format      string
	ContentType string
	Data        []byte
	Cached      bool // Served from the artifact cache
}

// Render produces the artifact for width n. Results are cached by width
// and the options that affect the output; concurrent requests for the
// same artifact share one render.
func (g *Gallery) Render(ctx context.Context, n int, opts RenderOptions) (*Artifact, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := errors.ValidateWidth(n, g.opts.Min, g.opts.Max); err != nil {
		return nil, err
	}

	hooks := observability.Gallery()
	cacheHooks := observability.Cache()
	hooks.OnRenderStart(ctx, opts.Format, n)
	start := time.Now()

	key := g.keyer.ArtifactKey(n, opts.keyOpts())
	if data, hit, err := g.cache.Get(ctx, key); err == nil && hit {
		cacheHooks.OnCacheHit(ctx, key)
		hooks.OnRenderComplete(ctx, opts.Format, n, len(data), time.Since(start), nil)
		return g.artifact(opts.Format, data, true), nil
	}
	cacheHooks.OnCacheMiss(ctx, key)

	// Callers share the result, so one caller's cancellation must not fail the rest.
	flightCtx := context.WithoutCancel(ctx)
	v, err, shared := g.flight.Do(key, func() (any, error) {
		data, err := g.produce(flightCtx, n, opts)
		if err != nil {
			return nil, err
		}
		if err := g.cache.Set(flightCtx, key, data, cache.TTLArtifact); err != nil {
			g.logger.Warn("cache set failed", "key", key, "error", err)
		} else {
			cacheHooks.OnCacheSet(flightCtx, key, len(data))
		}
		return data, nil
	})
	if err != nil {
		hooks.OnRenderComplete(ctx, opts.Format, n, 0, time.Since(start), err)
		return nil, err
	}
	data := v.([]byte)
	hooks.OnRenderComplete(ctx, opts.Format, n, len(data), time.Since(start), nil)

	g.logger.Debug("rendered",
		"format", opts.Format,
		"width", n,
		"bytes", len(data),
		"shared", shared,
		"duration", time.Since(start))
	return g.artifact(opts.Format, data, false), nil
}

func (g *Gallery) artifact(format string, data []byte, cached bool) *Artifact {
	return &Artifact{
		Format:      format,
		ContentType: render.ContentType(format),
		Data:        data,
		Cached:      cached,
	}
}

func (g *Gallery) produce(ctx context.Context, n int, opts RenderOptions) ([]byte, error) {
	switch opts.Format {
	case render.FormatDOT:
		return []byte(tree.ToDOT(n, tree.Options{Collapse: opts.Collapse})), nil
	case render.FormatTree:
		return tree.RenderSVG(ctx, n, tree.Options{Collapse: opts.Collapse})
	case render.FormatTreePNG:
		return tree.RenderPNG(ctx, n, tree.Options{Collapse: opts.Collapse})
	}

	res, err := g.Build(ctx, n)
	if err != nil {
		return nil, err
	}

	switch opts.Format {
	case render.FormatText:
		return []byte(sink.RenderText(n, res.Cards,
			sink.WithTextColumns(opts.Columns),
			sink.WithTextColor(opts.Color))), nil
	case render.FormatJSON:
		return sink.RenderJSON(n, res.Cards,
			sink.WithJSONStyle(styleName(opts.Style)),
			sink.WithJSONIndent())
	case render.FormatSVG, render.FormatPNG, render.FormatPDF:
		style, _ := styles.ByName(opts.Style)
		svg := sink.RenderSVG(n, res.Cards,
			sink.WithStyle(style),
			sink.WithColumns(opts.Columns))
		switch opts.Format {
		case render.FormatPNG:
			return render.ToPNG(svg, opts.scale())
		case render.FormatPDF:
			return render.ToPDF(svg)
		}
		return svg, nil
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "format %q has no renderer", opts.Format)
}
