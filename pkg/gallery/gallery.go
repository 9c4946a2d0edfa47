package gallery

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/matzehuels/dominoes/pkg/cache"
	"github.com/matzehuels/dominoes/pkg/errors"
	"github.com/matzehuels/dominoes/pkg/observability"
	"github.com/matzehuels/dominoes/pkg/render"
	"github.com/matzehuels/dominoes/pkg/tiling"
)

// ErrBusy is returned by Generate while another interactive run is in
// progress. Callers should leave the running request alone and retry later.
var ErrBusy = errors.New(errors.ErrCodeBusy, "generation already in progress")

// Result is one completed generation.
type Result struct {
	ID       string        // Unique per run, for log correlation
	Width    int           // Board width
	Count    int           // Number of tilings, equal to len(Cards)
	Cards    []render.Card // One labelled card per tiling, in enumeration order
	Duration time.Duration // Time spent enumerating and laying out
}

// Summary returns the headline for the result, e.g. "5 tilings of a 2×4 board".
func (r *Result) Summary() string {
	return render.Summary(r.Width, r.Count)
}

// Gallery drives generation for a single front end.
//
// Generate and Reset mutate per-gallery state (current width, last result)
// and enforce one interactive run at a time. Build and Render are safe for
// concurrent use and leave that state alone.
type Gallery struct {
	opts   Options
	enum   *tiling.Enumerator
	cache  cache.Cache
	keyer  cache.Keyer
	logger *log.Logger
	flight singleflight.Group

	busy atomic.Bool

	mu    sync.Mutex
	width int
	last  *Result
}

// New creates a Gallery. It returns an INVALID_CONFIG error when the
// options are inconsistent.
func New(opts Options, options ...Option) (*Gallery, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	g := &Gallery{
		opts:   opts,
		enum:   tiling.Default(),
		cache:  cache.NewMemoryCache(cache.DefaultCapacity),
		keyer:  cache.NewDefaultKeyer(),
		logger: log.Default(),
		width:  opts.Default,
	}
	for _, o := range options {
		o(g)
	}
	return g, nil
}

// Options returns the gallery's bounds and pacing.
func (g *Gallery) Options() Options { return g.opts }

// Generate parses input as a width, waits the configured delay and
// enumerates the tilings. Invalid input yields an INVALID_WIDTH error whose
// message names the accepted range; a concurrent call yields [ErrBusy].
// Cancelling ctx during the delay abandons the run without touching state.
func (g *Gallery) Generate(ctx context.Context, input string) (*Result, error) {
	n, err := errors.ParseWidth(input, g.opts.Min, g.opts.Max)
	if err != nil {
		return nil, err
	}
	if !g.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer g.busy.Store(false)

	hooks := observability.Gallery()
	hooks.OnGenerateStart(ctx, n)
	start := time.Now()

	if err := g.wait(ctx); err != nil {
		hooks.OnGenerateComplete(ctx, n, 0, time.Since(start), err)
		return nil, err
	}

	res, err := g.Build(ctx, n)
	if err != nil {
		hooks.OnGenerateComplete(ctx, n, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnGenerateComplete(ctx, n, res.Count, time.Since(start), nil)

	g.mu.Lock()
	g.width = n
	g.last = res
	g.mu.Unlock()

	g.logger.Info("generated tilings",
		"id", res.ID,
		"width", n,
		"count", res.Count,
		"duration", res.Duration)
	return res, nil
}

func (g *Gallery) wait(ctx context.Context) error {
	if g.opts.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(g.opts.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Build enumerates the tilings of width n and lays them out as cards.
// Unlike Generate it has no delay, no busy guard and does not record the
// result, so servers may call it from many goroutines.
func (g *Gallery) Build(ctx context.Context, n int) (*Result, error) {
	if err := errors.ValidateWidth(n, g.opts.Min, g.opts.Max); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	ts := g.enum.Enumerate(n)
	cards := render.NewCards(ts)
	res := &Result{
		ID:       uuid.NewString(),
		Width:    n,
		Count:    len(cards),
		Cards:    cards,
		Duration: time.Since(start),
	}

	st := g.enum.Stats()
	g.logger.Debug("enumerated",
		"width", n,
		"count", res.Count,
		"memo_entries", st.Entries,
		"memo_hits", st.Hits,
		"memo_misses", st.Misses)
	return res, nil
}

// Reset restores the default width and forgets the last result. The
// enumerator memo and artifact cache are kept.
func (g *Gallery) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.width = g.opts.Default
	g.last = nil
}

// Width returns the width of the last successful Generate, or the default
// width after New or Reset.
func (g *Gallery) Width() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.width
}

// Last returns the most recent Generate result, or nil.
func (g *Gallery) Last() *Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.last
}

// Busy reports whether a Generate call is in progress.
func (g *Gallery) Busy() bool { return g.busy.Load() }

// Stats returns the enumerator's memo statistics.
func (g *Gallery) Stats() tiling.Stats { return g.enum.Stats() }

// Close releases the artifact cache.
func (g *Gallery) Close() error { return g.cache.Close() }
