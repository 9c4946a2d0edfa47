package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/dominoes/pkg/observability"
)

// logHooks reports gallery, cache and HTTP events through a logger. The
// request ID set by chi's RequestID middleware is attached when present.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.GalleryHooks = logHooks{}
	_ observability.CacheHooks   = logHooks{}
	_ observability.HTTPHooks    = logHooks{}
)

// registerLogHooks installs logHooks for every event category.
func registerLogHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetGalleryHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

func (h logHooks) with(ctx context.Context) *log.Logger {
	if id := middleware.GetReqID(ctx); id != "" {
		return h.logger.With("req", id)
	}
	return h.logger
}

func (h logHooks) OnGenerateStart(ctx context.Context, width int) {
	h.with(ctx).Debug("generate start", "width", width)
}

func (h logHooks) OnGenerateComplete(ctx context.Context, width, count int, d time.Duration, err error) {
	if err != nil {
		h.with(ctx).Warn("generate failed", "width", width, "error", err)
		return
	}
	h.with(ctx).Debug("generate complete", "width", width, "count", count, "duration", d)
}

func (h logHooks) OnRenderStart(ctx context.Context, format string, width int) {
	h.with(ctx).Debug("render start", "format", format, "width", width)
}

func (h logHooks) OnRenderComplete(ctx context.Context, format string, width, size int, d time.Duration, err error) {
	if err != nil {
		h.with(ctx).Error("render failed", "format", format, "width", width, "error", err)
		return
	}
	h.with(ctx).Debug("render complete", "format", format, "width", width, "bytes", size, "duration", d)
}

func (h logHooks) OnCacheHit(ctx context.Context, key string) {
	h.with(ctx).Debug("cache hit", "key", shortKey(key))
}

func (h logHooks) OnCacheMiss(ctx context.Context, key string) {
	h.with(ctx).Debug("cache miss", "key", shortKey(key))
}

func (h logHooks) OnCacheSet(ctx context.Context, key string, size int) {
	h.with(ctx).Debug("cache set", "key", shortKey(key), "bytes", size)
}

func (h logHooks) OnRequest(ctx context.Context, method, path string) {
	h.with(ctx).Debug("request", "method", method, "path", path)
}

func (h logHooks) OnResponse(ctx context.Context, method, path string, status int, d time.Duration) {
	l := h.with(ctx)
	if status >= 500 {
		l.Error("response", "method", method, "path", path, "status", status, "duration", d)
		return
	}
	l.Info("response", "method", method, "path", path, "status", status, "duration", d.Round(time.Microsecond))
}

// shortKey trims "artifact:<sha256>" to a readable prefix.
func shortKey(key string) string {
	const n = len("artifact:") + 12
	if len(key) > n {
		return key[:n]
	}
	return key
}
