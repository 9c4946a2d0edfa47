package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	g := NoopGalleryHooks{}
	g.OnGenerateStart(ctx, 4)
	g.OnGenerateComplete(ctx, 4, 5, time.Millisecond, nil)
	g.OnRenderStart(ctx, "svg", 4)
	g.OnRenderComplete(ctx, "svg", 4, 2048, time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/api/tilings/4")
	h.OnResponse(ctx, "GET", "/api/tilings/4", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Gallery().(NoopGalleryHooks); !ok {
		t.Error("Gallery() should return NoopGalleryHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customGallery := &testGalleryHooks{}
	SetGalleryHooks(customGallery)
	if Gallery() != customGallery {
		t.Error("SetGalleryHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Gallery().(NoopGalleryHooks); !ok {
		t.Error("Reset() should restore NoopGalleryHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testGalleryHooks{}
	SetGalleryHooks(custom)
	SetGalleryHooks(nil)
	if Gallery() != custom {
		t.Error("SetGalleryHooks(nil) should keep the existing hooks")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	g := &testGalleryHooks{}
	SetGalleryHooks(g)

	Gallery().OnGenerateStart(context.Background(), 6)
	Gallery().OnGenerateComplete(context.Background(), 6, 13, time.Millisecond, nil)

	if g.starts != 1 || g.completes != 1 {
		t.Errorf("starts=%d completes=%d, want 1 and 1", g.starts, g.completes)
	}
	if g.lastCount != 13 {
		t.Errorf("lastCount = %d, want 13", g.lastCount)
	}
}

type testGalleryHooks struct {
	NoopGalleryHooks
	starts    int
	completes int
	lastCount int
}

func (h *testGalleryHooks) OnGenerateStart(context.Context, int) { h.starts++ }
func (h *testGalleryHooks) OnGenerateComplete(_ context.Context, _ int, count int, _ time.Duration, _ error) {
	h.completes++
	h.lastCount = count
}

type testCacheHooks struct{ NoopCacheHooks }

type testHTTPHooks struct{ NoopHTTPHooks }
