package cli

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dominoes/pkg/buildinfo"
	"github.com/matzehuels/dominoes/pkg/errors"
	"github.com/matzehuels/dominoes/pkg/gallery"
	"github.com/matzehuels/dominoes/pkg/observability"
	"github.com/matzehuels/dominoes/pkg/render"
	"github.com/matzehuels/dominoes/pkg/tiling"
)

const (
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 5 * time.Second
)

// serveCommand runs the HTTP gallery.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tiling gallery over HTTP",
		Long: `Serve the tiling gallery over HTTP.

Routes:
  GET /                    redirect to the default gallery
  GET /healthz             liveness check
  GET /api/tilings/{n}     gallery as JSON
  GET /api/count/{n}       tiling count as JSON
  GET /tilings/{n}.{ext}   gallery as svg, png, pdf, json, txt or dot
  GET /tree/{n}.{ext}      recursion tree as svg, png or dot

Gallery routes accept ?style=, ?columns= and ?collapse=true. Rendered
artifacts are cached in memory for the life of the process.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default "+defaultAddr+")")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	g, err := c.newGallery(false, false)
	if err != nil {
		return err
	}
	defer g.Close()

	registerLogHooks(c.Logger)
	defer observability.Reset()

	srv := &http.Server{
		Addr:              addr,
		Handler:           newServer(g, c.Config.Render, c.Logger).routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr, "version", buildinfo.Version)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return ctx.Err()
}

// server holds the HTTP handlers for one gallery.
type server struct {
	gallery  *gallery.Gallery
	defaults RenderConfig
	logger   *log.Logger
}

func newServer(g *gallery.Gallery, defaults RenderConfig, logger *log.Logger) *server {
	return &server{gallery: g, defaults: defaults, logger: logger}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.SetHeader("Server", buildinfo.UserAgent()))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, fmt.Sprintf("/tilings/%d.svg", s.gallery.Options().Default), http.StatusFound)
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/tilings/{n}", s.handleTilingsJSON)
		r.Get("/count/{n}", s.handleCount)
	})
	r.Get("/tilings/{file}", s.handleGallery)
	r.Get("/tree/{file}", s.handleTree)

	return r
}

// observe reports each request to the HTTP hooks.
func (s *server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		start := time.Now()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
	})
}

func (s *server) handleTilingsJSON(w http.ResponseWriter, r *http.Request) {
	s.serveArtifact(w, r, chi.URLParam(r, "n"), render.FormatJSON)
}

func (s *server) handleCount(w http.ResponseWriter, r *http.Request) {
	n, err := parseCountWidth(chi.URLParam(r, "n"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"width": n,
		"count": tiling.Count(n).String(),
	})
}

func (s *server) handleGallery(w http.ResponseWriter, r *http.Request) {
	n, ext, ok := strings.Cut(chi.URLParam(r, "file"), ".")
	if !ok {
		ext = render.FormatSVG
	}
	format := formatFromPath("x." + ext)
	if format == "" {
		s.writeError(w, errors.New(errors.ErrCodeInvalidFormat, "unsupported extension %q", ext))
		return
	}
	s.serveArtifact(w, r, n, format)
}

func (s *server) handleTree(w http.ResponseWriter, r *http.Request) {
	n, ext, ok := strings.Cut(chi.URLParam(r, "file"), ".")
	format := render.FormatTree
	switch {
	case !ok || ext == "svg":
	case ext == "dot" || ext == "gv":
		format = render.FormatDOT
	case ext == "png":
		format = render.FormatTreePNG
	default:
		s.writeError(w, errors.New(errors.ErrCodeInvalidFormat, "tree supports svg, png and dot, not %q", ext))
		return
	}
	s.serveArtifact(w, r, n, format)
}

func (s *server) serveArtifact(w http.ResponseWriter, r *http.Request, input, format string) {
	opts := s.gallery.Options()
	n, err := errors.ParseWidth(input, opts.Min, opts.Max)
	if err != nil {
		s.writeError(w, err)
		return
	}
	ro, err := s.renderOptions(r, format)
	if err != nil {
		s.writeError(w, err)
		return
	}

	art, err := s.gallery.Render(r.Context(), n, ro)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", art.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if art.Cached {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(art.Data)
}

func (s *server) renderOptions(r *http.Request, format string) (gallery.RenderOptions, error) {
	q := r.URL.Query()
	ro := gallery.RenderOptions{
		Format:  format,
		Style:   s.defaults.Style,
		Columns: s.defaults.Columns,
	}
	if v := q.Get("style"); v != "" {
		ro.Style = v
	}
	if v := q.Get("columns"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return ro, errors.New(errors.ErrCodeInvalidInput, "columns must be a positive integer")
		}
		ro.Columns = n
	}
	if v := q.Get("collapse"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return ro, errors.New(errors.ErrCodeInvalidInput, "collapse must be true or false")
		}
		ro.Collapse = b
	}
	return ro, nil
}

// errorResponse is the JSON body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= 500 {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	})
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeBusy):
		return http.StatusServiceUnavailable
	case errors.Is(err, errors.ErrCodeUnsupported):
		return http.StatusNotImplemented
	case stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}
