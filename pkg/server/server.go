package server

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/htmlnode/internal/errors"
	"github.com/vango-dev/htmlnode/pkg/render"
	"github.com/vango-dev/htmlnode/pkg/site"
	"github.com/vango-dev/htmlnode/pkg/template"
)

// Server serves the pages of a site.
type Server struct {
	config   *Config
	site     *site.Site
	renderer *render.Renderer
	hub      *ReloadHub
	router   atomic.Pointer[chi.Mux]
	logger   *slog.Logger

	// failing is set while browsers show a render error.
	failing atomic.Bool

	httpServer *http.Server
}

// New creates a Server for s. A nil renderer renders without metrics.
func New(s *site.Site, renderer *render.Renderer, config *Config) *Server {
	config = config.withDefaults()

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "server")

	if renderer == nil {
		renderer = render.New(render.WithLogger(logger))
	}

	srv := &Server{
		config:   config,
		site:     s,
		renderer: renderer,
		logger:   logger,
	}
	if config.HotReload {
		srv.hub = NewReloadHub()
	}
	srv.router.Store(srv.routes())

	s.Watch(func(path string) {
		srv.router.Store(srv.routes())
		if srv.hub != nil {
			srv.hub.NotifyReload(path)
		}
	})
	return srv
}

// Hub returns the reload hub, or nil when hot reload is off.
func (s *Server) Hub() *ReloadHub {
	return s.hub
}

// Handler returns the server as an http.Handler for mounting in another
// router.
func (s *Server) Handler() http.Handler {
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.Load().ServeHTTP(w, r)
}

// routes builds a router for the current pages of the site.
func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	if s.config.Metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.config.Metrics, promhttp.HandlerOpts{}))
	}
	if s.hub != nil {
		r.Get("/_reload", s.hub.HandleWebSocket)
	}

	for _, page := range s.site.Pages() {
		r.Get(page.Path, s.pageHandler(page.Path))
	}
	return r
}

func (s *Server) pageHandler(pattern string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := requestContext(r, s.site.Defaults())

		tree, err := s.site.Build(pattern, ctx)
		if err != nil {
			s.fail(w, r, pattern, err)
			return
		}

		html, err := s.renderer.Render(r.Context(), pattern, tree)
		if err != nil {
			s.fail(w, r, pattern, err)
			return
		}
		if s.hub != nil {
			if s.failing.CompareAndSwap(true, false) {
				s.hub.ClearError()
			}
			html = InjectReloadScript(html)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(html))
	}
}

// requestContext turns query values and then route parameters into a
// template context. Query values never replace a site default, so a
// visitor cannot retitle a page. The request path is available as "url".
func requestContext(r *http.Request, defaults template.Context) template.Context {
	ctx := template.Context{}
	for key, values := range r.URL.Query() {
		if _, ok := defaults.Lookup(key); ok || len(values) == 0 {
			continue
		}
		ctx[key] = values[0]
	}
	ctx["url"] = r.URL.Path
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			if key == "*" {
				continue
			}
			ctx[key] = rctx.URLParams.Values[i]
		}
	}
	return ctx
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, pattern string, err error) {
	status := http.StatusInternalServerError
	if errors.CodeOf(err) == errors.CodePageNotFound {
		status = http.StatusNotFound
	}
	s.logger.ErrorContext(r.Context(), "page failed",
		"page", pattern,
		"status", status,
		"error", err,
	)
	if s.hub != nil {
		s.failing.Store(true)
		s.hub.NotifyError(errorText(err))
	}
	http.Error(w, http.StatusText(status), status)
}

// errorText is the one-line form of err shown in browsers.
func errorText(err error) string {
	var he *errors.Error
	if stderrors.As(err, &he) {
		return he.FormatCompact()
	}
	return err.Error()
}

// logRequests logs one line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.DebugContext(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// Run listens on the configured address and serves until ctx is done,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if s.hub != nil {
		s.hub.Close()
	}

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// URL returns the http URL of the configured address.
func (s *Server) URL() string {
	addr := s.config.Address
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}
