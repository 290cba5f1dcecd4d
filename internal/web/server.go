// Package web serves the portfolio page and its HTMX fragments over gin.
package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vforvitorio/portfolio/internal/content"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	Store       *content.Store
	Logger      *zap.Logger
	Metrics     *Metrics // nil disables /metrics
	ServiceName string
	Version     string
	ToggleRate  float64
	ToggleBurst int
	// TrustedProxies lists the proxy addresses or CIDRs whose forwarding
	// headers are believed. Empty trusts none and uses the peer address.
	TrustedProxies []string
	// WatchContent reloads the store's content file while serving.
	WatchContent bool
}

// Server is the portfolio HTTP server.
type Server struct {
	store    *content.Store
	logger   *zap.Logger
	metrics  *Metrics
	renderer *Renderer
	hasher   *clientHasher
	limiter  *rateLimiter
	engine   *gin.Engine
	opts     Options
}

// NewServer builds the router and its collaborators from opts.
func NewServer(opts Options) (*Server, error) {
	if opts.Store == nil {
		return nil, errors.New("content store is required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.ToggleRate <= 0 {
		opts.ToggleRate = 5
	}
	if opts.ToggleBurst < 1 {
		opts.ToggleBurst = 20
	}

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	hasher, err := newClientHasher()
	if err != nil {
		return nil, err
	}

	s := &Server{
		store:    opts.Store,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		renderer: renderer,
		hasher:   hasher,
		limiter:  newRateLimiter(opts.ToggleRate, opts.ToggleBurst),
		opts:     opts,
	}
	engine, err := s.routes()
	if err != nil {
		return nil, err
	}
	s.engine = engine
	return s, nil
}

func (s *Server) routes() (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(s.opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(gin.Recovery(), requestID(), accessLog(s.logger, s.hasher, s.metrics))
	r.SetHTMLTemplate(s.renderer.Template())

	r.StaticFS("/static", http.FS(StaticFiles()))

	r.GET("/", s.home)
	r.GET("/nav", s.nav)
	r.GET("/projects", s.projects)
	r.POST("/projects/toggle", s.limitRate(), s.toggleProject)
	r.GET("/healthz", s.health)

	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})))
	}
	return r, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: s.engine,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.opts.WatchContent {
		eg.Go(func() error {
			return s.store.Watch(egctx)
		})
	}

	eg.Go(func() error {
		s.logger.Info("portfolio listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
