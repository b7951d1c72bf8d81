// Package server is the REST proxy front end. It translates simplified
// JSON requests into calls against the remote client or the local
// dispatch registry, and translates typed failures into the structured
// error envelope.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/webwinghq/webwing/internal/logger"
	"github.com/webwinghq/webwing/internal/metrics"
	"github.com/webwinghq/webwing/parallel"
	"github.com/webwinghq/webwing/store"
	"github.com/webwinghq/webwing/types"
)

// Server hosts the REST proxy.
type Server struct {
	cfg      types.AppConfig
	dispatch store.DispatchStore
	log      *logger.Logger
	version  string

	engine     *gin.Engine
	httpServer *http.Server

	// newClient builds the remote client per request; injectable so
	// tests can point it at a fake upstream.
	newClient func() (*parallel.Client, error)

	// waitOpts is the polling budget for blocking waits, derived from
	// configuration; tests shrink it to avoid real sleeps.
	waitOpts parallel.WaitOptions
}

// New creates a Server wired to the given registry. The remote client
// is constructed lazily per request so a missing credential degrades
// to fast configuration errors instead of refusing to start.
func New(cfg types.AppConfig, dispatch store.DispatchStore, log *logger.Logger, version string) *Server {
	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(metrics.Middleware())

	if cfg.Server.EnableCORS {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
		engine.Use(cors.New(corsConfig))
	}

	s := &Server{
		cfg:      cfg,
		dispatch: dispatch,
		log:      log,
		version:  version,
		engine:   engine,
	}
	s.newClient = s.defaultClient

	if cfg.Parallel.PollIntervalSeconds > 0 {
		s.waitOpts.PollInterval = time.Duration(cfg.Parallel.PollIntervalSeconds) * time.Second
	}
	if cfg.Parallel.WaitTimeoutSeconds > 0 {
		s.waitOpts.Timeout = time.Duration(cfg.Parallel.WaitTimeoutSeconds) * time.Second
	}

	s.registerRoutes()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Minute, // task waits can be long
	}
	return s
}

func (s *Server) defaultClient() (*parallel.Client, error) {
	opts := []parallel.Option{}
	if s.cfg.Parallel.BaseURL != "" {
		opts = append(opts, parallel.WithBaseURL(s.cfg.Parallel.BaseURL))
	}
	if s.cfg.Parallel.TimeoutSeconds > 0 {
		opts = append(opts, parallel.WithTimeout(time.Duration(s.cfg.Parallel.TimeoutSeconds)*time.Second))
	}
	return parallel.NewClient(s.cfg.Parallel.APIKey, opts...)
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.log.Info("rest proxy listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("rest proxy: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the engine for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}
