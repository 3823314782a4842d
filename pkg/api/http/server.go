package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sptm/ml-service/internal/predictor"
	"github.com/sptm/ml-service/pkg/adapters/metrics/prometheus"
)

// Server represents the HTTP API server
type Server struct {
	router    *gin.Engine
	server    *http.Server
	predictor *predictor.Predictor
	metrics   *prometheus.Collector
	env       string
	logger    *zap.Logger
}

// Config holds HTTP server configuration
type Config struct {
	Addr      string
	Debug     bool
	Env       string
	Predictor *predictor.Predictor
	Metrics   *prometheus.Collector
	Logger    *zap.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *Config) *Server {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	// Trailing-slash variants must fall through to the 404 envelope,
	// not redirect to their slash-trimmed sibling.
	router.RedirectTrailingSlash = false
	router.Use(recoveryMiddleware(cfg.Logger))
	router.Use(requestIDMiddleware())
	router.Use(requestLogger(cfg.Logger))
	router.Use(metricsMiddleware(cfg.Metrics))

	s := &Server{
		router:    router,
		predictor: cfg.Predictor,
		metrics:   cfg.Metrics,
		env:       cfg.Env,
		logger:    cfg.Logger,
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	return s
}

// setupRoutes configures API routes
func (s *Server) setupRoutes() {
	// Health checks. /ping carries the richer body, /health the short one;
	// both are kept because existing monitors probe both.
	s.router.GET("/ping", s.handlePing)
	s.router.GET("/health", s.handleHealth)

	// Legacy prediction endpoint, pre-dating the /api/v1 prefix.
	s.router.POST("/predict-eta", s.handlePredictEta)

	// Metrics
	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/eta", s.handleCalculateEta)
		v1.GET("/status", s.handleStatus)
	}

	// Any unmatched route gets the JSON not-found envelope.
	s.router.NoRoute(s.handleNotFound)
}

// Handler exposes the router, mainly for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server shut down complete")
	return nil
}
