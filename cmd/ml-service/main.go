package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sptm/ml-service/internal/config"
	"github.com/sptm/ml-service/internal/predictor"
	"github.com/sptm/ml-service/pkg/adapters/metrics/prometheus"
	"github.com/sptm/ml-service/pkg/api/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.Debug())
	defer logger.Sync()

	logger.Info("starting SPTM ML Service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("environment", cfg.Environment))

	// Initialize adapters
	metricsCollector := prometheus.NewCollector()

	// Initialize the prediction component. Today it only serves placeholder
	// estimates; model loading will hang off this constructor once models exist.
	pred := predictor.New(logger)

	// Initialize API server
	httpServer := http.NewServer(&http.Config{
		Addr:      cfg.Addr(),
		Debug:     cfg.Debug(),
		Env:       cfg.Environment,
		Predictor: pred,
		Metrics:   metricsCollector,
		Logger:    logger,
	})

	// Start server
	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	logger.Info("SPTM ML Service started",
		zap.String("addr", cfg.Addr()),
		zap.String("health_check", fmt.Sprintf("http://localhost:%d/ping", cfg.Port)))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("SPTM ML Service shut down complete")
}

// initLogger initializes the logger. Debug mode uses the human-readable
// development encoder; otherwise production JSON with ISO-8601 timestamps.
func initLogger(debug bool) *zap.Logger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	logger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
