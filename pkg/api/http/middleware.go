package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sptm/ml-service/pkg/adapters/metrics/prometheus"
)

const requestIDHeader = "X-Request-ID"

// recoveryMiddleware converts handler panics into the generic JSON 500 body.
// The request dies, the process does not.
func recoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		logger.Error("handler panic",
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered))

		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Internal server error",
			Message: "Something went wrong",
		})
	})
}

// requestIDMiddleware tags every request with an ID, honoring one supplied
// by the caller, and echoes it back in the response.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)

		c.Next()
	}
}

// requestLogger is a middleware for request logging
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		duration := time.Since(start)

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
			zap.String("request_id", c.GetString("request_id")),
			zap.String("client_ip", c.ClientIP()))
	}
}

// metricsMiddleware records request counts and latency.
func metricsMiddleware(collector *prometheus.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// Label by route pattern, falling back to the raw path for 404s.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		collector.RecordRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
