// Package http provides the HTTP REST API implementation.
//
// The HTTP server exposes endpoints for:
//   - ETA prediction (placeholder)
//   - Service status
//   - Health checks
//   - Prometheus metrics
package http
