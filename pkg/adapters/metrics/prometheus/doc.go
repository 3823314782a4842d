// Package prometheus provides the Prometheus metrics adapter.
//
// Exposes request counts, request latency and prediction counts for
// scraping via the /metrics endpoint.
package prometheus
