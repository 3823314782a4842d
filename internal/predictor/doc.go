// Package predictor provides the ETA prediction component.
//
// The current implementation is a placeholder that returns a constant
// estimate; it exists so the HTTP API and its clients are stable while the
// actual model runtime is built.
package predictor
