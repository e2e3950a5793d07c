// Package metrics exposes Prometheus collectors for the cat generation flow
// and the handler that serves them.
package metrics
