// Package collector provides a registry for managing metric collectors.
// Collectors are registered at startup; a single CollectAll call runs them
// all and returns their per-category results.
package collector

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Registry manages all registered collectors and runs a one-shot collection.
type Registry struct {
	collectors []Collector
	timeout    time.Duration
	logger     *zap.Logger
}

// NewRegistry creates a new collector registry. The timeout bounds each
// individual collector's read; zero disables the bound.
func NewRegistry(timeout time.Duration, logger *zap.Logger) *Registry {
	return &Registry{
		collectors: make([]Collector, 0),
		timeout:    timeout,
		logger:     logger,
	}
}

// Register adds a collector if it's available on the current platform.
// Unavailable collectors are logged and skipped.
func (r *Registry) Register(c Collector) {
	if c.IsAvailable() {
		r.collectors = append(r.collectors, c)
		r.logger.Debug("Registered collector", zap.String("name", c.Name()))
	} else {
		r.logger.Info("Collector not available, skipping", zap.String("name", c.Name()))
	}
}

// CollectAll runs all registered collectors sequentially and returns one
// Result per collector. Failed collectors are logged and reported with their
// error; they do not prevent the remaining collectors from running.
func (r *Registry) CollectAll(ctx context.Context) []Result {
	results := make([]Result, 0, len(r.collectors))

	for _, c := range r.collectors {
		cctx := ctx
		cancel := func() {}
		if r.timeout > 0 {
			cctx, cancel = context.WithTimeout(ctx, r.timeout)
		}

		start := time.Now()
		data, err := c.Collect(cctx)
		cancel()

		if err != nil {
			r.logger.Warn("Collection failed",
				zap.String("collector", c.Name()),
				zap.Duration("elapsed", time.Since(start)),
				zap.Error(err))
		} else {
			r.logger.Debug("Collected",
				zap.String("collector", c.Name()),
				zap.Duration("elapsed", time.Since(start)))
		}

		results = append(results, Result{Name: c.Name(), Data: data, Err: err})
	}

	return results
}

// Collectors returns a copy of all registered collectors.
func (r *Registry) Collectors() []Collector {
	result := make([]Collector, len(r.collectors))
	copy(result, r.collectors)
	return result
}
