// CPU usage collector — gathers overall and per-core CPU utilization.
// Uses gopsutil for cross-platform CPU metrics.
package collector

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/snapsys/snapsys/internal/models"
)

// CPUCollector collects CPU utilization sampled over a short window.
type CPUCollector struct {
	sample time.Duration
}

// NewCPUCollector creates a CPU collector with the given sampling window.
func NewCPUCollector(sample time.Duration) *CPUCollector {
	if sample <= 0 {
		sample = 500 * time.Millisecond
	}
	return &CPUCollector{sample: sample}
}

// Name returns the collector identifier.
func (c *CPUCollector) Name() string { return NameCPU }

// Collect gathers CPU usage data (overall percentage and per-core).
// The overall measurement blocks for the sampling window to compute an
// accurate percentage.
func (c *CPUCollector) Collect(ctx context.Context) (interface{}, error) {
	overall, err := cpu.PercentWithContext(ctx, c.sample, false)
	if err != nil {
		return nil, err
	}

	// Per-core usage (instantaneous snapshot)
	cores, err := cpu.PercentWithContext(ctx, 0, true)
	if err != nil {
		// Non-fatal: return overall only
		cores = nil
	}

	result := models.CPUStats{
		PerCore:  cores,
		SampleMS: c.sample.Milliseconds(),
	}
	if len(overall) > 0 {
		result.Percent = clampPercent(overall[0])
	}
	for i := range result.PerCore {
		result.PerCore[i] = clampPercent(result.PerCore[i])
	}

	return result, nil
}

// IsAvailable returns true — CPU metrics are available on all platforms.
func (c *CPUCollector) IsAvailable() bool { return true }

// clampPercent bounds a utilization reading to [0, 100]. Counter wraparound
// between samples can otherwise produce values just outside the range.
func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
