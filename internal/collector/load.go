// Load average collector — gathers the 1/5/15-minute load averages.
// Uses gopsutil; not available on Windows, which has no native load concept.
package collector

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v3/load"

	"github.com/snapsys/snapsys/internal/models"
)

// LoadCollector collects load averages.
type LoadCollector struct{}

// NewLoadCollector creates a new load average collector.
func NewLoadCollector() *LoadCollector {
	return &LoadCollector{}
}

// Name returns the collector identifier.
func (c *LoadCollector) Name() string { return NameLoad }

// Collect gathers the 1/5/15-minute load averages.
func (c *LoadCollector) Collect(ctx context.Context) (interface{}, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return nil, err
	}
	return models.LoadAverages{
		Load1:  avg.Load1,
		Load5:  avg.Load5,
		Load15: avg.Load15,
	}, nil
}

// IsAvailable returns false on Windows; no synthetic load value is invented
// for platforms without the concept.
func (c *LoadCollector) IsAvailable() bool { return runtime.GOOS != "windows" }
