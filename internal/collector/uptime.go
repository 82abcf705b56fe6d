// System uptime collector — gathers time since last boot.
// Uses gopsutil for cross-platform uptime metrics.
package collector

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v3/host"
)

// UptimeCollector collects system uptime.
type UptimeCollector struct{}

// NewUptimeCollector creates a new uptime collector.
func NewUptimeCollector() *UptimeCollector {
	return &UptimeCollector{}
}

// Name returns the collector identifier.
func (c *UptimeCollector) Name() string { return NameUptime }

// Collect gathers the time elapsed since boot.
func (c *UptimeCollector) Collect(ctx context.Context) (interface{}, error) {
	uptime, err := host.UptimeWithContext(ctx)
	if err != nil {
		return nil, err
	}
	return time.Duration(uptime) * time.Second, nil
}

// IsAvailable returns true — uptime is available on all platforms.
func (c *UptimeCollector) IsAvailable() bool { return true }
