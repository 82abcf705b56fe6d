// Network I/O collector — samples interface counters twice to produce
// per-second RX/TX rates alongside the cumulative byte counters.
// Uses gopsutil for cross-platform network metrics.
package collector

import (
	"context"
	"sort"
	"time"

	"github.com/shirou/gopsutil/v3/net"

	"github.com/snapsys/snapsys/internal/models"
)

// NetworkCollector collects network throughput metrics.
type NetworkCollector struct {
	sample time.Duration
}

// NewNetworkCollector creates a network collector with the given sampling window.
func NewNetworkCollector(sample time.Duration) *NetworkCollector {
	if sample <= 0 {
		sample = time.Second
	}
	return &NetworkCollector{sample: sample}
}

// Name returns the collector identifier.
func (c *NetworkCollector) Name() string { return NameNetwork }

// Collect reads per-interface counters, waits out the sampling window, reads
// them again, and reports per-second rates plus cumulative totals. Rate
// totals include only interfaces that are up; that keeps down-but-counted
// interfaces from muddying the headline numbers.
func (c *NetworkCollector) Collect(ctx context.Context) (interface{}, error) {
	first, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, err
	}

	upByName := make(map[string]bool)
	if ifaces, ierr := net.InterfacesWithContext(ctx); ierr == nil {
		for _, iface := range ifaces {
			for _, flag := range iface.Flags {
				if flag == "up" {
					upByName[iface.Name] = true
					break
				}
			}
		}
	}

	select {
	case <-time.After(c.sample):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	second, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, err
	}

	firstByName := make(map[string]net.IOCountersStat, len(first))
	for _, s := range first {
		firstByName[s.Name] = s
	}

	seconds := c.sample.Seconds()
	result := models.NetworkStats{SampleSeconds: seconds}

	for _, s2 := range second {
		result.RxBytes += s2.BytesRecv
		result.TxBytes += s2.BytesSent

		s1, ok := firstByName[s2.Name]
		if !ok {
			continue // interface appeared mid-sample
		}

		iface := models.InterfaceStats{
			Name:    s2.Name,
			Up:      upByName[s2.Name],
			RxRate:  counterRate(s2.BytesRecv, s1.BytesRecv, seconds),
			TxRate:  counterRate(s2.BytesSent, s1.BytesSent, seconds),
			RxBytes: s2.BytesRecv,
			TxBytes: s2.BytesSent,
		}
		result.Interfaces = append(result.Interfaces, iface)

		if iface.Up {
			result.RxRate += iface.RxRate
			result.TxRate += iface.TxRate
		}
	}

	// Up interfaces first, then by traffic, then by name.
	sort.Slice(result.Interfaces, func(i, j int) bool {
		a, b := result.Interfaces[i], result.Interfaces[j]
		if a.Up != b.Up {
			return a.Up
		}
		at, bt := a.RxRate+a.TxRate, b.RxRate+b.TxRate
		if at != bt {
			return at > bt
		}
		return a.Name < b.Name
	})

	return result, nil
}

// IsAvailable returns true — network counters are available on all platforms.
func (c *NetworkCollector) IsAvailable() bool { return true }

// counterRate converts a counter delta into a per-second rate, treating a
// wrapped (decreasing) counter as zero.
func counterRate(now, before uint64, seconds float64) float64 {
	if now < before || seconds <= 0 {
		return 0
	}
	return float64(now-before) / seconds
}
