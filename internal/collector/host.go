// Host identity collector — gathers hostname, OS identity, kernel version,
// architecture, and CPU topology. Uses gopsutil with platform fallbacks.
package collector

import (
	"context"
	"os"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"

	"github.com/snapsys/snapsys/internal/models"
)

// HostCollector collects machine and OS identity.
type HostCollector struct{}

// NewHostCollector creates a new host identity collector.
func NewHostCollector() *HostCollector {
	return &HostCollector{}
}

// Name returns the collector identifier.
func (c *HostCollector) Name() string { return NameHost }

// Collect gathers host identity. Individual sub-reads (CPU counts, pretty OS
// name) are best-effort; only a total identity failure returns an error.
func (c *HostCollector) Collect(ctx context.Context) (interface{}, error) {
	hi := models.HostInfo{}

	info, err := host.InfoWithContext(ctx)
	if err == nil {
		hi.Hostname = info.Hostname
		hi.OSName = info.Platform
		hi.OSVersion = info.PlatformVersion
		hi.Kernel = info.KernelVersion
		hi.Arch = info.KernelArch
	} else {
		// Fall back to what the process itself can see.
		name, herr := os.Hostname()
		if herr != nil {
			return nil, err
		}
		hi.Hostname = name
		hi.Kernel = kernelVersionFallback()
	}

	hi.FQDN = safeFQDN(hi.Hostname)

	// Prefer the distro/product pretty name when one is published.
	if name, version := prettyOSName(ctx); name != "" {
		hi.OSName = name
		if version != "" {
			hi.OSVersion = version
		}
	}

	if logical, cerr := cpu.CountsWithContext(ctx, true); cerr == nil {
		hi.CPULogical = logical
	}
	if physical, cerr := cpu.CountsWithContext(ctx, false); cerr == nil {
		hi.CPUPhysical = physical
	}

	return hi, nil
}

// IsAvailable returns true — host identity is available on all platforms.
func (c *HostCollector) IsAvailable() bool { return true }

// safeFQDN sanitizes a hostname into something presentable as an FQDN.
// Some resolvers leave reverse-DNS artifacts (*.in-addr.arpa, *.ip6.arpa) in
// the hostname; those are cut back to the short name. No DNS lookup is made.
func safeFQDN(hostname string) string {
	h := strings.ToLower(strings.TrimSpace(hostname))
	if h == "" {
		return hostname
	}
	if strings.HasSuffix(h, ".in-addr.arpa") || strings.HasSuffix(h, ".ip6.arpa") {
		if i := strings.Index(h, "."); i > 0 {
			return h[:i]
		}
	}
	return h
}
