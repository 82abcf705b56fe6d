// Snapshot assembly — maps registry results onto the typed snapshot record.
package collector

import (
	"time"

	"github.com/snapsys/snapsys/internal/models"
)

// reasonUnsupported marks categories that never produced a result, either
// because the platform has no collector for them or one was not registered.
const reasonUnsupported = "not supported on this platform"

// BuildSnapshot converts collector results into a Snapshot. Every category
// starts out unavailable; each result either fills its field or records the
// read error as that field's unavailability reason.
func BuildSnapshot(takenAt time.Time, results []Result) *models.Snapshot {
	snap := &models.Snapshot{
		TakenAt: takenAt,
		Host:    models.Unavailable[models.HostInfo](reasonUnsupported),
		CPU:     models.Unavailable[models.CPUStats](reasonUnsupported),
		Load:    models.Unavailable[models.LoadAverages](reasonUnsupported),
		Memory:  models.Unavailable[models.MemoryStats](reasonUnsupported),
		Swap:    models.Unavailable[models.SwapStats](reasonUnsupported),
		Disk:    models.Unavailable[[]models.DiskInfo](reasonUnsupported),
		Uptime:  models.Unavailable[time.Duration](reasonUnsupported),
		Network: models.Unavailable[models.NetworkStats](reasonUnsupported),
	}

	for _, res := range results {
		switch res.Name {
		case NameHost:
			snap.Host = metricFrom[models.HostInfo](res)
		case NameCPU:
			snap.CPU = metricFrom[models.CPUStats](res)
		case NameLoad:
			snap.Load = metricFrom[models.LoadAverages](res)
		case NameMemory:
			snap.Memory = metricFrom[models.MemoryStats](res)
		case NameSwap:
			snap.Swap = metricFrom[models.SwapStats](res)
		case NameDisk:
			snap.Disk = metricFrom[[]models.DiskInfo](res)
		case NameUptime:
			snap.Uptime = metricFrom[time.Duration](res)
		case NameNetwork:
			snap.Network = metricFrom[models.NetworkStats](res)
		}
	}

	return snap
}

// metricFrom wraps a single result as a tagged metric value.
func metricFrom[T any](res Result) models.Metric[T] {
	if res.Err != nil {
		return models.Unavailable[T](res.Err.Error())
	}
	v, ok := res.Data.(T)
	if !ok {
		return models.Unavailable[T]("unexpected data shape")
	}
	return models.Ok(v)
}
