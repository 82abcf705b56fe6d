// Package analysis derives operator-facing labels from raw CPU readings:
// SMT status, normalized load, and a coarse health classification.
package analysis

// CPUCapacity holds the logical and physical core counts of a machine.
// Physical is zero when the platform cannot report it.
type CPUCapacity struct {
	Logical  int
	Physical int
}

// SMTStatus returns "on", "off", or "unknown" based on logical vs physical
// core counts.
func SMTStatus(c CPUCapacity) string {
	if c.Physical <= 0 || c.Logical <= 0 {
		return "unknown"
	}
	if c.Logical > c.Physical {
		return "on"
	}
	if c.Logical == c.Physical {
		return "off"
	}
	return "unknown"
}

// NormalizeLoad converts a load average (runnable tasks) into a rough
// utilization fraction of capacity. Example: load1=3 on a 6-logical-CPU
// machine yields 0.50. The second return is false when no fraction can be
// computed.
func NormalizeLoad(load1 float64, logicalCPUs int) (float64, bool) {
	if logicalCPUs <= 0 {
		return 0, false
	}
	return load1 / float64(logicalCPUs), true
}

// Health labels, ordered from idle to saturated.
const (
	HealthOK         = "OK"
	HealthBusy       = "BUSY"
	HealthSaturated  = "SATURATED"
	HealthOverloaded = "OVERLOADED"
)

// HealthLabel classifies CPU health. Normalized load is the better signal
// when present (a fraction near 1.0 means run-queue saturation); without it,
// the raw CPU percentage is used with looser thresholds.
func HealthLabel(cpuPercent float64, loadFrac float64, haveLoad bool) string {
	if haveLoad {
		switch {
		case loadFrac < 0.60:
			return HealthOK
		case loadFrac < 0.90:
			return HealthBusy
		case loadFrac < 1.10:
			return HealthSaturated
		default:
			return HealthOverloaded
		}
	}

	switch {
	case cpuPercent < 60.0:
		return HealthOK
	case cpuPercent < 85.0:
		return HealthBusy
	case cpuPercent < 95.0:
		return HealthSaturated
	default:
		return HealthOverloaded
	}
}
