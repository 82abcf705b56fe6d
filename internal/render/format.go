// Human-readable value formatting shared by the text renderer.
package render

import (
	"fmt"
	"time"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// Bytes formats a byte count with 1024 divisors: "512 B", "9.94 GB".
func Bytes(n uint64) string {
	x := float64(n)
	i := 0
	for x >= 1024 && i < len(byteUnits)-1 {
		x /= 1024.0
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d %s", n, byteUnits[i])
	}
	return fmt.Sprintf("%.2f %s", x, byteUnits[i])
}

var rateUnits = []string{"B/s", "KiB/s", "MiB/s", "GiB/s"}

// Rate formats a bytes-per-second rate: "840 B/s", "1.25 MiB/s".
// Negative rates (wrapped counters) render as zero.
func Rate(bps float64) string {
	x := bps
	if x < 0 {
		x = 0
	}
	i := 0
	for x >= 1024.0 && i < len(rateUnits)-1 {
		x /= 1024.0
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%.0f %s", x, rateUnits[i])
	}
	return fmt.Sprintf("%.2f %s", x, rateUnits[i])
}

// Uptime formats a duration since boot: "3d 4h 12m", "2h 5m", "4m 30s".
func Uptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := int64(d.Seconds())
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm %ds", mins, secs)
}

// Percent formats a percentage with one decimal, clamping negatives to zero.
func Percent(p float64) string {
	if p < 0 {
		p = 0
	}
	return fmt.Sprintf("%.1f%%", p)
}
