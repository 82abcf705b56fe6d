// Package render turns a snapshot into operator-facing text. Render is pure
// and deterministic: the same snapshot always produces the same output, and
// unavailable categories are marked explicitly rather than omitted, so a
// reader can tell "zero" from "could not read".
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/snapsys/snapsys/internal/analysis"
	"github.com/snapsys/snapsys/internal/models"
)

// UnavailableMarker prefixes every category that could not be read.
const UnavailableMarker = "unavailable"

// Render produces the labeled plain-text report for a snapshot.
func Render(snap *models.Snapshot) string {
	var b strings.Builder

	writeLine(&b, "Taken", snap.TakenAt.UTC().Format(time.RFC3339))
	renderHost(&b, snap)
	renderUptime(&b, snap)
	renderCPU(&b, snap)
	renderLoad(&b, snap)
	renderMemory(&b, snap)
	renderSwap(&b, snap)
	renderDisk(&b, snap)
	renderNetwork(&b, snap)

	return b.String()
}

// writeLine emits one "Label:   value" line with aligned values.
func writeLine(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-8s %s\n", label+":", value)
}

// writeUnavailable emits the explicit marker for a category that could not be read.
func writeUnavailable(b *strings.Builder, label, reason string) {
	writeLine(b, label, fmt.Sprintf("%s (%s)", UnavailableMarker, reason))
}

func renderHost(b *strings.Builder, snap *models.Snapshot) {
	if !snap.Host.Available() {
		writeUnavailable(b, "Host", snap.Host.Reason)
		return
	}
	h := snap.Host.Value

	hostLine := h.Hostname
	if h.FQDN != "" && h.FQDN != h.Hostname {
		hostLine = fmt.Sprintf("%s (%s)", h.Hostname, h.FQDN)
	}
	writeLine(b, "Host", hostLine)

	osLine := strings.TrimSpace(fmt.Sprintf("%s %s", h.OSName, h.OSVersion))
	if h.Arch != "" {
		osLine = fmt.Sprintf("%s (%s)", osLine, h.Arch)
	}
	writeLine(b, "OS", osLine)

	if h.Kernel != "" {
		writeLine(b, "Kernel", h.Kernel)
	}

	if h.CPULogical > 0 {
		smt := analysis.SMTStatus(analysis.CPUCapacity{Logical: h.CPULogical, Physical: h.CPUPhysical})
		physical := "?"
		if h.CPUPhysical > 0 {
			physical = fmt.Sprintf("%d", h.CPUPhysical)
		}
		writeLine(b, "Cores", fmt.Sprintf("%s physical / %d logical (SMT %s)", physical, h.CPULogical, smt))
	}
}

func renderUptime(b *strings.Builder, snap *models.Snapshot) {
	if !snap.Uptime.Available() {
		writeUnavailable(b, "Uptime", snap.Uptime.Reason)
		return
	}
	writeLine(b, "Uptime", Uptime(snap.Uptime.Value))
}

func renderCPU(b *strings.Builder, snap *models.Snapshot) {
	if !snap.CPU.Available() {
		writeUnavailable(b, "CPU", snap.CPU.Reason)
		return
	}
	c := snap.CPU.Value

	line := fmt.Sprintf("%s (sampled %dms)", Percent(c.Percent), c.SampleMS)
	line += fmt.Sprintf("  health=%s", healthFor(snap))
	writeLine(b, "CPU", line)
}

// healthFor classifies CPU health, preferring normalized load when both the
// load averages and the CPU topology were readable.
func healthFor(snap *models.Snapshot) string {
	cpuPercent := snap.CPU.Value.Percent

	if snap.Load.Available() && snap.Host.Available() {
		if frac, ok := analysis.NormalizeLoad(snap.Load.Value.Load1, snap.Host.Value.CPULogical); ok {
			return analysis.HealthLabel(cpuPercent, frac, true)
		}
	}
	return analysis.HealthLabel(cpuPercent, 0, false)
}

func renderLoad(b *strings.Builder, snap *models.Snapshot) {
	if !snap.Load.Available() {
		writeUnavailable(b, "Load", snap.Load.Reason)
		return
	}
	l := snap.Load.Value

	line := fmt.Sprintf("%.2f %.2f %.2f", l.Load1, l.Load5, l.Load15)
	if snap.Host.Available() {
		if frac, ok := analysis.NormalizeLoad(l.Load1, snap.Host.Value.CPULogical); ok {
			line += fmt.Sprintf("  (1m norm %.0f%%)", clampNonNegative(frac*100))
		}
	}
	writeLine(b, "Load", line)
}

func renderMemory(b *strings.Builder, snap *models.Snapshot) {
	if !snap.Memory.Available() {
		writeUnavailable(b, "Memory", snap.Memory.Reason)
		return
	}
	m := snap.Memory.Value
	writeLine(b, "Memory", fmt.Sprintf("%s used=%s avail=%s total=%s",
		Percent(m.Percent), Bytes(m.Used), Bytes(m.Available), Bytes(m.Total)))
}

func renderSwap(b *strings.Builder, snap *models.Snapshot) {
	if !snap.Swap.Available() {
		writeUnavailable(b, "Swap", snap.Swap.Reason)
		return
	}
	s := snap.Swap.Value
	writeLine(b, "Swap", fmt.Sprintf("%s used=%s free=%s total=%s",
		Percent(s.Percent), Bytes(s.Used), Bytes(s.Free), Bytes(s.Total)))
}

func renderDisk(b *strings.Builder, snap *models.Snapshot) {
	if !snap.Disk.Available() {
		writeUnavailable(b, "Disk", snap.Disk.Reason)
		return
	}
	disks := snap.Disk.Value
	if len(disks) == 0 {
		writeLine(b, "Disk", "no eligible mounts")
		return
	}

	writeLine(b, "Disk", "")
	for _, d := range disks {
		fs := ""
		if d.Fs != "" {
			fs = fmt.Sprintf(" (%s)", d.Fs)
		}
		fmt.Fprintf(b, "  %-20s %s used=%s free=%s total=%s%s\n",
			d.Mount, Percent(d.Percent), Bytes(d.Used), Bytes(d.Free), Bytes(d.Total), fs)
	}
}

func renderNetwork(b *strings.Builder, snap *models.Snapshot) {
	if !snap.Network.Available() {
		writeUnavailable(b, "Network", snap.Network.Reason)
		return
	}
	n := snap.Network.Value

	writeLine(b, "Network", fmt.Sprintf("rx=%s tx=%s rx_total=%s tx_total=%s (%.1fs sample)",
		Rate(n.RxRate), Rate(n.TxRate), Bytes(n.RxBytes), Bytes(n.TxBytes), n.SampleSeconds))

	for _, iface := range n.Interfaces {
		state := "down"
		if iface.Up {
			state = "up"
		}
		fmt.Fprintf(b, "  %-12s %-4s rx=%s tx=%s\n", iface.Name, state, Rate(iface.RxRate), Rate(iface.TxRate))
	}
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
