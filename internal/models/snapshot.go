// Package models defines the snapshot data structures produced by a single
// collection run. A Snapshot is written once by the collector and read once
// by the renderer; nothing mutates it afterwards.
package models

import (
	"encoding/json"
	"time"
)

// Metric wraps a single metric category as either a value or an explicit
// unavailability reason. A zero value with an empty Reason means the read
// succeeded and really returned zero — "unavailable" is never encoded as a
// sentinel value.
type Metric[T any] struct {
	Value  T
	Reason string // empty when the read succeeded
}

// Ok returns a Metric holding a successfully read value.
func Ok[T any](v T) Metric[T] {
	return Metric[T]{Value: v}
}

// Unavailable returns a Metric marked unreadable for the given reason.
func Unavailable[T any](reason string) Metric[T] {
	if reason == "" {
		reason = "unknown error"
	}
	return Metric[T]{Reason: reason}
}

// Available reports whether the metric was read successfully.
func (m Metric[T]) Available() bool { return m.Reason == "" }

// MarshalJSON encodes an available metric as its value and an unavailable
// one as {"unavailable": "<reason>"} so JSON consumers can make the same
// zero-vs-missing distinction the text renderer does.
func (m Metric[T]) MarshalJSON() ([]byte, error) {
	if !m.Available() {
		return json.Marshal(struct {
			Unavailable string `json:"unavailable"`
		}{m.Reason})
	}
	return json.Marshal(m.Value)
}

// Snapshot is a single point-in-time collection of all system metrics.
// Every category is independently optional: a failed read degrades that one
// field to unavailable and never invalidates the rest.
type Snapshot struct {
	TakenAt time.Time             `json:"taken_at"`
	Host    Metric[HostInfo]      `json:"host"`
	CPU     Metric[CPUStats]      `json:"cpu"`
	Load    Metric[LoadAverages]  `json:"load"`
	Memory  Metric[MemoryStats]   `json:"memory"`
	Swap    Metric[SwapStats]     `json:"swap"`
	Disk    Metric[[]DiskInfo]    `json:"disk"`
	Uptime  Metric[time.Duration] `json:"uptime_ns"`
	Network Metric[NetworkStats]  `json:"network"`
}

// HostInfo identifies the machine and operating system.
type HostInfo struct {
	Hostname    string `json:"hostname"`
	FQDN        string `json:"fqdn"`
	OSName      string `json:"os_name"`    // e.g., "Ubuntu 22.04.4 LTS", "macOS"
	OSVersion   string `json:"os_version"` // e.g., "22.04", "14.2.1"
	Kernel      string `json:"kernel"`     // e.g., "6.5.0-28-generic"
	Arch        string `json:"arch"`       // e.g., "x86_64", "arm64"
	CPULogical  int    `json:"cpu_logical"`
	CPUPhysical int    `json:"cpu_physical"` // 0 when the platform can't report it
}

// CPUStats holds utilization sampled over a short window.
type CPUStats struct {
	Percent  float64   `json:"percent"`
	PerCore  []float64 `json:"per_core,omitempty"`
	SampleMS int64     `json:"sample_ms"`
}

// LoadAverages holds the 1/5/15-minute load averages.
type LoadAverages struct {
	Load1  float64 `json:"load1"`
	Load5  float64 `json:"load5"`
	Load15 float64 `json:"load15"`
}

// MemoryStats holds virtual memory usage in bytes.
type MemoryStats struct {
	Total     uint64  `json:"total"`
	Used      uint64  `json:"used"`
	Available uint64  `json:"available"`
	Percent   float64 `json:"percent"`
}

// SwapStats holds swap usage in bytes.
type SwapStats struct {
	Total   uint64  `json:"total"`
	Used    uint64  `json:"used"`
	Free    uint64  `json:"free"`
	Percent float64 `json:"percent"`
}

// DiskInfo represents usage for a single mounted volume.
type DiskInfo struct {
	Mount   string  `json:"mount"`
	Fs      string  `json:"fs,omitempty"`
	Total   uint64  `json:"total"`
	Used    uint64  `json:"used"`
	Free    uint64  `json:"free"`
	Percent float64 `json:"percent"`
}

// InterfaceStats holds one interface's counters and sampled rates.
type InterfaceStats struct {
	Name    string  `json:"name"`
	Up      bool    `json:"up"`
	RxRate  float64 `json:"rx_bps"` // bytes per second over the sample window
	TxRate  float64 `json:"tx_bps"`
	RxBytes uint64  `json:"rx_bytes"` // cumulative since boot
	TxBytes uint64  `json:"tx_bytes"`
}

// NetworkStats holds total and per-interface throughput. Rates come from
// sampling the counters twice; totals include only interfaces that are up.
type NetworkStats struct {
	SampleSeconds float64          `json:"sample_seconds"`
	RxRate        float64          `json:"rx_bps"`
	TxRate        float64          `json:"tx_bps"`
	RxBytes       uint64           `json:"rx_bytes"`
	TxBytes       uint64           `json:"tx_bytes"`
	Interfaces    []InterfaceStats `json:"interfaces,omitempty"`
}
