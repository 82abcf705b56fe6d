// Package collector defines the Collector interface and provides
// implementations for each system metric category. A single run of the
// registry produces one immutable snapshot; a failed read degrades that
// category to unavailable and never aborts the run.
package collector

import "context"

// Collector names, used to map registry results onto snapshot fields.
const (
	NameHost    = "host"
	NameCPU     = "cpu"
	NameLoad    = "load"
	NameMemory  = "memory"
	NameSwap    = "swap"
	NameDisk    = "disk"
	NameUptime  = "uptime"
	NameNetwork = "network"
)

// Collector is the interface that all metric collectors must implement.
// Each collector gathers a specific category of system metric.
type Collector interface {
	// Name returns the unique identifier for this collector.
	Name() string

	// Collect gathers the metric data and returns it.
	// The context allows for cancellation and timeout control.
	Collect(ctx context.Context) (interface{}, error)

	// IsAvailable checks if this collector can run on the current platform.
	// Collectors that return false will not be registered.
	IsAvailable() bool
}

// Result holds the output of a single collector run.
type Result struct {
	Name string
	Data interface{}
	Err  error
}
