package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/snapsys/snapsys/internal/models"
)

// fakeCollector returns canned data or a canned error.
type fakeCollector struct {
	name      string
	data      interface{}
	err       error
	available bool
}

func (f *fakeCollector) Name() string { return f.name }
func (f *fakeCollector) Collect(ctx context.Context) (interface{}, error) {
	return f.data, f.err
}
func (f *fakeCollector) IsAvailable() bool { return f.available }

func fullResults() []Result {
	return []Result{
		{Name: NameHost, Data: models.HostInfo{Hostname: "web1", FQDN: "web1.example.com", OSName: "Ubuntu", OSVersion: "22.04", Kernel: "6.5.0", Arch: "x86_64", CPULogical: 16, CPUPhysical: 8}},
		{Name: NameCPU, Data: models.CPUStats{Percent: 12.5, SampleMS: 500}},
		{Name: NameLoad, Data: models.LoadAverages{Load1: 0.4, Load5: 0.5, Load15: 0.6}},
		{Name: NameMemory, Data: models.MemoryStats{Total: 16 << 30, Used: 8 << 30, Available: 7 << 30, Percent: 50}},
		{Name: NameSwap, Data: models.SwapStats{Total: 2 << 30, Used: 0, Free: 2 << 30, Percent: 0}},
		{Name: NameDisk, Data: []models.DiskInfo{{Mount: "/", Fs: "ext4", Total: 500 << 30, Used: 200 << 30, Free: 300 << 30, Percent: 40}}},
		{Name: NameUptime, Data: 90 * time.Minute},
		{Name: NameNetwork, Data: models.NetworkStats{SampleSeconds: 1, RxBytes: 1 << 30, TxBytes: 1 << 20}},
	}
}

func TestBuildSnapshot_AllAvailable(t *testing.T) {
	snap := BuildSnapshot(time.Now(), fullResults())

	if !snap.Host.Available() || snap.Host.Value.Hostname != "web1" {
		t.Errorf("Host = %+v, want available web1", snap.Host)
	}
	if !snap.CPU.Available() || snap.CPU.Value.Percent != 12.5 {
		t.Errorf("CPU = %+v, want available 12.5%%", snap.CPU)
	}
	if !snap.Load.Available() || !snap.Memory.Available() || !snap.Swap.Available() {
		t.Error("expected load, memory, and swap to be available")
	}
	if !snap.Disk.Available() || len(snap.Disk.Value) != 1 {
		t.Errorf("Disk = %+v, want one mount", snap.Disk)
	}
	if !snap.Uptime.Available() || snap.Uptime.Value != 90*time.Minute {
		t.Errorf("Uptime = %+v, want 90m", snap.Uptime)
	}
	if !snap.Network.Available() {
		t.Errorf("Network = %+v, want available", snap.Network)
	}
}

func TestBuildSnapshot_FailedCategoryDegrades(t *testing.T) {
	results := fullResults()
	for i := range results {
		if results[i].Name == NameNetwork {
			results[i] = Result{Name: NameNetwork, Err: errors.New("permission denied")}
		}
	}

	snap := BuildSnapshot(time.Now(), results)

	if snap.Network.Available() {
		t.Fatal("network should be unavailable")
	}
	if snap.Network.Reason != "permission denied" {
		t.Errorf("Network.Reason = %q, want the read error", snap.Network.Reason)
	}
	// Every other category is untouched by the failure.
	if !snap.Host.Available() || !snap.CPU.Available() || !snap.Memory.Available() ||
		!snap.Disk.Available() || !snap.Uptime.Available() {
		t.Error("a single failed category must not degrade the others")
	}
}

func TestBuildSnapshot_MissingCategoryIsUnavailable(t *testing.T) {
	snap := BuildSnapshot(time.Now(), nil)

	if snap.Load.Available() {
		t.Fatal("load should be unavailable with no results")
	}
	if snap.Load.Reason != reasonUnsupported {
		t.Errorf("Load.Reason = %q, want %q", snap.Load.Reason, reasonUnsupported)
	}
}

func TestBuildSnapshot_WrongDataShape(t *testing.T) {
	snap := BuildSnapshot(time.Now(), []Result{{Name: NameCPU, Data: "not cpu stats"}})

	if snap.CPU.Available() {
		t.Fatal("mistyped data must not become an available metric")
	}
}

func TestRegistry_FailureDoesNotAbortRun(t *testing.T) {
	reg := NewRegistry(time.Second, zap.NewNop())
	reg.Register(&fakeCollector{name: "a", data: 1, available: true})
	reg.Register(&fakeCollector{name: "b", err: errors.New("boom"), available: true})
	reg.Register(&fakeCollector{name: "c", data: 3, available: true})

	results := reg.CollectAll(context.Background())

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Error("healthy collectors must succeed despite a failing sibling")
	}
	if results[1].Err == nil {
		t.Error("failing collector must report its error")
	}
}

func TestRegistry_SkipsUnavailableCollectors(t *testing.T) {
	reg := NewRegistry(0, zap.NewNop())
	reg.Register(&fakeCollector{name: "a", data: 1, available: true})
	reg.Register(&fakeCollector{name: "b", data: 2, available: false})

	if got := len(reg.Collectors()); got != 1 {
		t.Errorf("registered %d collectors, want 1", got)
	}
}

func TestRegistry_SequentialOrder(t *testing.T) {
	reg := NewRegistry(0, zap.NewNop())
	for _, name := range []string{"one", "two", "three"} {
		reg.Register(&fakeCollector{name: name, data: name, available: true})
	}

	results := reg.CollectAll(context.Background())

	want := []string{"one", "two", "three"}
	for i, res := range results {
		if res.Name != want[i] {
			t.Errorf("results[%d] = %q, want %q", i, res.Name, want[i])
		}
	}
}
