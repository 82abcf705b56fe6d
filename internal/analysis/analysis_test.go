package analysis

import (
	"math"
	"testing"
)

func TestSMTStatus(t *testing.T) {
	tests := []struct {
		name     string
		logical  int
		physical int
		expected string
	}{
		{"hyperthreaded", 16, 8, "on"},
		{"no_smt", 8, 8, "off"},
		{"unknown_physical", 8, 0, "unknown"},
		{"unknown_logical", 0, 4, "unknown"},
		{"physical_exceeds_logical", 4, 8, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SMTStatus(CPUCapacity{Logical: tt.logical, Physical: tt.physical})
			if got != tt.expected {
				t.Errorf("SMTStatus(%d/%d) = %q, want %q", tt.logical, tt.physical, got, tt.expected)
			}
		})
	}
}

func TestNormalizeLoad(t *testing.T) {
	got, ok := NormalizeLoad(3.0, 6)
	if !ok {
		t.Fatal("expected a normalized fraction")
	}
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("NormalizeLoad(3, 6) = %v, want 0.5", got)
	}

	if _, ok := NormalizeLoad(3.0, 0); ok {
		t.Error("expected no fraction for zero CPUs")
	}
}

func TestHealthLabel_FromLoad(t *testing.T) {
	tests := []struct {
		loadFrac float64
		expected string
	}{
		{0.0, HealthOK},
		{0.59, HealthOK},
		{0.60, HealthBusy},
		{0.89, HealthBusy},
		{0.90, HealthSaturated},
		{1.09, HealthSaturated},
		{1.10, HealthOverloaded},
		{5.0, HealthOverloaded},
	}

	for _, tt := range tests {
		// CPU percent is deliberately contradictory to prove load wins.
		got := HealthLabel(99.0, tt.loadFrac, true)
		if got != tt.expected {
			t.Errorf("HealthLabel(_, %v, true) = %q, want %q", tt.loadFrac, got, tt.expected)
		}
	}
}

func TestHealthLabel_FromCPUPercent(t *testing.T) {
	tests := []struct {
		percent  float64
		expected string
	}{
		{0.0, HealthOK},
		{59.9, HealthOK},
		{60.0, HealthBusy},
		{84.9, HealthBusy},
		{85.0, HealthSaturated},
		{94.9, HealthSaturated},
		{95.0, HealthOverloaded},
		{100.0, HealthOverloaded},
	}

	for _, tt := range tests {
		got := HealthLabel(tt.percent, 0, false)
		if got != tt.expected {
			t.Errorf("HealthLabel(%v, _, false) = %q, want %q", tt.percent, got, tt.expected)
		}
	}
}
