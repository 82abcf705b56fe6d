package render

import (
	"testing"
	"time"
)

func TestBytes(t *testing.T) {
	tests := []struct {
		input    uint64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{10 << 20, "10.00 MB"},
		{16 << 30, "16.00 GB"},
		{3 << 40, "3.00 TB"},
		{2 << 50, "2.00 PB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := Bytes(tt.input); got != tt.expected {
				t.Errorf("Bytes(%d) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "0 B/s"},
		{840, "840 B/s"},
		{1024, "1.00 KiB/s"},
		{1.25 * 1024 * 1024, "1.25 MiB/s"},
		{2 * 1024 * 1024 * 1024, "2.00 GiB/s"},
		{-100, "0 B/s"}, // wrapped counters never render negative
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := Rate(tt.input); got != tt.expected {
				t.Errorf("Rate(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestUptime(t *testing.T) {
	tests := []struct {
		input    time.Duration
		expected string
	}{
		{30 * time.Second, "0m 30s"},
		{4*time.Minute + 30*time.Second, "4m 30s"},
		{2*time.Hour + 5*time.Minute, "2h 5m"},
		{3*24*time.Hour + 4*time.Hour + 12*time.Minute, "3d 4h 12m"},
		{-time.Minute, "0m 0s"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := Uptime(tt.input); got != tt.expected {
				t.Errorf("Uptime(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(12.34); got != "12.3%" {
		t.Errorf("Percent(12.34) = %q, want 12.3%%", got)
	}
	if got := Percent(0); got != "0.0%" {
		t.Errorf("Percent(0) = %q, want 0.0%%", got)
	}
	if got := Percent(-5); got != "0.0%" {
		t.Errorf("Percent(-5) = %q, want clamped 0.0%%", got)
	}
}
