package collector

import "testing"

const vmStatFixture = `Mach Virtual Memory Statistics: (page size of 16384 bytes)
Pages free:                               31415.
Pages active:                            500000.
Pages inactive:                          200000.
Pages speculative:                        10000.
Pages throttled:                              0.
Pages wired down:                        120000.
Pages purgeable:                           5000.
"Translation faults":                 123456789.
Pages occupied by compressor:             80000.
Pageins:                                9876543.
Pageouts:                                 12345.
Swapins:                                      0.
Swapouts:                                     0.
`

func TestParseVMStat(t *testing.T) {
	vs, err := parseVMStat(vmStatFixture)
	if err != nil {
		t.Fatal(err)
	}

	if vs.PageSize != 16384 {
		t.Errorf("PageSize = %d, want 16384", vs.PageSize)
	}
	if vs.PagesFree != 31415 {
		t.Errorf("PagesFree = %d, want 31415", vs.PagesFree)
	}
	if vs.PagesInactive != 200000 {
		t.Errorf("PagesInactive = %d, want 200000", vs.PagesInactive)
	}
	if vs.PagesSpeculative != 10000 {
		t.Errorf("PagesSpeculative = %d, want 10000", vs.PagesSpeculative)
	}

	want := (uint64(31415) + 200000 + 10000) * 16384
	if got := vs.availableEstimate(); got != want {
		t.Errorf("availableEstimate() = %d, want %d", got, want)
	}
}

func TestParseVMStat_CommaSeparatedValues(t *testing.T) {
	out := `Mach Virtual Memory Statistics: (page size of 4096 bytes)
Pages free:                               1,234.
Pages inactive:                           2,000.
Pages speculative:                          100.
`
	vs, err := parseVMStat(out)
	if err != nil {
		t.Fatal(err)
	}
	if vs.PagesFree != 1234 {
		t.Errorf("PagesFree = %d, want 1234", vs.PagesFree)
	}
}

func TestParseVMStat_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no_page_size", "Mach Virtual Memory Statistics:\nPages free: 10.\n"},
		{"missing_counters", "Mach Virtual Memory Statistics: (page size of 4096 bytes)\nPages free: 10.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseVMStat(tt.input); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}
