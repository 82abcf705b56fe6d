// vm_stat output parsing. The parser is platform-independent so it can be
// tested anywhere; only the invocation (memory_darwin.go) is macOS-specific.
package collector

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// vmStat holds the page counters needed for the availability estimate.
type vmStat struct {
	PageSize         uint64
	PagesFree        uint64
	PagesInactive    uint64
	PagesSpeculative uint64
}

// availableEstimate approximates available memory as
// (free + inactive + speculative) * page size.
func (v *vmStat) availableEstimate() uint64 {
	return (v.PagesFree + v.PagesInactive + v.PagesSpeculative) * v.PageSize
}

var vmStatPageSizeRe = regexp.MustCompile(`page size of (\d+) bytes`)

// parseVMStat parses `vm_stat` output. The header carries the page size:
//
//	Mach Virtual Memory Statistics: (page size of 16384 bytes)
//
// followed by counter lines like:
//
//	Pages free:                               12345.
func parseVMStat(out string) (*vmStat, error) {
	lines := strings.Split(out, "\n")
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty vm_stat output")
	}

	m := vmStatPageSizeRe.FindStringSubmatch(lines[0])
	if m == nil {
		return nil, fmt.Errorf("vm_stat header missing page size: %q", lines[0])
	}
	pageSize, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing vm_stat page size: %w", err)
	}

	values := make(map[string]uint64)
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		v = strings.TrimSuffix(strings.TrimSpace(v), ".")
		v = strings.ReplaceAll(v, ",", "")
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			continue
		}
		values[strings.TrimSpace(k)] = n
	}

	free, okFree := values["Pages free"]
	inactive, okInactive := values["Pages inactive"]
	speculative, okSpeculative := values["Pages speculative"]
	if !okFree || !okInactive || !okSpeculative {
		return nil, fmt.Errorf("vm_stat output missing page counters")
	}

	return &vmStat{
		PageSize:         pageSize,
		PagesFree:        free,
		PagesInactive:    inactive,
		PagesSpeculative: speculative,
	}, nil
}
