//go:build darwin

package collector

import (
	"context"
	"os/exec"
)

// availabilityEstimate runs vm_stat (no privileges required) and derives an
// available-memory estimate from its page counters.
func availabilityEstimate(ctx context.Context) (uint64, bool) {
	out, err := exec.CommandContext(ctx, "vm_stat").Output()
	if err != nil {
		return 0, false
	}
	vs, err := parseVMStat(string(out))
	if err != nil {
		return 0, false
	}
	return vs.availableEstimate(), true
}
