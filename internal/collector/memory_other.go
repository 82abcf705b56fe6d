//go:build !darwin

package collector

import "context"

// availabilityEstimate only has a vm_stat source on macOS.
func availabilityEstimate(ctx context.Context) (uint64, bool) {
	return 0, false
}
