//go:build linux

package collector

import "golang.org/x/sys/unix"

// kernelVersionFallback reads the kernel release directly from uname when the
// gopsutil host read fails.
func kernelVersionFallback() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}
	return unix.ByteSliceToString(uts.Release[:])
}
