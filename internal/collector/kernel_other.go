//go:build !linux

package collector

// kernelVersionFallback has no cheap uname equivalent off Linux; the kernel
// field stays empty when the gopsutil host read fails.
func kernelVersionFallback() string { return "" }
