// OS pretty-name lookup. gopsutil reports machine-readable identifiers
// ("ubuntu", "darwin"); operators pasting a snapshot into a ticket want the
// published product name. Platform-specific sources:
//   - Linux: /etc/os-release (PRETTY_NAME)
//   - macOS: sw_vers
//   - elsewhere: none, the gopsutil identifiers stand
package collector

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// prettyOSName returns the human-readable OS name and version, or empty
// strings when no richer source than gopsutil exists.
func prettyOSName(ctx context.Context) (name, version string) {
	switch runtime.GOOS {
	case "linux":
		data, err := os.ReadFile("/etc/os-release")
		if err != nil {
			return "", ""
		}
		return osReleaseName(string(data))
	case "darwin":
		return darwinProductName(ctx)
	default:
		return "", ""
	}
}

// osReleaseName extracts the pretty name and version from os-release content.
func osReleaseName(content string) (name, version string) {
	fields := parseKeyValueFile(content)
	if pretty, ok := fields["PRETTY_NAME"]; ok {
		name = strings.Trim(pretty, "\"")
	} else if n, ok := fields["NAME"]; ok {
		name = strings.Trim(n, "\"")
	}
	if v, ok := fields["VERSION_ID"]; ok {
		version = strings.Trim(v, "\"")
	}
	return name, version
}

// darwinProductName uses sw_vers to determine macOS name and version.
func darwinProductName(ctx context.Context) (name, version string) {
	out, err := exec.CommandContext(ctx, "sw_vers", "-productName").Output()
	if err == nil {
		name = strings.TrimSpace(string(out))
	}
	out, err = exec.CommandContext(ctx, "sw_vers", "-productVersion").Output()
	if err == nil {
		version = strings.TrimSpace(string(out))
	}
	return name, version
}

// parseKeyValueFile parses a file with KEY=VALUE lines (like /etc/os-release).
func parseKeyValueFile(content string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			fields[parts[0]] = parts[1]
		}
	}
	return fields
}
