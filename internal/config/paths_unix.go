//go:build linux || darwin

package config

import (
	"os"
	"path/filepath"
)

func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	return []string{
		filepath.Join(home, ".config", "snapsys", "config.yaml"),
		filepath.Join(home, ".snapsys.yaml"),
		"/etc/snapsys/config.yaml",
	}
}
