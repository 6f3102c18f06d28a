// Package config provides the global configuration directory for docwright.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the docwright configuration directory.
//
// Resolution:
//   - $DOCWRIGHT_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/docwright if set (respects XDG on any platform)
//   - %AppData%/docwright on Windows
//   - ~/.config/docwright on macOS and Linux
func Dir() string {
	if dir := os.Getenv("DOCWRIGHT_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "docwright")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "docwright")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "docwright")
}
