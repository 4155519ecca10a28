package config

import (
	"os"
	"path/filepath"
	"strings"
)

// GetHome returns SUSHITEST_HOME or ~/.sushitest default
func GetHome() string {
	home := os.Getenv("SUSHITEST_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".sushitest"
		}
		return filepath.Join(homeDir, ".sushitest")
	}
	return ExpandPath(home)
}

// GetDBPath returns $SUSHITEST_HOME/history.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "history.db")
}

// GetSettingsPath returns $SUSHITEST_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

// ResolveExecutable expands ~ and makes a path containing a separator
// absolute, since tools run inside the invocation's working directory.
// Bare names such as "clang++" are returned as-is for PATH lookup.
func ResolveExecutable(path string) string {
	path = ExpandPath(path)
	if !strings.ContainsRune(path, '/') && !strings.ContainsRune(path, filepath.Separator) {
		return path
	}
	return ResolveFile(path)
}

// ResolveFile expands ~ and makes path absolute
func ResolveFile(path string) string {
	path = ExpandPath(path)
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
