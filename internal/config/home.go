package config

import (
	"os"
	"path/filepath"
)

const (
	// CliscopeHomeEnv is the environment variable for the cliscope home directory
	CliscopeHomeEnv = "CLISCOPE_HOME"
	// DefaultCliscopeDir is the default directory name under user home
	DefaultCliscopeDir = ".cliscope"
	// LogsSubdir is the subdirectory for log files
	LogsSubdir = "logs"
)

// CliscopeHome returns the cliscope home directory.
// It checks CLISCOPE_HOME environment variable first, then defaults to ~/.cliscope
func CliscopeHome() (string, error) {
	if home := os.Getenv(CliscopeHomeEnv); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultCliscopeDir), nil
}

// LogsDir returns the log directory (~/.cliscope/logs)
func LogsDir() (string, error) {
	home, err := CliscopeHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, LogsSubdir), nil
}

// EnsureDir creates a directory if it doesn't exist
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
