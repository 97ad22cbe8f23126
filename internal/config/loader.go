package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// SettingsFileName is the name of the user settings file.
	SettingsFileName = "settings.yaml"
	// EnvPrefix is the prefix for environment variable overrides
	// (e.g. CLISCOPE_OUTPUT_DIR overrides output.dir).
	EnvPrefix = "CLISCOPE"
)

// SettingsLoader handles loading and saving of user settings.
type SettingsLoader struct {
	path  string
	viper *viper.Viper
}

// NewSettingsLoader creates a new SettingsLoader.
// It resolves the settings path from CLISCOPE_HOME or the default location.
func NewSettingsLoader() (*SettingsLoader, error) {
	home, err := CliscopeHome()
	if err != nil {
		return nil, fmt.Errorf("failed to determine cliscope home: %w", err)
	}
	return NewSettingsLoaderAt(filepath.Join(home, SettingsFileName)), nil
}

// NewSettingsLoaderAt creates a SettingsLoader for an explicit path.
func NewSettingsLoaderAt(path string) *SettingsLoader {
	return &SettingsLoader{
		path:  path,
		viper: viper.New(),
	}
}

// Path returns the full path to the settings file.
func (l *SettingsLoader) Path() string {
	return l.path
}

// Exists checks if the settings file exists.
// Returns false for "file not found" and for other errors (permission
// denied, etc.) since we can't read the file either way.
func (l *SettingsLoader) Exists() bool {
	_, err := os.Stat(l.path)
	return err == nil
}

// Load reads and parses the settings file.
// If the file doesn't exist, returns default settings (not an error).
// Environment variables with the CLISCOPE_ prefix override file values.
func (l *SettingsLoader) Load() (*Settings, error) {
	defaults := DefaultSettings()
	l.viper.SetDefault("output.dir", defaults.Output.Dir)
	l.viper.SetDefault("crawl.max_depth", defaults.Crawl.MaxDepth)
	l.viper.SetDefault("crawl.probe_timeout_seconds", defaults.Crawl.ProbeTimeoutSeconds)

	l.viper.SetEnvPrefix(EnvPrefix)
	l.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.viper.AutomaticEnv()

	if l.Exists() {
		l.viper.SetConfigFile(l.path)
		l.viper.SetConfigType("yaml")
		if err := l.viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var settings Settings
	if err := l.viper.Unmarshal(&settings, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	return &settings, nil
}

// Save writes the settings to the file.
// Creates the parent directory if it doesn't exist.
func (l *SettingsLoader) Save(s *Settings) error {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(l.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// EnsureExists creates the settings file if it doesn't exist.
// Returns true if the file was created, false if it already existed.
func (l *SettingsLoader) EnsureExists() (bool, error) {
	if l.Exists() {
		return false, nil
	}

	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(l.path, []byte(DefaultSettingsYAML), 0644); err != nil {
		return false, fmt.Errorf("failed to write settings file: %w", err)
	}

	return true, nil
}
