// Package config loads cliscope's user-level settings from
// ~/.config/cliscope/settings.yaml.
package config

// Settings represents user-level configuration. Settings are global
// and apply to every cliscope invocation.
type Settings struct {
	// Logging configures file-based logging.
	Logging LoggingConfig `yaml:"logging,omitempty" mapstructure:"logging"`

	// Output configures where parsed trees are persisted.
	Output OutputConfig `yaml:"output,omitempty" mapstructure:"output"`

	// Crawl configures the tree crawler.
	Crawl CrawlConfig `yaml:"crawl,omitempty" mapstructure:"crawl"`
}

// LoggingConfig configures file-based logging. File logging is enabled
// by default; disable via settings.yaml.
type LoggingConfig struct {
	// FileEnabled enables logging to file (default: true)
	FileEnabled *bool `yaml:"file_enabled,omitempty" mapstructure:"file_enabled"`
	// MaxSizeMB is the max size in MB before rotation (default: 50)
	MaxSizeMB int `yaml:"max_size_mb,omitempty" mapstructure:"max_size_mb"`
	// MaxAgeDays is max days to retain old logs (default: 7)
	MaxAgeDays int `yaml:"max_age_days,omitempty" mapstructure:"max_age_days"`
	// MaxBackups is max number of old log files to keep (default: 3)
	MaxBackups int `yaml:"max_backups,omitempty" mapstructure:"max_backups"`
}

// OutputConfig configures the persisted-output store.
type OutputConfig struct {
	// Dir is the store root for parsed trees (default: ./out)
	Dir string `yaml:"dir,omitempty" mapstructure:"dir"`
}

// CrawlConfig configures the crawler.
type CrawlConfig struct {
	// MaxDepth is the recursion cap below the root command (default: 5)
	MaxDepth int `yaml:"max_depth,omitempty" mapstructure:"max_depth"`
	// ProbeTimeoutSeconds bounds one help invocation. Zero (the
	// default) preserves the historical behavior of no timeout.
	ProbeTimeoutSeconds int `yaml:"probe_timeout_seconds,omitempty" mapstructure:"probe_timeout_seconds"`
}

// IsFileEnabled returns whether file logging is enabled. Defaults to
// true when unset.
func (c *LoggingConfig) IsFileEnabled() bool {
	if c.FileEnabled == nil {
		return true
	}
	return *c.FileEnabled
}

// GetMaxSizeMB returns the rotation size, defaulting to 50.
func (c *LoggingConfig) GetMaxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 50
	}
	return c.MaxSizeMB
}

// DefaultSettings returns the settings used when no settings.yaml
// exists.
func DefaultSettings() *Settings {
	return &Settings{
		Output: OutputConfig{Dir: "./out"},
		Crawl:  CrawlConfig{MaxDepth: 5},
	}
}

// GetMaxDepth returns the crawl depth cap, defaulting to 5.
func (c *CrawlConfig) GetMaxDepth() int {
	if c.MaxDepth <= 0 {
		return 5
	}
	return c.MaxDepth
}

// GetOutputDir returns the store root, defaulting to ./out.
func (c *OutputConfig) GetDir() string {
	if c.Dir == "" {
		return "./out"
	}
	return c.Dir
}
