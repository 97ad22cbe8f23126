package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	loader := NewSettingsLoaderAt(filepath.Join(t.TempDir(), SettingsFileName))

	settings, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "./out", settings.Output.GetDir())
	assert.Equal(t, 5, settings.Crawl.GetMaxDepth())
	assert.Equal(t, 0, settings.Crawl.ProbeTimeoutSeconds)
	assert.True(t, settings.Logging.IsFileEnabled())
}

func TestLoadReadsFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFileName)
	content := `output:
  dir: /srv/trees
crawl:
  max_depth: 3
  probe_timeout_seconds: 30
logging:
  file_enabled: false
  max_size_mb: 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	settings, err := NewSettingsLoaderAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/trees", settings.Output.Dir)
	assert.Equal(t, 3, settings.Crawl.MaxDepth)
	assert.Equal(t, 30, settings.Crawl.ProbeTimeoutSeconds)
	assert.False(t, settings.Logging.IsFileEnabled())
	assert.Equal(t, 10, settings.Logging.GetMaxSizeMB())
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte(":\n  - not yaml"), 0o644))

	_, err := NewSettingsLoaderAt(path).Load()
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	loader := NewSettingsLoaderAt(filepath.Join(t.TempDir(), "nested", SettingsFileName))

	in := DefaultSettings()
	in.Output.Dir = "/data/out"
	in.Crawl.MaxDepth = 7
	require.NoError(t, loader.Save(in))

	out, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "/data/out", out.Output.Dir)
	assert.Equal(t, 7, out.Crawl.MaxDepth)
}

func TestEnsureExists(t *testing.T) {
	loader := NewSettingsLoaderAt(filepath.Join(t.TempDir(), SettingsFileName))

	created, err := loader.EnsureExists()
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, loader.Exists())

	// Commented template still loads as pure defaults.
	settings, err := NewSettingsLoaderAt(loader.Path()).Load()
	require.NoError(t, err)
	assert.Equal(t, "./out", settings.Output.GetDir())

	created, err = loader.EnsureExists()
	require.NoError(t, err)
	assert.False(t, created)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("output:\n  dir: /from/file\n"), 0o644))
	t.Setenv("CLISCOPE_OUTPUT_DIR", "/from/env")

	settings, err := NewSettingsLoaderAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "/from/env", settings.Output.Dir)
}

func TestCliscopeHomeEnvOverride(t *testing.T) {
	t.Setenv(CliscopeHomeEnv, "/custom/home")

	home, err := CliscopeHome()
	require.NoError(t, err)
	assert.Equal(t, "/custom/home", home)

	logs, err := LogsDir()
	require.NoError(t, err)
	assert.Equal(t, "/custom/home/logs", logs)
}
