package initcmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/cliscope/internal/config"
	"github.com/schmitthub/cliscope/internal/iostreams"
)

func TestInitRunCreatesSettings(t *testing.T) {
	loader := config.NewSettingsLoaderAt(filepath.Join(t.TempDir(), config.SettingsFileName))
	ios, _, _, errOut := iostreams.Test()

	opts := &InitOptions{
		IOStreams:      ios,
		SettingsLoader: func() (*config.SettingsLoader, error) { return loader, nil },
	}

	require.NoError(t, initRun(context.Background(), opts))
	assert.True(t, loader.Exists())
	assert.Contains(t, errOut.String(), "Created settings")

	// Second run leaves the file alone.
	errOut.Reset()
	require.NoError(t, initRun(context.Background(), opts))
	assert.Contains(t, errOut.String(), "already exist")
}

func TestInitRunForceOverwrites(t *testing.T) {
	loader := config.NewSettingsLoaderAt(filepath.Join(t.TempDir(), config.SettingsFileName))
	custom := config.DefaultSettings()
	custom.Output.Dir = "/custom"
	require.NoError(t, loader.Save(custom))

	ios, _, _, errOut := iostreams.Test()
	opts := &InitOptions{
		IOStreams:      ios,
		SettingsLoader: func() (*config.SettingsLoader, error) { return loader, nil },
		Force:          true,
	}

	require.NoError(t, initRun(context.Background(), opts))
	assert.Contains(t, errOut.String(), "Reset settings")

	settings, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "./out", settings.Output.GetDir())
}
