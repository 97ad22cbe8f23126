package root

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/cliscope/internal/cmdutil"
)

func TestNewCmdRootRegistersCommands(t *testing.T) {
	f, _ := cmdutil.TestFactory()
	cmd, err := NewCmdRoot(f, "1.2.3", "2026-01-01")
	require.NoError(t, err)

	want := []string{"init", "parse", "compare", "keywords", "summary", "serve", "version"}
	var got []string
	for _, sub := range cmd.Commands() {
		got = append(got, sub.Name())
	}
	for _, name := range want {
		assert.Contains(t, got, name)
	}
}

func TestNewCmdRootDebugFlag(t *testing.T) {
	f, _ := cmdutil.TestFactory()
	cmd, err := NewCmdRoot(f, "1.2.3", "")
	require.NoError(t, err)

	flag := cmd.PersistentFlags().Lookup("debug")
	require.NotNil(t, flag)
	assert.Equal(t, "D", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

func TestNewCmdRootVersionTemplate(t *testing.T) {
	f, _ := cmdutil.TestFactory()
	cmd, err := NewCmdRoot(f, "v1.2.3", "2026-01-01")
	require.NoError(t, err)

	assert.Equal(t, "cliscope version 1.2.3 (2026-01-01)\n", cmd.Annotations["versionInfo"])
}
