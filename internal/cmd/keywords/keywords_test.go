package keywords

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/cliscope/internal/cmdutil"
	"github.com/schmitthub/cliscope/internal/cst"
	"github.com/schmitthub/cliscope/internal/iostreams"
	kw "github.com/schmitthub/cliscope/internal/keywords"
	"github.com/schmitthub/cliscope/internal/store"
)

func seedStore(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	serve := &cst.Node{Name: "serve", Children: cst.NewChildren()}
	long := "--port"
	serve.Children.Flags = []cst.Flag{{Long: &long}}
	root := &cst.Node{Name: "app", Version: "1.0.0", Children: cst.NewChildren()}
	root.Children.Commands["serve"] = serve

	_, err := store.New(dir).Save(root, "")
	require.NoError(t, err)
	return dir
}

func TestNewCmdKeywordsFormatFlag(t *testing.T) {
	f, _ := cmdutil.TestFactory()

	var gotOpts *KeywordsOptions
	cmd := NewCmdKeywords(f, func(_ context.Context, opts *KeywordsOptions) error {
		gotOpts = opts
		return nil
	})
	cmd.SetArgs([]string{"git", "-f", "md"})
	cmd.SetOut(f.IOStreams.Out)
	cmd.SetErr(f.IOStreams.ErrOut)

	require.NoError(t, cmd.Execute())
	require.NotNil(t, gotOpts)
	assert.Equal(t, "git", gotOpts.Program)
	assert.Equal(t, "markdown", gotOpts.Format.String())
}

func TestKeywordsRunFormats(t *testing.T) {
	dir := seedStore(t)

	run := func(t *testing.T, format string) string {
		ios, _, out, _ := iostreams.Test()
		opts := &KeywordsOptions{
			IOStreams: ios,
			Store: func(string) (*store.Store, error) {
				return store.New(dir), nil
			},
			Program: "app",
			Format:  cmdutil.NewFormatValue(format, "csv", "json", "markdown", "text"),
		}
		require.NoError(t, keywordsRun(context.Background(), opts))
		return out.String()
	}

	t.Run("csv", func(t *testing.T) {
		out := run(t, "csv")
		assert.True(t, strings.HasPrefix(out, "type,value\n"))
		assert.Contains(t, out, "command,serve")
		assert.Contains(t, out, "long_flag,--port")
	})

	t.Run("json", func(t *testing.T) {
		out := run(t, "json")
		var decoded kw.Keywords
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, "app", decoded.BaseProgram)
		assert.Equal(t, []string{"serve"}, decoded.Commands)
	})

	t.Run("markdown", func(t *testing.T) {
		assert.Contains(t, run(t, "markdown"), "# `app`")
	})

	t.Run("text", func(t *testing.T) {
		assert.Contains(t, run(t, "text"), "First level commands:")
	})
}

func TestKeywordsRunMissingProgram(t *testing.T) {
	ios, _, _, _ := iostreams.Test()
	opts := &KeywordsOptions{
		IOStreams: ios,
		Store: func(string) (*store.Store, error) {
			return store.New(t.TempDir()), nil
		},
		Program: "ghost",
		Format:  cmdutil.NewFormatValue("csv", "csv"),
	}

	assert.Error(t, keywordsRun(context.Background(), opts))
}
