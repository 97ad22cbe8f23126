package parse

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/cliscope/internal/cmdutil"
	"github.com/schmitthub/cliscope/internal/crawl"
	"github.com/schmitthub/cliscope/internal/cst"
	"github.com/schmitthub/cliscope/internal/iostreams"
	"github.com/schmitthub/cliscope/internal/probe"
	"github.com/schmitthub/cliscope/internal/store"
)

func TestNewCmdParse(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantOpts ParseOptions
		wantErr  bool
	}{
		{
			name: "program only",
			args: []string{"git"},
			wantOpts: ParseOptions{
				Program: "git",
			},
		},
		{
			name: "all flags",
			args: []string{"kubectl", "-o", "/tmp/trees", "-t", "nightly", "--stdout"},
			wantOpts: ParseOptions{
				Program:   "kubectl",
				OutputDir: "/tmp/trees",
				Tag:       "nightly",
				Stdout:    true,
			},
		},
		{
			name:    "missing program",
			args:    []string{},
			wantErr: true,
		},
		{
			name:    "too many args",
			args:    []string{"git", "svn"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := cmdutil.TestFactory()

			var gotOpts *ParseOptions
			cmd := NewCmdParse(f, func(_ context.Context, opts *ParseOptions) error {
				gotOpts = opts
				return nil
			})
			cmd.SetArgs(tt.args)
			cmd.SetOut(f.IOStreams.Out)
			cmd.SetErr(f.IOStreams.ErrOut)

			err := cmd.Execute()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, gotOpts)
			assert.Equal(t, tt.wantOpts.Program, gotOpts.Program)
			assert.Equal(t, tt.wantOpts.OutputDir, gotOpts.OutputDir)
			assert.Equal(t, tt.wantOpts.Tag, gotOpts.Tag)
			assert.Equal(t, tt.wantOpts.Stdout, gotOpts.Stdout)
		})
	}
}

type scriptedProber struct {
	transcripts map[string]probe.Result
}

func (p *scriptedProber) Probe(_ context.Context, fullCommand string) probe.Result {
	if result, ok := p.transcripts[fullCommand]; ok {
		return result
	}
	return probe.Result{Stderr: "not scripted", Status: -1}
}

func TestParseRunStoresTree(t *testing.T) {
	ios, _, out, _ := iostreams.Test()
	prober := &scriptedProber{transcripts: map[string]probe.Result{
		"app version": {Stdout: "1.0.0", Status: 0},
		"app --help":  {Stdout: "App description\nUsage:\n  app [flags]\n", Status: 0},
	}}
	dir := t.TempDir()

	opts := &ParseOptions{
		IOStreams: ios,
		Crawler: func() (*crawl.Crawler, error) {
			return crawl.New(prober), nil
		},
		Store: func(string) (*store.Store, error) {
			return store.New(dir), nil
		},
		Program: "app",
	}

	require.NoError(t, parseRun(context.Background(), opts))

	st := store.New(dir)
	wantPath := st.TreePath("app", "1.0.0")
	assert.Equal(t, wantPath+"\n", out.String())

	tree, err := st.Load(wantPath)
	require.NoError(t, err)
	assert.Equal(t, "app", tree.Name)
	assert.Equal(t, "App description", tree.Description)
}

func TestParseRunStdout(t *testing.T) {
	ios, _, out, _ := iostreams.Test()
	prober := &scriptedProber{transcripts: map[string]probe.Result{
		"app version": {Stdout: "1.0.0", Status: 0},
		"app --help":  {Stdout: "App description\n", Status: 0},
	}}

	opts := &ParseOptions{
		IOStreams: ios,
		Crawler: func() (*crawl.Crawler, error) {
			return crawl.New(prober), nil
		},
		Program: "app",
		Stdout:  true,
	}

	require.NoError(t, parseRun(context.Background(), opts))

	var tree cst.Node
	require.NoError(t, json.Unmarshal(out.Bytes(), &tree))
	assert.Equal(t, "app", tree.Name)
	assert.Equal(t, "1.0.0", tree.Version)
}
