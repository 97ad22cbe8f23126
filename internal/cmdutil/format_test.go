package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValueSet(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "exact match", input: "json", want: "json"},
		{name: "case insensitive", input: "JSON", want: "json"},
		{name: "md alias", input: "md", want: "markdown"},
		{name: "rejected value", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fv := NewFormatValue("csv", "csv", "json", "markdown", "text")
			err := fv.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "csv", fv.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, fv.String())
		})
	}
}

func TestAddFormatFlag(t *testing.T) {
	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	fv := AddFormatFlag(cmd, "json", "json", "text")

	assert.Equal(t, "json", fv.String())

	cmd.SetArgs([]string{"-f", "text"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "text", fv.String())

	cmd.SetArgs([]string{"--format", "bogus"})
	assert.Error(t, cmd.Execute())
}

func TestFlagErrors(t *testing.T) {
	err := FlagErrorf("bad value %q", "x")
	var flagErr *FlagError
	require.ErrorAs(t, err, &flagErr)
	assert.Equal(t, `bad value "x"`, err.Error())

	wrapped := FlagErrorWrap(assert.AnError)
	require.ErrorAs(t, wrapped, &flagErr)
	assert.ErrorIs(t, wrapped, assert.AnError)
}

func TestExitError(t *testing.T) {
	err := &ExitError{Code: 3}
	assert.Equal(t, "exit status 3", err.Error())
}
