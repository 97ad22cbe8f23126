package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// FormatValue is a pflag.Value for --format flags with a fixed set of
// accepted render formats. Matching is case-insensitive and "md" is
// accepted as an alias for "markdown".
type FormatValue struct {
	value   string
	allowed []string
}

var _ pflag.Value = (*FormatValue)(nil)

// NewFormatValue creates a FormatValue with the given default and
// accepted formats.
func NewFormatValue(def string, allowed ...string) *FormatValue {
	return &FormatValue{value: def, allowed: allowed}
}

// String returns the current format.
func (f *FormatValue) String() string { return f.value }

// Type describes the flag value in usage text.
func (f *FormatValue) Type() string { return "format" }

// Set validates and records the format.
func (f *FormatValue) Set(raw string) error {
	v := strings.ToLower(raw)
	if v == "md" {
		v = "markdown"
	}
	for _, a := range f.allowed {
		if v == a {
			f.value = v
			return nil
		}
	}
	return fmt.Errorf("must be one of: %s", strings.Join(f.allowed, ", "))
}

// AddFormatFlag registers a --format/-f flag on cmd backed by a
// FormatValue, with shell completion over the accepted formats.
func AddFormatFlag(cmd *cobra.Command, def string, allowed ...string) *FormatValue {
	fv := NewFormatValue(def, allowed...)
	cmd.Flags().VarP(fv, "format", "f", fmt.Sprintf("Output format: %s", strings.Join(allowed, ", ")))
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return allowed, cobra.ShellCompDirectiveNoFileComp
	})
	return fv
}
