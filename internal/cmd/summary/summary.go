package summary

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schmitthub/cliscope/internal/cmdutil"
	"github.com/schmitthub/cliscope/internal/iostreams"
	"github.com/schmitthub/cliscope/internal/store"
	"github.com/schmitthub/cliscope/internal/summary"
)

// SummaryOptions contains the options for the summary command.
type SummaryOptions struct {
	IOStreams *iostreams.IOStreams
	Store     func(dir string) (*store.Store, error)

	Program   string
	OutputDir string
	Tag       string
	Format    *cmdutil.FormatValue
}

// NewCmdSummary creates the summary command.
func NewCmdSummary(f *cmdutil.Factory, runF func(context.Context, *SummaryOptions) error) *cobra.Command {
	opts := &SummaryOptions{
		IOStreams: f.IOStreams,
		Store:     f.Store,
	}

	cmd := &cobra.Command{
		Use:   "summary <program>",
		Short: "Summarize the structure of a parsed program",
		Long: `Prints count statistics for a previously parsed program: first-level
commands, deeper subcommands, short and long flags, as unique and total
counts.

Reads the stored tree for the given tag (latest by default). Run
"cliscope parse <program>" first.`,
		Example: `  # JSON summary for git (default format)
  cliscope summary git

  # Plain-text summary for a specific tag
  cliscope summary git -t 2.43.0 -f text`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Program = args[0]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return summaryRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", "", "Directory holding parsed trees (default: configured output dir)")
	cmd.Flags().StringVarP(&opts.Tag, "tag", "t", "", "Version tag to read (default: latest)")
	opts.Format = cmdutil.AddFormatFlag(cmd, "json", "json", "markdown", "text", "csv")

	return cmd
}

func summaryRun(ctx context.Context, opts *SummaryOptions) error {
	ios := opts.IOStreams

	st, err := opts.Store(opts.OutputDir)
	if err != nil {
		return err
	}

	path, err := st.Resolve(opts.Program, opts.Tag)
	if err != nil {
		return err
	}

	tree, err := st.Load(path)
	if err != nil {
		return err
	}

	sum := summary.Generate(tree)

	switch opts.Format.String() {
	case "markdown":
		fmt.Fprint(ios.Out, sum.RenderMarkdown())
	case "text":
		fmt.Fprint(ios.Out, sum.RenderText())
	case "csv":
		fmt.Fprint(ios.Out, sum.RenderCSV())
	default:
		data, err := json.MarshalIndent(sum, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		fmt.Fprintln(ios.Out, string(data))
	}
	return nil
}
