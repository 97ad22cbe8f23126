package keywords

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schmitthub/cliscope/internal/cmdutil"
	"github.com/schmitthub/cliscope/internal/iostreams"
	"github.com/schmitthub/cliscope/internal/keywords"
	"github.com/schmitthub/cliscope/internal/store"
)

// KeywordsOptions contains the options for the keywords command.
type KeywordsOptions struct {
	IOStreams *iostreams.IOStreams
	Store     func(dir string) (*store.Store, error)

	Program   string
	OutputDir string
	Tag       string
	Format    *cmdutil.FormatValue
}

// NewCmdKeywords creates the keywords command.
func NewCmdKeywords(f *cmdutil.Factory, runF func(context.Context, *KeywordsOptions) error) *cobra.Command {
	opts := &KeywordsOptions{
		IOStreams: f.IOStreams,
		Store:     f.Store,
	}

	cmd := &cobra.Command{
		Use:   "keywords <program>",
		Short: "Extract command and flag keywords from a parsed tree",
		Long: `Lists the vocabulary of a previously parsed program: its first-level
commands, deeper subcommands, and short and long flags.

Reads the stored tree for the given tag (latest by default). Run
"cliscope parse <program>" first.`,
		Example: `  # CSV keyword list for git (default format)
  cliscope keywords git

  # Markdown table for a specific tag
  cliscope keywords git -t 2.43.0 -f md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Program = args[0]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return keywordsRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", "", "Directory holding parsed trees (default: configured output dir)")
	cmd.Flags().StringVarP(&opts.Tag, "tag", "t", "", "Version tag to read (default: latest)")
	opts.Format = cmdutil.AddFormatFlag(cmd, "csv", "csv", "json", "markdown", "text")

	return cmd
}

func keywordsRun(ctx context.Context, opts *KeywordsOptions) error {
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

	kw := keywords.Extract(tree)

	switch opts.Format.String() {
	case "json":
		data, err := json.MarshalIndent(kw, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode keywords: %w", err)
		}
		fmt.Fprintln(ios.Out, string(data))
	case "markdown":
		fmt.Fprint(ios.Out, kw.RenderMarkdown())
	case "text":
		fmt.Fprint(ios.Out, kw.RenderText())
	default:
		fmt.Fprint(ios.Out, kw.RenderCSV())
	}
	return nil
}
