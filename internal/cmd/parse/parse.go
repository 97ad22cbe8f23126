package parse

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schmitthub/cliscope/internal/cmdutil"
	"github.com/schmitthub/cliscope/internal/crawl"
	"github.com/schmitthub/cliscope/internal/iostreams"
	"github.com/schmitthub/cliscope/internal/logger"
	"github.com/schmitthub/cliscope/internal/store"
)

// ParseOptions contains the options for the parse command.
type ParseOptions struct {
	IOStreams *iostreams.IOStreams
	Crawler   func() (*crawl.Crawler, error)
	Store     func(dir string) (*store.Store, error)

	Program   string
	OutputDir string
	Tag       string
	Stdout    bool
}

// NewCmdParse creates the parse command.
func NewCmdParse(f *cmdutil.Factory, runF func(context.Context, *ParseOptions) error) *cobra.Command {
	opts := &ParseOptions{
		IOStreams: f.IOStreams,
		Crawler:   f.Crawler,
		Store:     f.Store,
	}

	cmd := &cobra.Command{
		Use:   "parse <program>",
		Short: "Reverse-engineer a program's command structure from its help output",
		Long: `Invokes <program> --help, classifies every line of the output, and
recursively walks discovered subcommands to build a structure tree.

The tree is written to <output-dir>/<program>/<tag>/parsed.json. The tag
defaults to the program's reported version, or "latest" when the version
cannot be determined.

The target program is executed directly with no shell involved, so it
must be on PATH (or given as a path) and must support --help.`,
		Example: `  # Parse git and store the tree under ./out
  cliscope parse git

  # Store under a custom directory and tag
  cliscope parse kubectl -o /tmp/trees -t nightly

  # Print the tree to stdout instead of storing it
  cliscope parse git --stdout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Program = args[0]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return parseRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", "", "Output directory for parsed trees (default: configured output dir)")
	cmd.Flags().StringVarP(&opts.Tag, "tag", "t", "", "Version tag for the stored tree (default: detected version)")
	cmd.Flags().BoolVar(&opts.Stdout, "stdout", false, "Print the tree to stdout instead of storing it")

	return cmd
}

func parseRun(ctx context.Context, opts *ParseOptions) error {
	ios := opts.IOStreams
	cs := ios.ColorScheme()

	crawler, err := opts.Crawler()
	if err != nil {
		return fmt.Errorf("failed to create crawler: %w", err)
	}

	logger.Info().Str("program", opts.Program).Msg("starting parse")
	tree := crawler.Crawl(ctx, opts.Program)

	if opts.Stdout {
		data, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode tree: %w", err)
		}
		fmt.Fprintln(ios.Out, string(data))
		return nil
	}

	st, err := opts.Store(opts.OutputDir)
	if err != nil {
		return err
	}

	path, err := st.Save(tree, opts.Tag)
	if err != nil {
		return fmt.Errorf("failed to store tree: %w", err)
	}

	fmt.Fprintf(ios.ErrOut, "%s Parsed %s (version %s)\n", cs.SuccessIcon(), opts.Program, tree.Version)
	fmt.Fprintln(ios.Out, path)
	return nil
}
