package compare

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schmitthub/cliscope/internal/cmdutil"
	"github.com/schmitthub/cliscope/internal/diff"
	"github.com/schmitthub/cliscope/internal/iostreams"
	"github.com/schmitthub/cliscope/internal/store"
)

// CompareOptions contains the options for the compare command.
type CompareOptions struct {
	IOStreams *iostreams.IOStreams
	Store     func(dir string) (*store.Store, error)

	Program   string
	OutputDir string
	From      string
	To        string
	FromFile  string
	ToFile    string
}

// NewCmdCompare creates the compare command.
func NewCmdCompare(f *cmdutil.Factory, runF func(context.Context, *CompareOptions) error) *cobra.Command {
	opts := &CompareOptions{
		IOStreams: f.IOStreams,
		Store:     f.Store,
	}

	cmd := &cobra.Command{
		Use:   "compare [<program>]",
		Short: "Compare two parsed structure trees",
		Long: `Compares two stored structure trees of a program and prints the
structural differences: commands and flags that were added, removed, or
modified.

With a program argument, --from and --to name stored version tags. When
omitted, --to defaults to the most recent tag and --from to the one
before it.

Alternatively, --from-file and --to-file compare two tree files
directly, without going through the store.`,
		Example: `  # Compare the two most recent parses of git
  cliscope compare git

  # Compare specific tags
  cliscope compare git --from 2.39.0 --to 2.43.0

  # Compare two tree files
  cliscope compare --from-file old/parsed.json --to-file new/parsed.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Program = args[0]
			}
			if opts.Program == "" && (opts.FromFile == "" || opts.ToFile == "") {
				return cmdutil.FlagErrorf("either a program argument or both --from-file and --to-file are required")
			}
			if opts.Program != "" && (opts.FromFile != "" || opts.ToFile != "") {
				return cmdutil.FlagErrorf("a program argument and --from-file/--to-file are mutually exclusive")
			}
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return compareRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", "", "Directory holding parsed trees (default: configured output dir)")
	cmd.Flags().StringVar(&opts.From, "from", "", "Older version tag (default: second-latest)")
	cmd.Flags().StringVar(&opts.To, "to", "", "Newer version tag (default: latest)")
	cmd.Flags().StringVar(&opts.FromFile, "from-file", "", "Older tree file to compare")
	cmd.Flags().StringVar(&opts.ToFile, "to-file", "", "Newer tree file to compare")

	return cmd
}

func compareRun(ctx context.Context, opts *CompareOptions) error {
	ios := opts.IOStreams
	cs := ios.ColorScheme()

	fromPath, toPath := opts.FromFile, opts.ToFile
	if opts.Program != "" {
		st, err := opts.Store(opts.OutputDir)
		if err != nil {
			return err
		}
		fromPath, toPath, err = st.ResolvePair(opts.Program, opts.From, opts.To)
		if err != nil {
			return err
		}
	}

	changes, err := diff.CompareFiles(fromPath, toPath)
	if err != nil {
		return err
	}

	if len(changes) == 0 {
		fmt.Fprintf(ios.ErrOut, "%s No structural changes detected\n", cs.SuccessIcon())
		return nil
	}

	fmt.Fprintf(ios.ErrOut, "Comparing %s -> %s\n\n", fromPath, toPath)
	for _, change := range changes {
		fmt.Fprintln(ios.Out, change.String())
	}
	fmt.Fprintf(ios.ErrOut, "\n%d change(s)\n", len(changes))
	return nil
}
