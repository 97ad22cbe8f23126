package serve

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/schmitthub/cliscope/internal/cmdutil"
	"github.com/schmitthub/cliscope/internal/iostreams"
	"github.com/schmitthub/cliscope/internal/serve"
	"github.com/schmitthub/cliscope/internal/store"
)

// ServeOptions contains the options for the serve command.
type ServeOptions struct {
	IOStreams *iostreams.IOStreams
	Store     func(dir string) (*store.Store, error)

	Program   string
	OutputDir string
	Tag       string
	Input     string
	Host      string
	Port      int
}

// NewCmdServe creates the serve command.
func NewCmdServe(f *cmdutil.Factory, runF func(context.Context, *ServeOptions) error) *cobra.Command {
	opts := &ServeOptions{
		IOStreams: f.IOStreams,
		Store:     f.Store,
	}

	cmd := &cobra.Command{
		Use:   "serve [<program>]",
		Short: "Serve a parsed structure tree over HTTP",
		Long: `Starts an HTTP server exposing a parsed structure tree at
/api/structure, with a minimal index page at /.

With a program argument the stored tree for the given tag is served
(latest by default). --input serves an arbitrary tree file instead. The
backing file is watched and reloaded on change, so re-running
"cliscope parse" updates the served tree in place.`,
		Example: `  # Serve the latest parse of git on the default port
  cliscope serve git

  # Serve an arbitrary tree file on port 9000
  cliscope serve -i ./out/git/latest/parsed.json -p 9000`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Program = args[0]
			}
			if opts.Program == "" && opts.Input == "" {
				return cmdutil.FlagErrorf("either a program argument or --input is required")
			}
			if opts.Program != "" && opts.Input != "" {
				return cmdutil.FlagErrorf("a program argument and --input are mutually exclusive")
			}
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return serveRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", "", "Directory holding parsed trees (default: configured output dir)")
	cmd.Flags().StringVarP(&opts.Tag, "tag", "t", "", "Version tag to serve (default: latest)")
	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "Tree file to serve instead of a stored program tree")
	cmd.Flags().StringVar(&opts.Host, "host", "127.0.0.1", "Host interface to bind")
	cmd.Flags().IntVarP(&opts.Port, "port", "p", 8080, "Port to listen on")

	return cmd
}

func serveRun(ctx context.Context, opts *ServeOptions) error {
	ios := opts.IOStreams
	cs := ios.ColorScheme()

	path := opts.Input
	if opts.Program != "" {
		st, err := opts.Store(opts.OutputDir)
		if err != nil {
			return err
		}
		path, err = st.Resolve(opts.Program, opts.Tag)
		if err != nil {
			return err
		}
	}

	server, err := serve.NewServer(path)
	if err != nil {
		return err
	}

	addr := net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port))
	fmt.Fprintf(ios.ErrOut, "%s Serving %s on http://%s\n", cs.SuccessIcon(), path, addr)
	return server.ListenAndServe(ctx, addr)
}
