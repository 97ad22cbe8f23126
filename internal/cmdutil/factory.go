package cmdutil

import (
	"github.com/schmitthub/cliscope/internal/config"
	"github.com/schmitthub/cliscope/internal/crawl"
	"github.com/schmitthub/cliscope/internal/iostreams"
	"github.com/schmitthub/cliscope/internal/probe"
	"github.com/schmitthub/cliscope/internal/store"
)

// Factory provides shared dependencies for CLI commands.
// It is a dependency injection container: the struct defines what
// dependencies exist (the contract), while internal/cmd/factory
// wires the real implementations.
//
// Closure fields are set by the factory constructor and use lazy
// initialization internally. Commands extract only the fields they
// need into per-command Options structs.
type Factory struct {
	// Configuration from flags (set before command execution)
	Debug bool

	// Version info (set at build time via ldflags)
	Version string
	Commit  string

	// IO streams for input/output (for testability)
	IOStreams *iostreams.IOStreams

	// Dependency providers (closures wired by factory constructor)
	SettingsLoader          func() (*config.SettingsLoader, error)
	Settings                func() (*config.Settings, error)
	InvalidateSettingsCache func()

	// Store returns the tree store rooted at dir, falling back to the
	// configured output directory when dir is empty.
	Store func(dir string) (*store.Store, error)

	// Crawler builds a crawler honoring the configured depth and
	// probe timeout.
	Crawler func() (*crawl.Crawler, error)

	// Prober returns the subprocess prober used for help invocations.
	Prober func() crawl.Prober
}

// TestFactory returns a Factory suitable for command tests: buffered
// IO streams and nil providers. Tests fill in only the closures the
// command under test calls.
func TestFactory() (*Factory, *iostreams.IOStreams) {
	ios, _, _, _ := iostreams.Test()
	return &Factory{
		IOStreams: ios,
		Prober:    func() crawl.Prober { return &probe.Runner{} },
	}, ios
}
