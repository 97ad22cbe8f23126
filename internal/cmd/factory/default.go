package factory

import (
	"os"
	"sync"
	"time"

	"github.com/schmitthub/cliscope/internal/cmdutil"
	"github.com/schmitthub/cliscope/internal/config"
	"github.com/schmitthub/cliscope/internal/crawl"
	"github.com/schmitthub/cliscope/internal/iostreams"
	"github.com/schmitthub/cliscope/internal/probe"
	"github.com/schmitthub/cliscope/internal/store"
)

// New creates a fully-wired Factory with lazy-initialized dependency closures.
// Called exactly once at the CLI entry point (internal/cliscope/cmd.go).
// Tests should not import this package; construct &cmdutil.Factory{} directly.
func New(version, commit string) *cmdutil.Factory {
	ios := iostreams.NewIOStreams()

	if !ios.IsOutputTTY() || os.Getenv("NO_COLOR") != "" {
		ios.SetColorEnabled(false)
	}

	f := &cmdutil.Factory{
		Version:   version,
		Commit:    commit,
		IOStreams: ios,
	}

	// --- Lazy dependency closures ---

	// Settings
	var (
		settingsOnce   sync.Once
		settingsLoader *config.SettingsLoader
		settingsData   *config.Settings
		settingsErr    error
	)
	f.SettingsLoader = func() (*config.SettingsLoader, error) {
		settingsOnce.Do(func() {
			settingsLoader, settingsErr = config.NewSettingsLoader()
		})
		return settingsLoader, settingsErr
	}
	f.Settings = func() (*config.Settings, error) {
		if settingsData != nil || settingsErr != nil {
			return settingsData, settingsErr
		}
		loader, err := f.SettingsLoader()
		if err != nil {
			settingsErr = err
			return nil, err
		}
		settingsData, settingsErr = loader.Load()
		return settingsData, settingsErr
	}
	f.InvalidateSettingsCache = func() {
		settingsData = nil
		settingsErr = nil
	}

	// Prober
	f.Prober = func() crawl.Prober {
		runner := &probe.Runner{}
		if settings, err := f.Settings(); err == nil {
			runner.Timeout = time.Duration(settings.Crawl.ProbeTimeoutSeconds) * time.Second
		}
		return runner
	}

	// Store
	f.Store = func(dir string) (*store.Store, error) {
		if dir == "" {
			settings, err := f.Settings()
			if err != nil {
				return nil, err
			}
			dir = settings.Output.GetDir()
		}
		return store.New(dir), nil
	}

	// Crawler
	f.Crawler = func() (*crawl.Crawler, error) {
		settings, err := f.Settings()
		if err != nil {
			return nil, err
		}
		return crawl.New(f.Prober(), crawl.WithMaxDepth(settings.Crawl.GetMaxDepth())), nil
	}

	return f
}
