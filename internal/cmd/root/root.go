package root

import (
	"github.com/spf13/cobra"

	comparecmd "github.com/schmitthub/cliscope/internal/cmd/compare"
	"github.com/schmitthub/cliscope/internal/cmd/initcmd"
	keywordscmd "github.com/schmitthub/cliscope/internal/cmd/keywords"
	parsecmd "github.com/schmitthub/cliscope/internal/cmd/parse"
	servecmd "github.com/schmitthub/cliscope/internal/cmd/serve"
	summarycmd "github.com/schmitthub/cliscope/internal/cmd/summary"
	versioncmd "github.com/schmitthub/cliscope/internal/cmd/version"
	"github.com/schmitthub/cliscope/internal/cmdutil"
	internalconfig "github.com/schmitthub/cliscope/internal/config"
	"github.com/schmitthub/cliscope/internal/logger"
)

// NewCmdRoot creates the root command for the cliscope CLI.
func NewCmdRoot(f *cmdutil.Factory, version, buildDate string) (*cobra.Command, error) {
	var debug bool

	cmd := &cobra.Command{
		Use:   "cliscope",
		Short: "Reverse-engineer the command structure of any CLI program",
		Long: `Cliscope builds a structural model of an external CLI program by
invoking its --help output recursively: commands, subcommands, flags,
and usage grammar, persisted as a JSON tree.

Quick start:
  cliscope init           # Set up user settings (~/.cliscope/settings.yaml)
  cliscope parse git      # Crawl git's help output into ./out/git/<version>/parsed.json
  cliscope summary git    # Count commands and flags in the parsed tree
  cliscope compare git    # Diff the two most recent parses`,
		SilenceUsage: true,
		Annotations: map[string]string{
			"versionInfo": versioncmd.Format(version, buildDate),
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f.Debug = debug
			initializeLogger(debug)

			logger.Debug().
				Str("version", f.Version).
				Bool("debug", debug).
				Msg("cliscope starting")

			return nil
		},
		Version: f.Version,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")

	// Version template
	cmd.SetVersionTemplate(versioncmd.Format(version, buildDate) + "\n")

	cmd.AddCommand(initcmd.NewCmdInit(f, nil))
	cmd.AddCommand(parsecmd.NewCmdParse(f, nil))
	cmd.AddCommand(comparecmd.NewCmdCompare(f, nil))
	cmd.AddCommand(keywordscmd.NewCmdKeywords(f, nil))
	cmd.AddCommand(summarycmd.NewCmdSummary(f, nil))
	cmd.AddCommand(servecmd.NewCmdServe(f, nil))
	cmd.AddCommand(versioncmd.NewCmdVersion(f, version, buildDate))

	return cmd, nil
}

// initializeLogger sets up the logger with file logging if possible.
// Falls back to console-only logging on any errors.
func initializeLogger(debug bool) {
	loader, err := internalconfig.NewSettingsLoader()
	if err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to create settings loader")
		return
	}

	settings, err := loader.Load()
	if err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to load settings")
		return
	}

	logsDir, err := internalconfig.LogsDir()
	if err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to get logs directory")
		return
	}

	logCfg := &logger.LoggingConfig{
		FileEnabled: settings.Logging.FileEnabled,
		MaxSizeMB:   settings.Logging.MaxSizeMB,
		MaxAgeDays:  settings.Logging.MaxAgeDays,
		MaxBackups:  settings.Logging.MaxBackups,
	}

	if err := logger.InitWithFile(debug, logsDir, logCfg); err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to initialize file writer")
	}
}
