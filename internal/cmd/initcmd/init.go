package initcmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schmitthub/cliscope/internal/cmdutil"
	"github.com/schmitthub/cliscope/internal/config"
	"github.com/schmitthub/cliscope/internal/iostreams"
)

// InitOptions contains the options for the init command.
type InitOptions struct {
	IOStreams      *iostreams.IOStreams
	SettingsLoader func() (*config.SettingsLoader, error)

	Force bool
}

// NewCmdInit creates the init command for user-level setup.
func NewCmdInit(f *cmdutil.Factory, runF func(context.Context, *InitOptions) error) *cobra.Command {
	opts := &InitOptions{
		IOStreams:      f.IOStreams,
		SettingsLoader: f.SettingsLoader,
	}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize cliscope user settings",
		Long: `Creates the user settings file at ~/.cliscope/settings.yaml with a
commented default template. An existing file is left untouched unless
--force is given.`,
		Example: `  # Create the settings file if missing
  cliscope init

  # Overwrite an existing settings file with defaults
  cliscope init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return initRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing settings file")

	return cmd
}

func initRun(ctx context.Context, opts *InitOptions) error {
	ios := opts.IOStreams
	cs := ios.ColorScheme()

	loader, err := opts.SettingsLoader()
	if err != nil {
		return fmt.Errorf("failed to create settings loader: %w", err)
	}

	if opts.Force && loader.Exists() {
		if err := loader.Save(config.DefaultSettings()); err != nil {
			return err
		}
		fmt.Fprintf(ios.ErrOut, "%s Reset settings at %s\n", cs.SuccessIcon(), loader.Path())
		return nil
	}

	created, err := loader.EnsureExists()
	if err != nil {
		return err
	}

	if created {
		fmt.Fprintf(ios.ErrOut, "%s Created settings at %s\n", cs.SuccessIcon(), loader.Path())
	} else {
		fmt.Fprintf(ios.ErrOut, "%s Settings already exist at %s\n", cs.WarningIcon(), loader.Path())
	}
	return nil
}
