package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vivekraman/modsetup/internal/cmdtypes"
	"github.com/vivekraman/modsetup/internal/config"
	oerrors "github.com/vivekraman/modsetup/internal/errors"
	"github.com/vivekraman/modsetup/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a config file with default values",
		Long: `Create a modsetup configuration file with default values.

The file is created at <dir>/modsetup.yaml, or at the --config path
when one is given.

Examples:
  # Create ./modsetup.yaml
  modsetup config init

  # Overwrite an existing file
  modsetup config init --force`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{cmdtypes.SkipConfigAnnotation: "true"},
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, force bool) error {
	path := filepath.Join(cfg.ProjectDir, config.ProjectConfigName)
	if cfg.ConfigFlag != "" {
		expanded, err := config.ExpandPath(cfg.ConfigFlag)
		if err != nil {
			return oerrors.NewExitError(err, oerrors.ExitGeneralError)
		}
		path = expanded
	}

	if _, err := os.Stat(path); err == nil && !force {
		return oerrors.NewExitError(&oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}, oerrors.ExitValidationError)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return oerrors.NewExitError(fmt.Errorf("creating config directory: %w", err), oerrors.ExitGeneralError)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return oerrors.NewExitError(fmt.Errorf("writing config: %w", err), oerrors.ExitGeneralError)
	}
	defer f.Close()

	if err := config.WriteTemplate(f, config.DefaultConfig()); err != nil {
		return oerrors.NewExitError(fmt.Errorf("writing config: %w", err), oerrors.ExitGeneralError)
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration written to "+path))
	return nil
}
