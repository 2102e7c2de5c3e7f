package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vivekraman/modsetup/internal/cmdtypes"
	"github.com/vivekraman/modsetup/internal/cmdutil"
	oerrors "github.com/vivekraman/modsetup/internal/errors"
	"github.com/vivekraman/modsetup/internal/naming"
)

// NewNamesCmd creates the names command.
func NewNamesCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "names <module-name>",
		Short: "Show the forms derived from a module name",
		Long: `Show every form of a module name used during setup without
touching any file.

Examples:
  modsetup names payments-api
  modsetup names payments-api -o json`,
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{cmdtypes.SkipConfigAnnotation: "true"},
		RunE: func(c *cobra.Command, args []string) error {
			if err := validateName(args[0]); err != nil {
				return err
			}
			return cmdutil.WriteNames(c.OutOrStdout(), naming.Derive(args[0]), cfg.Format)
		},
	}
}

// validateName returns a validation ExitError for unusable module names.
func validateName(name string) error {
	if err := naming.Validate(name); err != nil {
		return oerrors.NewExitError(
			oerrors.NewValidationError(err.Error(), "--name",
				"Use lowercase words separated by single hyphens, e.g. payments-api."),
			oerrors.ExitValidationError)
	}
	return nil
}
