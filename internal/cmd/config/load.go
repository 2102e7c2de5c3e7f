package config

import (
	"github.com/vivekraman/modsetup/internal/cmdutil"
	"github.com/vivekraman/modsetup/internal/config"
	oerrors "github.com/vivekraman/modsetup/internal/errors"
)

// Load resolves the config file for projectDir, loads it over the defaults
// and validates the result against the schema. Errors are returned as
// *ExitError; validation errors are printed before returning.
func Load(flagValue, projectDir string) (*config.Config, config.ResolvedValue[string], error) {
	resolved, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue:  flagValue,
		ProjectDir: projectDir,
	})
	if err != nil {
		return nil, resolved, oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}

	cfg, err := config.NewLoader().Load(resolved.Value)
	if err != nil {
		return nil, resolved, oerrors.NewExitError(&oerrors.DetailError{
			Type:     "validation failed",
			Message:  err.Error(),
			Location: resolved.Value,
			Hint:     "Check the YAML syntax of the config file.",
			Cause:    oerrors.ErrValidation,
		}, oerrors.ExitValidationError)
	}

	validator, err := config.NewValidator()
	if err != nil {
		return nil, resolved, oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}
	if err := validator.Validate(cfg); err != nil {
		cmdutil.PrintValidationError("invalid configuration", err)
		return nil, resolved, &oerrors.ExitError{
			Code:    oerrors.ExitValidationError,
			Err:     err,
			Printed: true,
		}
	}

	return cfg, resolved, nil
}
