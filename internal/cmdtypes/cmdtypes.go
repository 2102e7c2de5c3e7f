// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/config).
package cmdtypes

import (
	"github.com/vivekraman/modsetup/internal/config"
	oerrors "github.com/vivekraman/modsetup/internal/errors"
	"github.com/vivekraman/modsetup/internal/output"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded and validated configuration. Nil for commands
	// that skip config loading.
	Config *config.Config

	ConfigPath   string              // resolved config file, empty when defaults apply
	ConfigSource config.ConfigSource // where ConfigPath came from
	ConfigFlag   string              // raw --config flag value
	ProjectDir   string              // absolute --dir
	Format       output.Format       // resolved --output
	Verbose      bool
}

// SkipConfigAnnotation marks commands that load (or ignore) configuration
// themselves instead of failing in PersistentPreRunE.
const SkipConfigAnnotation = "modsetup.skip-config"

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess         = oerrors.ExitSuccess
	ExitGeneralError    = oerrors.ExitGeneralError
	ExitValidationError = oerrors.ExitValidationError
	ExitNotFound        = oerrors.ExitNotFound
	ExitBuildError      = oerrors.ExitBuildError
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
