package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vivekraman/modsetup/internal/cmdtypes"
	"github.com/vivekraman/modsetup/internal/config"
	"github.com/vivekraman/modsetup/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the modsetup configuration.

The config path is resolved using precedence:
  --config flag > MODSETUP_CONFIG env > <dir>/modsetup.yaml > ~/.modsetup/config.yaml

The file is merged with MODSETUP_* environment variables and defaults,
then checked against the configuration schema.

Examples:
  # Validate the project configuration
  modsetup config vet

  # Validate a custom config path
  modsetup config vet --config /path/to/modsetup.yaml`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{cmdtypes.SkipConfigAnnotation: "true"},
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, cfg)
		},
	}
}

func runVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	loaded, resolved, err := Load(cfg.ConfigFlag, cfg.ProjectDir)
	if err != nil {
		return err
	}

	output.Debug("validated config", "path", resolved.Value, "source", resolved.Source)

	out := c.OutOrStdout()
	switch cfg.Format {
	case output.FormatYAML:
		return output.WriteYAML(out, loaded)
	case output.FormatJSON:
		return output.WriteJSON(out, loaded)
	}

	if resolved.Source == config.SourceDefault {
		fmt.Fprintln(out, output.FormatCheckmark("No config file found; defaults are valid"))
		return nil
	}
	fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Configuration is valid: %s (%s)", resolved.Value, resolved.Source)))
	return nil
}

