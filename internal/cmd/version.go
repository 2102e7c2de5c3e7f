package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vivekraman/modsetup/internal/cmdtypes"
	"github.com/vivekraman/modsetup/internal/output"
	"github.com/vivekraman/modsetup/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show modsetup version information.

Displays:
  - modsetup version, commit, and build date
  - the Maven binary used by the default build command`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{cmdtypes.SkipConfigAnnotation: "true"},
		RunE: func(c *cobra.Command, _ []string) error {
			info := version.Get()
			mvn := version.DetectMaven(c.Context())

			out := c.OutOrStdout()
			switch cfg.Format {
			case output.FormatYAML:
				return output.WriteYAML(out, versionOutput{Info: info, Maven: mvn})
			case output.FormatJSON:
				return output.WriteJSON(out, versionOutput{Info: info, Maven: mvn})
			}

			_, err := fmt.Fprintln(out, version.FullVersionString(info, mvn))
			return err
		},
	}
}

type versionOutput struct {
	version.Info `yaml:",inline"`
	Maven        version.MavenInfo `json:"maven" yaml:"maven"`
}
