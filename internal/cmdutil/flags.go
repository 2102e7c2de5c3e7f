// Package cmdutil provides shared command utilities: flag groups, the
// confirmation prompt and error printing.
package cmdutil

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vivekraman/modsetup/internal/edit"
)

// SetupFlags holds the flags of the setup (root) command.
type SetupFlags struct {
	Name   string
	DryRun bool
	Yes    bool
	Build  bool
	Policy string
}

// AddTo registers the setup flags on the given cobra command.
func (f *SetupFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Name, "name", "",
		"Name of the module, e.g. payments-api (required)")
	cmd.Flags().BoolVar(&f.DryRun, "dry-run", false,
		"Log changes instead of applying them")
	cmd.Flags().BoolVarP(&f.Yes, "yes", "y", false,
		"Skip the confirmation prompt")
	cmd.Flags().BoolVar(&f.Build, "build", false,
		"Run the build command after setup (config: build.enabled)")
	cmd.Flags().StringVar(&f.Policy, "policy", "",
		"Rename policy when a destination exists: "+strings.Join(edit.ValidPolicies(), ", ")+" (config: renamePolicy)")
}
