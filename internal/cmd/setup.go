package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vivekraman/modsetup/internal/build"
	"github.com/vivekraman/modsetup/internal/cmdtypes"
	"github.com/vivekraman/modsetup/internal/cmdutil"
	"github.com/vivekraman/modsetup/internal/config"
	"github.com/vivekraman/modsetup/internal/edit"
	oerrors "github.com/vivekraman/modsetup/internal/errors"
	"github.com/vivekraman/modsetup/internal/naming"
	"github.com/vivekraman/modsetup/internal/output"
	"github.com/vivekraman/modsetup/internal/setup"
)

func runSetup(cmd *cobra.Command, flags *cmdutil.SetupFlags, cfg *cmdtypes.GlobalConfig) error {
	if flags.Name == "" {
		return oerrors.NewExitError(
			oerrors.NewValidationError("--name is required", "--name",
				"Pass the module name, e.g. modsetup --name payments-api."),
			oerrors.ExitValidationError)
	}
	if err := validateName(flags.Name); err != nil {
		return err
	}

	policyValue := config.ResolveString(flags.Policy, cmd.Flags().Changed("policy"), cfg.Config.RenamePolicy)
	policy, err := edit.ParsePolicy(policyValue.Value)
	if err != nil {
		return oerrors.NewExitError(
			oerrors.NewValidationError(err.Error(), "--policy", ""),
			oerrors.ExitValidationError)
	}

	runBuild := config.ResolveBool(flags.Build, cmd.Flags().Changed("build"), cfg.Config.Build.Enabled)
	if runBuild.Value {
		if _, err := build.ParseCommand(cfg.Config.Build.Command); err != nil {
			return oerrors.NewExitError(err, oerrors.ExitValidationError)
		}
	}

	output.Debug("resolved setup options",
		"policy", policy, "policySource", policyValue.Source,
		"build", runBuild.Value, "buildSource", runBuild.Source,
	)

	names := naming.Derive(flags.Name)
	out := cmd.OutOrStdout()

	if !flags.DryRun && !flags.Yes {
		fmt.Fprintln(out, output.StyleWarning.Render("WARNING: --dry-run is not set. Files will be updated."))
		fmt.Fprintf(out, "Project: %s\n", cfg.ProjectDir)
		if err := cmdutil.WriteNames(out, names, output.FormatText); err != nil {
			return err
		}
		ok, err := cmdutil.Confirm(cmd.InOrStdin(), out, "Continue?")
		if err != nil {
			return oerrors.NewExitError(err, oerrors.ExitGeneralError)
		}
		if !ok {
			fmt.Fprintln(out, "Aborting.")
			return nil
		}
	}

	orchestrator := setup.New(setup.Options{
		Root:     cfg.ProjectDir,
		Names:    names,
		Config:   cfg.Config,
		Policy:   policy,
		DryRun:   flags.DryRun,
		Verbose:  cfg.Verbose,
		Build:    runBuild.Value,
		BuildOut: cmd.ErrOrStderr(),
	})

	summary, runErr := orchestrator.Run(cmd.Context())
	if summary != nil {
		if err := summary.Write(out, cfg.Format); err != nil {
			return oerrors.NewExitError(fmt.Errorf("writing summary: %w", err), oerrors.ExitGeneralError)
		}
	}
	if runErr != nil {
		return runErr
	}

	if n := summary.Counts.Failed; n > 0 {
		output.Warn(fmt.Sprintf("%d edit(s) failed; review the log above", n))
	}

	if cfg.Format != output.FormatText {
		return nil
	}
	if flags.DryRun {
		fmt.Fprintln(out, "Completed dry run. Remove --dry-run from the arguments to apply these changes.")
		return nil
	}
	fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Module %s is ready. Happy hacking!", output.StyleNoun.Render(names.Name))))
	return nil
}
