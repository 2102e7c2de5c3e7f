// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	cmdconfig "github.com/vivekraman/modsetup/internal/cmd/config"
	"github.com/vivekraman/modsetup/internal/cmdtypes"
	"github.com/vivekraman/modsetup/internal/cmdutil"
	"github.com/vivekraman/modsetup/internal/config"
	oerrors "github.com/vivekraman/modsetup/internal/errors"
	"github.com/vivekraman/modsetup/internal/output"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	config     string
	dir        string
	output     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command. Running it without a subcommand
// performs the setup.
func NewRootCmd() *cobra.Command {
	var flags globalFlags
	var setupFlags cmdutil.SetupFlags
	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "modsetup --name <module-name>",
		Short: "Turn the backend module template into a named module",
		Long: `modsetup renames the backend module template in place.

It rewrites versions, artifact IDs, module entries, Java packages, class
names and properties, then renames class files, package directories,
resources and the module directories. Every change is logged; failures on
individual files are reported and the run continues.

The template can be reset with git if anything goes wrong, so commit or
stash your work before running without --dry-run.`,
		Example: `  # Preview every change
  modsetup --name payments-api --dry-run

  # Apply without prompting and build afterwards
  modsetup --name payments-api --yes --build`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, &flags, cfg)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSetup(cmd, &setupFlags, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: MODSETUP_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&flags.dir, "dir", "C", ".", "Project root containing the template")
	rootCmd.PersistentFlags().StringVarP(&flags.output, "output", "o", string(output.FormatText),
		"Summary format: "+strings.Join(output.ValidFormats(), ", "))
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output and diffs")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	setupFlags.AddTo(rootCmd)

	rootCmd.AddCommand(NewNamesCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))
	rootCmd.AddCommand(cmdconfig.NewConfigCmd(cfg))

	return rootCmd
}

// initializeGlobals sets up logging, resolves global flags and loads the
// configuration into cfg.
func initializeGlobals(cmd *cobra.Command, flags *globalFlags, cfg *cmdtypes.GlobalConfig) error {
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	}
	output.SetupLogging(logCfg)
	output.SetLogOutput(cmd.ErrOrStderr())

	cfg.Verbose = flags.verbose
	cfg.ConfigFlag = flags.config

	format := output.ParseFormat(flags.output)
	if !format.IsValid() {
		return oerrors.NewExitError(oerrors.NewValidationError(
			fmt.Sprintf("unsupported output format %q", flags.output), "--output",
			"Use one of: "+strings.Join(output.ValidFormats(), ", ")),
			oerrors.ExitValidationError)
	}
	cfg.Format = format

	dir, err := filepath.Abs(flags.dir)
	if err != nil {
		return oerrors.NewExitError(fmt.Errorf("resolving --dir: %w", err), oerrors.ExitGeneralError)
	}
	cfg.ProjectDir = dir

	if cmd.Annotations[cmdtypes.SkipConfigAnnotation] == "true" {
		return nil
	}

	loaded, resolved, err := cmdconfig.Load(flags.config, dir)
	if err != nil {
		return err
	}
	cfg.Config = loaded
	cfg.ConfigPath = resolved.Value
	cfg.ConfigSource = resolved.Source

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	if ts := config.ResolveTimestamps(flags.timestamps, cmd.Flags().Changed("timestamps"), loaded); ts != nil {
		logCfg.Timestamps = ts
		output.SetupLogging(logCfg)
		output.SetLogOutput(cmd.ErrOrStderr())
	}

	output.Debug("initializing CLI",
		"dir", cfg.ProjectDir,
		"config", cfg.ConfigPath,
		"source", cfg.ConfigSource,
		"output", cfg.Format,
	)

	return nil
}
