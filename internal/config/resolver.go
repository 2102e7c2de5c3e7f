package config

import (
	"fmt"
	"os"
	"path/filepath"

	oerrors "github.com/vivekraman/modsetup/internal/errors"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceProject indicates the config file found in the project root.
	SourceProject ConfigSource = "project"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a resolved setting and where it came from.
type ResolvedValue[T any] struct {
	Value  T
	Source ConfigSource
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
	// ProjectDir is the project root searched for modsetup.yaml.
	ProjectDir string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) MODSETUP_CONFIG env, (3) <project>/modsetup.yaml,
// (4) ~/.modsetup/config.yaml.
//
// An explicitly named file (flag or env) must exist. The implicit locations
// may be absent, in which case the returned path is empty and defaults apply.
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolvedValue[string], error) {
	explicit := func(path string, source ConfigSource) (ResolvedValue[string], error) {
		expanded, err := ExpandPath(path)
		if err != nil {
			return ResolvedValue[string]{}, err
		}
		if !fileExists(expanded) {
			return ResolvedValue[string]{}, oerrors.NewNotFoundError(
				fmt.Sprintf("config file %s does not exist", expanded),
				expanded,
				"Check the --config flag or the MODSETUP_CONFIG variable.",
			)
		}
		return ResolvedValue[string]{Value: expanded, Source: source}, nil
	}

	if opts.FlagValue != "" {
		return explicit(opts.FlagValue, SourceFlag)
	}
	if env := os.Getenv("MODSETUP_CONFIG"); env != "" {
		return explicit(env, SourceEnv)
	}

	if opts.ProjectDir != "" {
		projectFile := filepath.Join(opts.ProjectDir, ProjectConfigName)
		if fileExists(projectFile) {
			return ResolvedValue[string]{Value: projectFile, Source: SourceProject}, nil
		}
	}

	paths, err := DefaultPaths()
	if err == nil && fileExists(paths.ConfigFile) {
		return ResolvedValue[string]{Value: paths.ConfigFile, Source: SourceConfig}, nil
	}

	return ResolvedValue[string]{Source: SourceDefault}, nil
}

// ResolveString picks the flag value when the flag was set, otherwise the
// loaded config value (which already merges env over file over default).
func ResolveString(flagValue string, flagChanged bool, configValue string) ResolvedValue[string] {
	if flagChanged {
		return ResolvedValue[string]{Value: flagValue, Source: SourceFlag}
	}
	return ResolvedValue[string]{Value: configValue, Source: SourceConfig}
}

// ResolveBool is ResolveString for booleans.
func ResolveBool(flagValue, flagChanged, configValue bool) ResolvedValue[bool] {
	if flagChanged {
		return ResolvedValue[bool]{Value: flagValue, Source: SourceFlag}
	}
	return ResolvedValue[bool]{Value: configValue, Source: SourceConfig}
}

// ResolveTimestamps returns the timestamp setting: flag if set, else config,
// else nil (meaning the logger default).
func ResolveTimestamps(flagValue, flagChanged bool, cfg *Config) *bool {
	if flagChanged {
		return &flagValue
	}
	if cfg != nil && cfg.Log.Timestamps != nil {
		v := *cfg.Log.Timestamps
		return &v
	}
	return nil
}
