// Package config provides configuration loading and management.
package config

// VersionsConfig holds the version strings written into the build descriptors.
type VersionsConfig struct {
	// Target is the version every module descriptor is set to.
	// Env: MODSETUP_VERSIONS_TARGET, Default: 1.0-rc1
	Target string `mapstructure:"target" json:"target" yaml:"target"`

	// SpringBoot is the spring-boot-starter-parent version in the root descriptor.
	// Env: MODSETUP_VERSIONS_SPRINGBOOT, Default: 3.1.4
	SpringBoot string `mapstructure:"springBoot" json:"springBoot" yaml:"springBoot"`
}

// LayoutConfig describes the template project being renamed.
type LayoutConfig struct {
	// GroupPackage is the Java package prefix shared by all modules.
	GroupPackage string `mapstructure:"groupPackage" json:"groupPackage" yaml:"groupPackage"`

	// Placeholder is the package segment, profile and constant value the
	// template uses in place of the module name.
	Placeholder string `mapstructure:"placeholder" json:"placeholder" yaml:"placeholder"`

	// ArtifactPrefix prefixes the root artifact ID ("<prefix>-template").
	ArtifactPrefix string `mapstructure:"artifactPrefix" json:"artifactPrefix" yaml:"artifactPrefix"`

	// TemplateModule is the library module directory and artifact ID.
	TemplateModule string `mapstructure:"templateModule" json:"templateModule" yaml:"templateModule"`

	// AppModule is the runnable application module directory and artifact ID.
	AppModule string `mapstructure:"appModule" json:"appModule" yaml:"appModule"`
}

// BuildConfig controls the optional post-setup build.
type BuildConfig struct {
	// Enabled runs the build after a non-dry run. Override with --build.
	Enabled bool `mapstructure:"enabled" json:"enabled" yaml:"enabled"`

	// Command is the build command line, split with shell word rules.
	Command string `mapstructure:"command" json:"command" yaml:"command"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps.
	Timestamps *bool `mapstructure:"timestamps" json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
}

// Config represents the modsetup configuration.
type Config struct {
	Versions VersionsConfig `mapstructure:"versions" json:"versions" yaml:"versions"`
	Layout   LayoutConfig   `mapstructure:"layout" json:"layout" yaml:"layout"`

	// RenamePolicy is "strict" or "replace". Override with --policy.
	RenamePolicy string `mapstructure:"renamePolicy" json:"renamePolicy" yaml:"renamePolicy"`

	Build BuildConfig `mapstructure:"build" json:"build" yaml:"build"`
	Log   LogConfig   `mapstructure:"log" json:"log" yaml:"log"`
}

// Defaults.
const (
	DefaultTargetVersion     = "1.0-rc1"
	DefaultSpringBootVersion = "3.1.4"
	DefaultGroupPackage      = "dev.vivekraman"
	DefaultPlaceholder       = "module"
	DefaultArtifactPrefix    = "backend-module"
	DefaultTemplateModule    = "template"
	DefaultAppModule         = "module-app"
	DefaultRenamePolicy      = "strict"
	DefaultBuildCommand      = "mvn clean install"
)

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		Versions: VersionsConfig{
			Target:     DefaultTargetVersion,
			SpringBoot: DefaultSpringBootVersion,
		},
		Layout: LayoutConfig{
			GroupPackage:   DefaultGroupPackage,
			Placeholder:    DefaultPlaceholder,
			ArtifactPrefix: DefaultArtifactPrefix,
			TemplateModule: DefaultTemplateModule,
			AppModule:      DefaultAppModule,
		},
		RenamePolicy: DefaultRenamePolicy,
		Build: BuildConfig{
			Command: DefaultBuildCommand,
		},
	}
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c *Config) WithDefaults() *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}

	out := *c
	setDefault(&out.Versions.Target, d.Versions.Target)
	setDefault(&out.Versions.SpringBoot, d.Versions.SpringBoot)
	setDefault(&out.Layout.GroupPackage, d.Layout.GroupPackage)
	setDefault(&out.Layout.Placeholder, d.Layout.Placeholder)
	setDefault(&out.Layout.ArtifactPrefix, d.Layout.ArtifactPrefix)
	setDefault(&out.Layout.TemplateModule, d.Layout.TemplateModule)
	setDefault(&out.Layout.AppModule, d.Layout.AppModule)
	setDefault(&out.RenamePolicy, d.RenamePolicy)
	setDefault(&out.Build.Command, d.Build.Command)
	return &out
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
