package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for modsetup configuration.
const envPrefix = "MODSETUP"

// Loader handles loading and merging configuration from file, environment
// and defaults.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults double as the key registry AutomaticEnv needs for Unmarshal.
	d := DefaultConfig()
	v.SetDefault("versions.target", d.Versions.Target)
	v.SetDefault("versions.springBoot", d.Versions.SpringBoot)
	v.SetDefault("layout.groupPackage", d.Layout.GroupPackage)
	v.SetDefault("layout.placeholder", d.Layout.Placeholder)
	v.SetDefault("layout.artifactPrefix", d.Layout.ArtifactPrefix)
	v.SetDefault("layout.templateModule", d.Layout.TemplateModule)
	v.SetDefault("layout.appModule", d.Layout.AppModule)
	v.SetDefault("renamePolicy", d.RenamePolicy)
	v.SetDefault("build.enabled", d.Build.Enabled)
	v.SetDefault("build.command", d.Build.Command)
	_ = v.BindEnv("log.timestamps")

	return &Loader{v: v}
}

// Load reads configFile (YAML) if it exists and merges environment
// variables over it. An empty configFile loads env and defaults only.
// A missing file is not an error; see ResolveConfigPath for when a missing
// file should be reported.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile != "" {
		expandedPath, err := ExpandPath(configFile)
		if err != nil {
			return nil, fmt.Errorf("expanding config path: %w", err)
		}

		l.v.SetConfigFile(expandedPath)
		l.v.SetConfigType("yaml")

		if err := l.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg.WithDefaults(), nil
}

// ConfigFileUsed returns the config file viper read, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}
