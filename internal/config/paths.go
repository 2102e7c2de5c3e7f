package config

import (
	"os"
	"path/filepath"
)

// ProjectConfigName is the config file looked up in the project root.
const ProjectConfigName = "modsetup.yaml"

// Paths contains standard filesystem paths for modsetup.
type Paths struct {
	// ConfigFile is the user config file (~/.modsetup/config.yaml).
	ConfigFile string

	// HomeDir is the modsetup home directory (~/.modsetup).
	HomeDir string
}

// DefaultPaths returns the default paths for modsetup.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, ".modsetup")

	return &Paths{
		ConfigFile: filepath.Join(home, "config.yaml"),
		HomeDir:    home,
	}, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported
	return path, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
