package version

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"time"
)

// mavenVersionRegex matches the first line of "mvn --version", e.g.
// "Apache Maven 3.9.6 (bc0240f3c744dd6b6ec2920b3cd08dcc295161ae)".
var mavenVersionRegex = regexp.MustCompile(`Apache Maven (\d+\.\d+(?:\.\d+)?(?:-[A-Za-z0-9.\-]+)?)`)

// MavenInfo describes the Maven binary used by the default build command.
type MavenInfo struct {
	// Found indicates if mvn was found in PATH.
	Found bool `json:"found" yaml:"found"`

	// Path is the path to the mvn binary.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Version is the Maven version.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Message provides additional information when detection failed.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// DetectMaven finds mvn in PATH and asks it for its version.
func DetectMaven(ctx context.Context) MavenInfo {
	path, err := exec.LookPath("mvn")
	if err != nil {
		return MavenInfo{Message: "mvn not found in PATH"}
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return MavenInfo{
			Found:   true,
			Path:    path,
			Message: "failed to get Maven version: " + err.Error(),
		}
	}

	v, err := extractMavenVersion(out.String())
	if err != nil {
		return MavenInfo{Found: true, Path: path, Message: err.Error()}
	}

	return MavenInfo{Found: true, Path: path, Version: v}
}

func extractMavenVersion(output string) (string, error) {
	m := mavenVersionRegex.FindStringSubmatch(output)
	if m == nil {
		return "", fmt.Errorf("could not parse Maven version from output")
	}
	return m[1], nil
}

// String returns a human-readable Maven info string.
func (m MavenInfo) String() string {
	if !m.Found {
		return "  Binary Version: not found\n  Binary Path:    -"
	}
	v := m.Version
	if v == "" {
		v = "unknown (" + m.Message + ")"
	}
	return fmt.Sprintf("  Binary Version: %s\n  Binary Path:    %s", v, m.Path)
}
