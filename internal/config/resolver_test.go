package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/vivekraman/modsetup/internal/errors"
)

func TestResolveConfigPath(t *testing.T) {
	// Keep the user's real ~/.modsetup out of the picture.
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MODSETUP_CONFIG", "")

	t.Run("flag wins", func(t *testing.T) {
		dir := t.TempDir()
		flagFile := filepath.Join(dir, "flag.yaml")
		envFile := filepath.Join(dir, "env.yaml")
		require.NoError(t, os.WriteFile(flagFile, nil, 0o644))
		require.NoError(t, os.WriteFile(envFile, nil, 0o644))
		t.Setenv("MODSETUP_CONFIG", envFile)

		got, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: flagFile, ProjectDir: dir})

		require.NoError(t, err)
		assert.Equal(t, flagFile, got.Value)
		assert.Equal(t, SourceFlag, got.Source)
	})

	t.Run("env beats project file", func(t *testing.T) {
		dir := t.TempDir()
		envFile := filepath.Join(dir, "env.yaml")
		require.NoError(t, os.WriteFile(envFile, nil, 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectConfigName), nil, 0o644))
		t.Setenv("MODSETUP_CONFIG", envFile)

		got, err := ResolveConfigPath(ResolveConfigPathOptions{ProjectDir: dir})

		require.NoError(t, err)
		assert.Equal(t, envFile, got.Value)
		assert.Equal(t, SourceEnv, got.Source)
	})

	t.Run("project file", func(t *testing.T) {
		dir := t.TempDir()
		projectFile := filepath.Join(dir, ProjectConfigName)
		require.NoError(t, os.WriteFile(projectFile, nil, 0o644))

		got, err := ResolveConfigPath(ResolveConfigPathOptions{ProjectDir: dir})

		require.NoError(t, err)
		assert.Equal(t, projectFile, got.Value)
		assert.Equal(t, SourceProject, got.Source)
	})

	t.Run("nothing found means defaults", func(t *testing.T) {
		got, err := ResolveConfigPath(ResolveConfigPathOptions{ProjectDir: t.TempDir()})

		require.NoError(t, err)
		assert.Empty(t, got.Value)
		assert.Equal(t, SourceDefault, got.Source)
	})

	t.Run("missing explicit file is not found", func(t *testing.T) {
		_, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: filepath.Join(t.TempDir(), "nope.yaml")})

		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrNotFound))
	})
}

func TestResolveString(t *testing.T) {
	assert.Equal(t, ResolvedValue[string]{Value: "replace", Source: SourceFlag}, ResolveString("replace", true, "strict"))
	assert.Equal(t, ResolvedValue[string]{Value: "strict", Source: SourceConfig}, ResolveString("replace", false, "strict"))
}

func TestResolveBool(t *testing.T) {
	assert.Equal(t, ResolvedValue[bool]{Value: false, Source: SourceFlag}, ResolveBool(false, true, true))
	assert.Equal(t, ResolvedValue[bool]{Value: true, Source: SourceConfig}, ResolveBool(false, false, true))
}

func TestResolveTimestamps(t *testing.T) {
	off := false
	cfg := &Config{Log: LogConfig{Timestamps: &off}}

	got := ResolveTimestamps(true, true, cfg)
	require.NotNil(t, got)
	assert.True(t, *got)

	got = ResolveTimestamps(true, false, cfg)
	require.NotNil(t, got)
	assert.False(t, *got)

	assert.Nil(t, ResolveTimestamps(true, false, DefaultConfig()))
}
