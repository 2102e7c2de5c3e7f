package preflight

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivekraman/modsetup/internal/config"
	"github.com/vivekraman/modsetup/internal/output"
	"github.com/vivekraman/modsetup/internal/testutil"
)

func TestCheckLayout(t *testing.T) {
	layout := config.DefaultConfig().Layout

	t.Run("complete template", func(t *testing.T) {
		root := testutil.TemplateProject(t)
		assert.Empty(t, CheckLayout(root, layout))
	})

	t.Run("missing app module", func(t *testing.T) {
		root := testutil.TemplateProject(t)
		require.NoError(t, os.RemoveAll(filepath.Join(root, "module-app")))

		assert.Equal(t, []string{"module-app", "module-app/pom.xml", "module-app/src"}, CheckLayout(root, layout))
	})

	t.Run("empty directory", func(t *testing.T) {
		assert.Len(t, CheckLayout(t.TempDir(), layout), len(ExpectedPaths(layout)))
	})
}

func TestCheckGit(t *testing.T) {
	t.Run("not a repository", func(t *testing.T) {
		_, err := CheckGit(t.TempDir())
		assert.ErrorIs(t, err, git.ErrRepositoryNotExists)
	})

	t.Run("clean repository", func(t *testing.T) {
		root := t.TempDir()
		_, err := git.PlainInit(root, false)
		require.NoError(t, err)

		gs, err := CheckGit(root)
		require.NoError(t, err)
		assert.False(t, gs.Dirty())
	})

	t.Run("untracked files from a subdirectory", func(t *testing.T) {
		root := t.TempDir()
		_, err := git.PlainInit(root, false)
		require.NoError(t, err)
		testutil.WriteFile(t, root, "module/pom.xml", "<project/>")

		gs, err := CheckGit(filepath.Join(root, "module"))
		require.NoError(t, err)
		assert.True(t, gs.Dirty())
		assert.Equal(t, []string{"module/pom.xml"}, gs.Changed)
	})
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	output.SetLogOutput(&buf)
	t.Cleanup(func() { output.SetLogOutput(os.Stderr) })

	root := t.TempDir()
	_, err := git.PlainInit(root, false)
	require.NoError(t, err)
	testutil.WriteFile(t, root, "pom.xml", "<project/>")

	report := Run(root, config.DefaultConfig().Layout)

	assert.Contains(t, report.Missing, "template/pom.xml")
	assert.NotContains(t, report.Missing, "pom.xml")
	require.NotNil(t, report.Git)
	assert.True(t, report.Git.Dirty())

	logs := buf.String()
	assert.Contains(t, logs, "expected path not found")
	assert.Contains(t, logs, "uncommitted changes")
}
