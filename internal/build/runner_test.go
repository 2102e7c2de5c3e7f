package build

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/vivekraman/modsetup/internal/errors"
	"github.com/vivekraman/modsetup/internal/output"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func quietLogs(t *testing.T) {
	t.Helper()
	var buf bytes.Buffer
	output.SetLogOutput(&buf)
	t.Cleanup(func() { output.SetLogOutput(os.Stderr) })
}

func TestParseCommand(t *testing.T) {
	t.Setenv("MVN_FLAGS", "-q")

	tests := []struct {
		name    string
		command string
		want    []string
		wantErr bool
	}{
		{name: "default", command: "mvn clean install", want: []string{"mvn", "clean", "install"}},
		{name: "quoted argument", command: `mvn "-Dmaven.test.skip=true" 'clean install'`, want: []string{"mvn", "-Dmaven.test.skip=true", "clean install"}},
		{name: "env expansion", command: "mvn $MVN_FLAGS verify", want: []string{"mvn", "-q", "verify"}},
		{name: "empty", command: "", wantErr: true},
		{name: "blank", command: "   ", wantErr: true},
		{name: "unterminated quote", command: `mvn "clean`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.command)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, oerrors.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunner_Success(t *testing.T) {
	requireShell(t)
	quietLogs(t)

	dir := t.TempDir()
	var out bytes.Buffer
	r := &Runner{Dir: dir, Command: `sh -c "echo built > marker"`, Out: &out}

	require.NoError(t, r.Run(context.Background()))

	data, err := os.ReadFile(filepath.Join(dir, "marker"))
	require.NoError(t, err)
	assert.Equal(t, "built\n", string(data))
	assert.Empty(t, out.String(), "captured output is discarded on success")
}

func TestRunner_FailureShowsOutput(t *testing.T) {
	requireShell(t)
	quietLogs(t)

	var out bytes.Buffer
	r := &Runner{Dir: t.TempDir(), Command: `sh -c "echo compilation failure; exit 3"`, Out: &out}

	err := r.Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrBuild))
	assert.Equal(t, oerrors.ExitBuildError, oerrors.ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "exit code: 3")
	assert.Contains(t, out.String(), "compilation failure")
}

func TestRunner_Stream(t *testing.T) {
	requireShell(t)
	quietLogs(t)

	var out bytes.Buffer
	r := &Runner{Dir: t.TempDir(), Command: `sh -c "echo streaming"`, Stream: true, Out: &out}

	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, "streaming\n", out.String())
}

func TestRunner_MissingBinary(t *testing.T) {
	quietLogs(t)

	r := &Runner{Dir: t.TempDir(), Command: "modsetup-no-such-build-tool", Out: &bytes.Buffer{}}

	err := r.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrBuild))
}

func TestRunner_Cancelled(t *testing.T) {
	requireShell(t)
	quietLogs(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &Runner{Dir: t.TempDir(), Command: "sh -c 'sleep 5'", Out: &bytes.Buffer{}}

	err := r.Run(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrBuild))
	assert.True(t, errors.Is(err, context.Canceled))
}
