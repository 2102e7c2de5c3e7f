// Package build runs the project's build command after setup.
package build

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"mvdan.cc/sh/v3/shell"

	oerrors "github.com/vivekraman/modsetup/internal/errors"
	"github.com/vivekraman/modsetup/internal/output"
)

// ParseCommand splits a command line into argv using POSIX shell word
// rules. Environment variables are expanded from the current process.
func ParseCommand(command string) ([]string, error) {
	if strings.TrimSpace(command) == "" {
		return nil, oerrors.NewValidationError("build command is empty", "build.command",
			"Set build.command in the config file or MODSETUP_BUILD_COMMAND.")
	}

	argv, err := shell.Fields(command, nil)
	if err != nil {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("parsing build command %q: %v", command, err), "build.command", "")
	}
	if len(argv) == 0 {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("build command %q expands to nothing", command), "build.command", "")
	}
	return argv, nil
}

// Runner runs a build command in a project directory.
type Runner struct {
	// Dir is the working directory of the build.
	Dir string

	// Command is the command line, e.g. "mvn clean install".
	Command string

	// Stream sends build output straight to Out instead of capturing it
	// behind a spinner.
	Stream bool

	// Out receives build output. Defaults to os.Stderr.
	Out io.Writer
}

// Run executes the build. A non-zero exit, a missing binary or an
// interrupt is returned as a build error. Captured output is written to
// Out only when the build fails.
func (r *Runner) Run(ctx context.Context) error {
	argv, err := ParseCommand(r.Command)
	if err != nil {
		return err
	}

	out := r.Out
	if out == nil {
		out = os.Stderr
	}

	log := output.StageLogger("build")
	log.Info("running build", "command", strings.Join(argv, " "), "dir", r.Dir)

	var captured bytes.Buffer
	sink := out
	if !r.Stream {
		sink = &captured
	}

	runErr := output.RunWithSpinner(ctx, func(ctx context.Context) error {
		cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
		cmd.Dir = r.Dir
		cmd.Stdout = sink
		cmd.Stderr = sink
		return cmd.Run()
	},
		output.WithTitle("Building..."),
		output.WithoutSpinner(r.Stream),
	)
	if runErr == nil {
		log.Info("build succeeded")
		return nil
	}

	if !r.Stream && captured.Len() > 0 {
		_, _ = out.Write(captured.Bytes())
	}

	details := map[string]string{
		"command": r.Command,
		"dir":     r.Dir,
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return oerrors.NewBuildError("build interrupted", details, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		details["exit code"] = fmt.Sprint(exitErr.ExitCode())
	}
	return oerrors.NewBuildError("build command failed", details, runErr)
}
