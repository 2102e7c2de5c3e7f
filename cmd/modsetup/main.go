// Package main is the entry point for modsetup.
package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/vivekraman/modsetup/internal/cmd"
	oerrors "github.com/vivekraman/modsetup/internal/errors"
	"github.com/vivekraman/modsetup/internal/version"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	info := version.Get()
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(info.Version),
		fang.WithCommit(info.GitCommit),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleError),
	); err != nil {
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}

// handleError prints errors the command layer has not already printed.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) && exitErr.Printed {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
