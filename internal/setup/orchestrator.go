// Package setup runs the full rename of the template project: preflight,
// every planned rewrite and rename in order, then the optional build.
package setup

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vivekraman/modsetup/internal/build"
	"github.com/vivekraman/modsetup/internal/config"
	"github.com/vivekraman/modsetup/internal/edit"
	oerrors "github.com/vivekraman/modsetup/internal/errors"
	"github.com/vivekraman/modsetup/internal/naming"
	"github.com/vivekraman/modsetup/internal/output"
	"github.com/vivekraman/modsetup/internal/plan"
	"github.com/vivekraman/modsetup/internal/preflight"
)

// Options configures an Orchestrator.
type Options struct {
	// Root is the project root. Step paths are resolved against it.
	Root string

	// Names are the derived forms of the new module name.
	Names naming.Names

	// Config supplies versions, layout and the build command.
	Config *config.Config

	// Policy decides what happens when a rename destination exists.
	Policy edit.Policy

	// DryRun reports every change without touching the filesystem.
	DryRun bool

	// Verbose attaches diffs to rewrites and streams build output.
	Verbose bool

	// Build runs the build command after the last step.
	Build bool

	// BuildOut receives build output. Defaults to os.Stderr.
	BuildOut io.Writer
}

// Orchestrator executes a plan against a project tree.
type Orchestrator struct {
	opts     Options
	steps    []plan.Step
	rewriter *edit.Rewriter
	renamer  *edit.Renamer
}

// New creates an Orchestrator. The plan is built up front.
func New(opts Options) *Orchestrator {
	opts.Config = opts.Config.WithDefaults()
	if opts.Policy == "" {
		opts.Policy = edit.PolicyStrict
	}

	editOpts := edit.Options{DryRun: opts.DryRun, Diff: opts.Verbose}
	return &Orchestrator{
		opts:     opts,
		steps:    plan.Build(opts.Names, opts.Config),
		rewriter: edit.NewRewriter(editOpts),
		renamer:  edit.NewRenamer(opts.Policy, editOpts),
	}
}

// Steps returns the planned steps.
func (o *Orchestrator) Steps() []plan.Step {
	return o.steps
}

// Run executes every step in order. File-level failures are recorded in
// the summary and never stop the run. The returned error is non-nil only
// when ctx is cancelled or the build fails; the summary is returned in
// both cases.
func (o *Orchestrator) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{
		Names:  o.opts.Names,
		Root:   o.opts.Root,
		DryRun: o.opts.DryRun,
		Policy: o.opts.Policy,
	}

	report := preflight.Run(o.opts.Root, o.opts.Config.Layout)
	summary.Missing = report.Missing

	stage := ""
	var logger *log.Logger
	for _, step := range o.steps {
		if step.Stage != stage {
			if err := ctx.Err(); err != nil {
				return summary, fmt.Errorf("stopped before %q: %w", step.Stage, err)
			}
			stage = step.Stage
			logger = output.StageLogger(string(step.Kind))
			output.Info(stage + "...")
		}

		abs := filepath.Join(o.opts.Root, filepath.FromSlash(step.Path))
		switch step.Kind {
		case plan.KindRewrite:
			for _, r := range o.rewriter.Apply(abs, step.Rule) {
				o.report(logger, summary, r)
			}
		case plan.KindRename:
			o.report(logger, summary, o.renamer.Rename(abs, step.NewName))
		}
	}

	if !o.opts.Build {
		return summary, nil
	}
	if o.opts.DryRun {
		output.Info("skipping build in dry run", "command", o.opts.Config.Build.Command)
		return summary, nil
	}

	runner := &build.Runner{
		Dir:     o.opts.Root,
		Command: o.opts.Config.Build.Command,
		Stream:  o.opts.Verbose || !output.IsTTY(),
		Out:     o.opts.BuildOut,
	}
	if err := runner.Run(ctx); err != nil {
		return summary, oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}
	summary.Built = true
	return summary, nil
}

// report relativizes r's paths, logs it and adds it to the summary.
func (o *Orchestrator) report(logger *log.Logger, summary *Summary, r edit.Result) {
	r.Path = o.relative(r.Path)
	if r.Target != "" {
		r.Target = o.relative(r.Target)
	}

	line := output.FormatResultLine(r.Path, r.Target, string(r.Status))
	switch r.Status {
	case edit.StatusChanged, edit.StatusPlanned:
		if r.Match != "" {
			logger.Info(line, "replace", output.FormatReplacement(r.Match, r.Replacement))
		} else {
			logger.Info(line)
		}
		if r.Diff != "" {
			output.Details(output.IndentDiff(output.ColorizeDiff(r.Diff), "    "))
		}
	case edit.StatusUnchanged:
		logger.Debug(line, "reason", r.Message)
	case edit.StatusSkipped:
		logger.Warn(line, "reason", r.Message)
	case edit.StatusFailed:
		logger.Error(line, "error", r.Message)
	}

	summary.record(r)
}

func (o *Orchestrator) relative(path string) string {
	rel, err := filepath.Rel(o.opts.Root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
