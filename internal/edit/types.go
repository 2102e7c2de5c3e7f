// Package edit applies find/replace rules to files and renames paths,
// reporting one Result per attempt instead of failing the run.
package edit

import (
	"fmt"
	"regexp"
)

// Op identifies the kind of edit a Result describes.
type Op string

const (
	// OpRewrite is a text rewrite of a single file.
	OpRewrite Op = "rewrite"

	// OpRename is a file or directory rename.
	OpRename Op = "rename"
)

// Status is the outcome of an edit attempt.
type Status string

const (
	// StatusChanged means the file or path was modified.
	StatusChanged Status = "changed"

	// StatusPlanned means a change would have been made in dry-run mode.
	StatusPlanned Status = "planned"

	// StatusUnchanged means nothing needed to change.
	StatusUnchanged Status = "unchanged"

	// StatusSkipped means the target was absent or not applicable.
	StatusSkipped Status = "skipped"

	// StatusFailed means the attempt hit an error; see Result.Err.
	StatusFailed Status = "failed"
)

// Options are shared by the rewriter and the renamer.
type Options struct {
	// DryRun reports changes without persisting them.
	DryRun bool

	// Diff attaches a unified diff to every changed or planned rewrite.
	Diff bool
}

// Rule is a find/replace pair. The replacement is always inserted
// literally; "$1" in Replacement is text, not a back-reference.
type Rule struct {
	// Pattern is a regular expression, or plain text when Literal is set.
	Pattern string `json:"pattern" yaml:"pattern"`

	// Replacement is the text substituted for every match.
	Replacement string `json:"replacement" yaml:"replacement"`

	// Literal quotes Pattern before compiling it.
	Literal bool `json:"literal,omitempty" yaml:"literal,omitempty"`
}

// Compile returns the compiled pattern.
func (r Rule) Compile() (*regexp.Regexp, error) {
	pattern := r.Pattern
	if r.Literal {
		pattern = regexp.QuoteMeta(pattern)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", r.Pattern, err)
	}
	return re, nil
}

// Result reports the outcome of one rewrite (per file) or rename.
type Result struct {
	// Op is the kind of edit.
	Op Op `json:"op" yaml:"op"`

	// Path is the file rewritten or the path renamed.
	Path string `json:"path" yaml:"path"`

	// Target is the destination of a rename.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`

	// Status is the outcome.
	Status Status `json:"status" yaml:"status"`

	// Match is the first text matched by a rewrite rule.
	Match string `json:"match,omitempty" yaml:"match,omitempty"`

	// Replacement is the text that replaced each match.
	Replacement string `json:"replacement,omitempty" yaml:"replacement,omitempty"`

	// Message is a short human-readable reason.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`

	// Diff is a unified diff of a rewrite when Options.Diff is set.
	Diff string `json:"-" yaml:"-"`

	// Err is the failure cause when Status is StatusFailed.
	Err error `json:"-" yaml:"-"`
}

// Failed reports whether the attempt failed.
func (r Result) Failed() bool {
	return r.Status == StatusFailed
}

func failed(op Op, path string, err error) Result {
	return Result{
		Op:      op,
		Path:    path,
		Status:  StatusFailed,
		Message: err.Error(),
		Err:     err,
	}
}
