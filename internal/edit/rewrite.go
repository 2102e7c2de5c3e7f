package edit

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"unicode/utf8"

	"github.com/vivekraman/modsetup/internal/output"
)

// Rewriter applies rules to a file or to every file beneath a directory.
type Rewriter struct {
	opts Options
}

// NewRewriter creates a rewriter.
func NewRewriter(opts Options) *Rewriter {
	return &Rewriter{opts: opts}
}

// Apply runs rule against path. A directory is walked recursively and every
// regular file beneath it is a candidate. One Result is returned per file;
// errors never stop the walk.
func (r *Rewriter) Apply(path string, rule Rule) []Result {
	re, err := rule.Compile()
	if err != nil {
		return []Result{failed(OpRewrite, path, err)}
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Result{{
			Op:      OpRewrite,
			Path:    path,
			Status:  StatusSkipped,
			Message: "path does not exist",
		}}
	}
	if err != nil {
		return []Result{failed(OpRewrite, path, err)}
	}

	if !info.IsDir() {
		return []Result{r.rewriteFile(path, info.Mode().Perm(), re, rule)}
	}

	var results []Result
	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			results = append(results, failed(OpRewrite, p, walkErr))
			if d != nil && d.IsDir() && p != path {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			results = append(results, failed(OpRewrite, p, err))
			return nil
		}
		results = append(results, r.rewriteFile(p, fi.Mode().Perm(), re, rule))
		return nil
	})

	return results
}

func (r *Rewriter) rewriteFile(path string, perm fs.FileMode, re *regexp.Regexp, rule Rule) Result {
	content, err := os.ReadFile(path)
	if err != nil {
		return failed(OpRewrite, path, fmt.Errorf("reading file: %w", err))
	}

	res := Result{
		Op:          OpRewrite,
		Path:        path,
		Replacement: rule.Replacement,
	}

	if !utf8.Valid(content) {
		res.Status = StatusSkipped
		res.Message = "not UTF-8 text"
		return res
	}

	text := string(content)
	loc := re.FindStringIndex(text)
	if loc == nil {
		res.Status = StatusUnchanged
		res.Message = "no change"
		return res
	}
	res.Match = text[loc[0]:loc[1]]

	updated := re.ReplaceAllLiteralString(text, rule.Replacement)
	if updated == "" || updated == text {
		res.Status = StatusUnchanged
		res.Message = "no change"
		return res
	}

	if r.opts.Diff {
		diff, err := output.UnifiedDiff(path, text, updated)
		if err == nil {
			res.Diff = diff
		}
	}

	if r.opts.DryRun {
		res.Status = StatusPlanned
		return res
	}

	if err := os.WriteFile(path, []byte(updated), perm); err != nil {
		return failed(OpRewrite, path, fmt.Errorf("writing file: %w", err))
	}

	res.Status = StatusChanged
	return res
}
