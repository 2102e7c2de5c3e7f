// Package preflight inspects the project before any edit is made. Its
// findings are warnings only; a run never stops because of them.
package preflight

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-git/go-git/v5"

	"github.com/vivekraman/modsetup/internal/config"
	"github.com/vivekraman/modsetup/internal/output"
)

// ExpectedPaths returns the slash-separated paths the template layout is
// expected to contain.
func ExpectedPaths(layout config.LayoutConfig) []string {
	return []string{
		"pom.xml",
		layout.TemplateModule,
		layout.TemplateModule + "/pom.xml",
		layout.TemplateModule + "/src",
		layout.AppModule,
		layout.AppModule + "/pom.xml",
		layout.AppModule + "/src",
	}
}

// CheckLayout returns the expected paths missing beneath root.
func CheckLayout(root string, layout config.LayoutConfig) []string {
	var missing []string
	for _, p := range ExpectedPaths(layout) {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(p))); err != nil {
			missing = append(missing, p)
		}
	}
	return missing
}

// GitStatus describes the git work tree containing the project.
type GitStatus struct {
	// Root is the work tree root.
	Root string

	// Changed lists modified, staged and untracked paths relative to Root.
	Changed []string
}

// Dirty reports whether the work tree has uncommitted changes.
func (s *GitStatus) Dirty() bool {
	return len(s.Changed) > 0
}

// CheckGit opens the git work tree containing root. It returns
// git.ErrRepositoryNotExists when root is not inside a repository.
func CheckGit(root string) (*GitStatus, error) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("get worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("get status: %w", err)
	}

	gs := &GitStatus{Root: wt.Filesystem.Root()}
	for path, st := range status {
		if st.Staging != git.Unmodified || st.Worktree != git.Unmodified {
			gs.Changed = append(gs.Changed, path)
		}
	}
	sort.Strings(gs.Changed)
	return gs, nil
}

// Report is the outcome of Run.
type Report struct {
	Missing []string   `json:"missing,omitempty" yaml:"missing,omitempty"`
	Git     *GitStatus `json:"-" yaml:"-"`
}

// Run performs every check and logs its findings.
func Run(root string, layout config.LayoutConfig) *Report {
	log := output.StageLogger("preflight")
	report := &Report{Missing: CheckLayout(root, layout)}

	for _, p := range report.Missing {
		log.Warn("expected path not found", "path", p)
	}

	gs, err := CheckGit(root)
	switch {
	case errors.Is(err, git.ErrRepositoryNotExists):
		log.Debug("not a git repository", "dir", root)
	case err != nil:
		log.Debug("git status unavailable", "error", err)
	default:
		report.Git = gs
		if gs.Dirty() {
			log.Warn("work tree has uncommitted changes; edits cannot be rolled back",
				"root", gs.Root, "changed", len(gs.Changed))
		} else {
			log.Debug("work tree clean", "root", gs.Root)
		}
	}

	return report
}
