package edit

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Policy decides what happens when a rename destination already exists.
type Policy string

const (
	// PolicyStrict refuses the rename and leaves both paths untouched.
	PolicyStrict Policy = "strict"

	// PolicyReplace removes the destination recursively, then renames.
	PolicyReplace Policy = "replace"
)

// ValidPolicies returns all policy names.
func ValidPolicies() []string {
	return []string{string(PolicyStrict), string(PolicyReplace)}
}

// ParsePolicy parses a policy name. The empty string means PolicyStrict.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyStrict:
		return PolicyStrict, nil
	case PolicyReplace:
		return PolicyReplace, nil
	default:
		return "", fmt.Errorf("unknown rename policy %q (valid: %s)", s, strings.Join(ValidPolicies(), ", "))
	}
}

// Renamer moves files and directories to a sibling name.
type Renamer struct {
	policy Policy
	opts   Options
}

// NewRenamer creates a renamer with the given conflict policy.
func NewRenamer(policy Policy, opts Options) *Renamer {
	if policy == "" {
		policy = PolicyStrict
	}
	return &Renamer{policy: policy, opts: opts}
}

// Policy returns the conflict policy in use.
func (r *Renamer) Policy() Policy {
	return r.policy
}

// Rename moves oldPath to newName within the same parent directory.
// newName may contain slashes; missing intermediate directories are created.
// The move is a single os.Rename. In dry-run mode preconditions are checked
// but the filesystem is not touched.
func (r *Renamer) Rename(oldPath, newName string) Result {
	newPath := filepath.Join(filepath.Dir(oldPath), filepath.FromSlash(newName))
	res := Result{
		Op:     OpRename,
		Path:   oldPath,
		Target: newPath,
	}

	fail := func(err error) Result {
		res.Status = StatusFailed
		res.Message = err.Error()
		res.Err = err
		return res
	}

	if filepath.Clean(oldPath) == filepath.Clean(newPath) {
		res.Status = StatusUnchanged
		res.Message = "source and destination are the same"
		return res
	}

	if _, err := os.Lstat(oldPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fail(fmt.Errorf("source %s does not exist", oldPath))
		}
		return fail(err)
	}

	if isWithin(newPath, oldPath) {
		return fail(fmt.Errorf("destination %s is inside source %s", newPath, oldPath))
	}

	exists, err := pathExists(newPath)
	if err != nil {
		return fail(err)
	}

	if exists {
		if r.policy != PolicyReplace {
			return fail(fmt.Errorf("destination %s already exists", newPath))
		}
		if isWithin(oldPath, newPath) {
			return fail(fmt.Errorf("source %s is inside destination %s", oldPath, newPath))
		}
		res.Message = "replaced existing destination"
		if r.opts.DryRun {
			res.Message = "would replace existing destination"
		}
	}

	if r.opts.DryRun {
		res.Status = StatusPlanned
		return res
	}

	if exists {
		if err := os.RemoveAll(newPath); err != nil {
			return fail(fmt.Errorf("removing destination: %w", err))
		}
	}

	if err := os.MkdirAll(filepath.Dir(newPath), 0o755); err != nil {
		return fail(fmt.Errorf("creating parent directory: %w", err))
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return fail(err)
	}

	res.Status = StatusChanged
	return res
}

func pathExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// isWithin reports whether child is strictly beneath parent.
func isWithin(child, parent string) bool {
	rel, err := filepath.Rel(filepath.Clean(parent), filepath.Clean(child))
	if err != nil || rel == "." || rel == ".." {
		return false
	}
	return !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
