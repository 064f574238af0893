package paths

import (
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"

	"github.com/bwillis/packs/pkg/errors"
	"github.com/bwillis/packs/pkg/logging"
)

// Environment variable names
const (
	// EnvRoot overrides project root discovery
	EnvRoot = "PACKS_ROOT"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Conventional file names. These are not user-configurable.
const (
	// ConfigFile is the declarative configuration file at the project root
	ConfigFile = "packs.yml"

	// MarkerFile must exist directly inside a directory for it to be a pack
	MarkerFile = "package.yml"
)

// maxPathLength is a common filesystem limit
const maxPathLength = 4096

// FindRoot determines the project root using the following priority:
// 1. PACKS_ROOT environment variable (if set)
// 2. Git repository root (found via 'git rev-parse --show-toplevel')
// 3. Current working directory (fallback)
//
// The returned bool reports whether the working directory fallback was used.
func FindRoot() (string, bool, error) {
	if root := os.Getenv(EnvRoot); root != "" {
		abs, err := ResolveRoot(root)
		return abs, false, err
	}

	if gitRoot, err := findGitRoot(); err == nil && gitRoot != "" {
		return filepath.Clean(gitRoot), false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrap(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return cwd, true, nil
}

// ProjectRoot returns the cleaned absolute project root. An explicit root
// wins; otherwise FindRoot decides.
func ProjectRoot(explicit string) (string, error) {
	if explicit != "" {
		return ResolveRoot(explicit)
	}

	root, usedCwd, err := FindRoot()
	if err != nil {
		return "", err
	}
	if usedCwd {
		logger := logging.GetLogger("paths")
		logger.Debug().Str("root", root).
			Msg("Not in a git repository, using working directory as project root")
	}
	return root, nil
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	output, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		// Not in a git repo or git not installed
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}
	return gitRoot, nil
}

// ResolveRoot expands ~ and returns the cleaned absolute form of root.
func ResolveRoot(root string) (string, error) {
	if err := ValidatePath(root); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(ExpandHome(root))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "failed to get absolute path for project root").
			WithDetail("root", root)
	}
	return filepath.Clean(abs), nil
}

// ValidatePath rejects empty paths, paths containing null bytes and paths
// exceeding the maximum length.
func ValidatePath(p string) error {
	if p == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(p, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	if len(p) > maxPathLength {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}

// Normalize converts p to a root-relative path with forward slashes.
// Absolute paths are made relative to root; relative paths are taken as
// already relative to root. "./" prefixes, duplicate separators and trailing
// slashes are removed. The bool is false when p is invalid, is the root
// itself, or escapes the root.
func Normalize(root, p string) (string, bool) {
	if ValidatePath(p) != nil {
		return "", false
	}

	native := filepath.FromSlash(p)
	if filepath.IsAbs(native) {
		rel, err := filepath.Rel(root, native)
		if err != nil {
			return "", false
		}
		native = rel
	}

	rel := path.Clean(filepath.ToSlash(native))
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") || strings.HasPrefix(rel, "/") {
		return "", false
	}
	return rel, true
}

// RelName returns the slash-separated path of dir relative to root, which is
// the form used for pack names.
func RelName(root, dir string) (string, error) {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "path is not under project root").
			WithDetail("root", root).
			WithDetail("path", dir)
	}
	return filepath.ToSlash(rel), nil
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(p string) string {
	if p == "" || p[0] != '~' {
		return p
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return p
		}
	}

	if len(p) == 1 {
		return homeDir
	}

	if p[1] == '/' || p[1] == filepath.Separator {
		return filepath.Join(homeDir, p[2:])
	}

	// ~something (not the user's home)
	return p
}
