package config

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/bwillis/packs/pkg/errors"
)

// ValidatePattern checks a single pack path pattern. Patterns are
// slash-separated, relative to the project root and may not climb out of it.
func ValidatePattern(pattern string) error {
	if strings.TrimSpace(pattern) == "" {
		return errors.New(errors.ErrConfigValid, "pack path pattern cannot be empty")
	}

	if strings.HasPrefix(pattern, "/") || path.IsAbs(pattern) || hasDriveLetter(pattern) {
		return errors.Newf(errors.ErrConfigValid, "pack path pattern %q must be relative to the project root", pattern).
			WithDetail("pattern", pattern)
	}

	if strings.Contains(pattern, "\\") {
		return errors.Newf(errors.ErrConfigValid, "pack path pattern %q must use forward slashes", pattern).
			WithDetail("pattern", pattern)
	}

	for _, seg := range strings.Split(pattern, "/") {
		if seg == ".." {
			return errors.Newf(errors.ErrConfigValid, "pack path pattern %q leaves the project root", pattern).
				WithDetail("pattern", pattern)
		}
	}

	if !doublestar.ValidatePattern(pattern) {
		return errors.Newf(errors.ErrConfigValid, "pack path pattern %q is not a valid glob", pattern).
			WithDetail("pattern", pattern)
	}

	return nil
}

// ValidatePatterns validates every pattern, reporting the first failure with
// its index.
func ValidatePatterns(patterns []string) error {
	for i, p := range patterns {
		if err := ValidatePattern(p); err != nil {
			if perr, ok := err.(*errors.PacksError); ok {
				return perr.WithDetail("index", i)
			}
			return err
		}
	}
	return nil
}

func hasDriveLetter(p string) bool {
	return len(p) >= 2 && p[1] == ':' &&
		((p[0] >= 'a' && p[0] <= 'z') || (p[0] >= 'A' && p[0] <= 'Z'))
}
