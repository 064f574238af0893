package packs

import (
	stderrors "errors"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/bwillis/packs/pkg/types"
)

// expander turns one pack path pattern into the directories it matches.
// Matching is per path segment: a wildcard segment matches exactly one
// directory level, except "**" which matches zero or more.
type expander struct {
	fsys   types.FS
	root   string
	logger zerolog.Logger
}

// expand returns the absolute paths of directories matching pattern, in
// lexical walk order. Unreadable directories are logged and skipped.
func (e *expander) expand(pattern string) []string {
	segs := splitPattern(pattern)
	if len(segs) == 0 {
		e.logger.Debug().Str("pattern", pattern).Msg("Pattern matches the project root only, ignoring")
		return nil
	}

	var out []string
	e.walk(e.root, segs, &out)
	return out
}

func (e *expander) walk(dir string, segs []string, out *[]string) {
	if len(segs) == 0 {
		*out = append(*out, dir)
		return
	}

	seg := segs[0]
	switch {
	case seg == "**":
		e.walk(dir, segs[1:], out)
		for _, child := range e.children(dir, seg, false) {
			e.walk(child, segs, out)
		}
	case !hasMeta(seg):
		next := filepath.Join(dir, seg)
		if e.isDir(next) {
			e.walk(next, segs[1:], out)
		}
	default:
		for _, child := range e.children(dir, seg, true) {
			e.walk(child, segs[1:], out)
		}
	}
}

// children lists the subdirectories of dir whose names match seg. Hidden
// entries only match segments that themselves start with a dot. Symlinked
// directories are followed unless recursing for "**".
func (e *expander) children(dir, seg string, followLinks bool) []string {
	entries, err := e.fsys.ReadDir(dir)
	if err != nil {
		e.logSkip(dir, err)
		return nil
	}

	var out []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(seg, ".") {
			continue
		}

		if seg != "**" {
			matched, err := doublestar.Match(seg, name)
			if err != nil {
				e.logger.Warn().Err(err).Str("segment", seg).Msg("Invalid pattern segment")
				return nil
			}
			if !matched {
				continue
			}
		}

		full := filepath.Join(dir, name)
		switch {
		case entry.IsDir():
			out = append(out, full)
		case entry.Type()&fs.ModeSymlink != 0 && followLinks && e.isDir(full):
			out = append(out, full)
		}
	}
	return out
}

func (e *expander) isDir(p string) bool {
	info, err := e.fsys.Stat(p)
	if err != nil {
		e.logSkip(p, err)
		return false
	}
	return info.IsDir()
}

func (e *expander) logSkip(p string, err error) {
	if stderrors.Is(err, fs.ErrNotExist) {
		e.logger.Trace().Str("path", p).Msg("Path does not exist")
		return
	}
	e.logger.Warn().Err(err).Str("path", p).Msg("Cannot read directory, skipping")
}

// splitPattern cleans a slash-separated pattern into its segments, dropping
// "." and empty segments.
func splitPattern(pattern string) []string {
	cleaned := path.Clean(strings.TrimSpace(pattern))
	var segs []string
	for _, seg := range strings.Split(cleaned, "/") {
		if seg == "" || seg == "." {
			continue
		}
		segs = append(segs, seg)
	}
	return segs
}

func hasMeta(seg string) bool {
	return strings.ContainsAny(seg, `*?[{\`)
}
