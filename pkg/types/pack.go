package types

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Pack represents one discovered package directory
type Pack struct {
	// Name is the pack's path relative to the project root, always with
	// forward slashes (e.g. "packs/my_pack"). Unique within a registry.
	Name string

	// Path is the absolute path to the pack directory
	Path string
}

// LastName returns the final segment of the pack name
func (p Pack) LastName() string {
	return path.Base(p.Name)
}

// Owns reports whether the root-relative, slash-separated path is the pack
// root itself or lies beneath it. Matching is on whole segments, so
// "packs/a" does not own "packs/a_b/file.rb".
func (p Pack) Owns(relPath string) bool {
	return relPath == p.Name || strings.HasPrefix(relPath, p.Name+"/")
}

// FilePath returns the full path to a file within the pack
func (p Pack) FilePath(filename string) string {
	return filepath.Join(p.Path, filepath.FromSlash(filename))
}

// FileExists checks if a file exists within the pack
func (p Pack) FileExists(fs FS, filename string) (bool, error) {
	info, err := fs.Stat(p.FilePath(filename))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		// For other errors (permission denied, etc.), return the error
		return false, err
	}
	return !info.IsDir(), nil
}
