package packs

import (
	"github.com/bwillis/packs/pkg/paths"
	"github.com/bwillis/packs/pkg/types"
)

// ForFile returns the pack that owns path: the pack with the longest name
// that is path itself or a parent directory of it. Relative paths are taken
// relative to the project root; absolute paths must lie under it.
func (r *Registry) ForFile(path string) (types.Pack, bool) {
	rel, ok := paths.Normalize(r.root, path)
	if !ok {
		return types.Pack{}, false
	}

	for _, pack := range r.byLength {
		if pack.Owns(rel) {
			return pack, true
		}
	}
	return types.Pack{}, false
}

// ForFiles resolves many paths at once. Unowned paths are absent from the
// result.
func (r *Registry) ForFiles(paths []string) map[string]types.Pack {
	owners := make(map[string]types.Pack, len(paths))
	for _, p := range paths {
		if pack, ok := r.ForFile(p); ok {
			owners[p] = pack
		}
	}
	return owners
}
