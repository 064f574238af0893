package packs

import (
	"github.com/bwillis/packs/pkg/errors"
	"github.com/bwillis/packs/pkg/logging"
	"github.com/bwillis/packs/pkg/types"
)

// Select looks up each name in order. Names that resolve are returned once
// each; the rest are reported in missing.
func (r *Registry) Select(names []string) (selected []types.Pack, missing []string) {
	logger := logging.GetLogger("packs.selection")

	seen := make(map[string]bool, len(names))
	for _, name := range NormalizePackNames(names) {
		pack, ok := r.Find(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		if seen[pack.Name] {
			continue
		}
		seen[pack.Name] = true
		selected = append(selected, pack)
		logger.Trace().Str("name", name).Msg("Selected pack")
	}

	logger.Debug().
		Int("selected", len(selected)).
		Int("missing", len(missing)).
		Msg("Selected packs")
	return selected, missing
}

// SelectAll is Select that fails when any name is missing.
func (r *Registry) SelectAll(names []string) ([]types.Pack, error) {
	selected, missing := r.Select(names)
	if len(missing) > 0 {
		return nil, errors.New(errors.ErrPackNotFound, "pack(s) not found").
			WithDetail("notFound", missing).
			WithDetail("available", r.Names())
	}
	return selected, nil
}

// GetPackNames returns a list of pack names
func GetPackNames(packs []types.Pack) []string {
	names := make([]string, len(packs))
	for i, pack := range packs {
		names[i] = pack.Name
	}
	return names
}
