package packs

import (
	"sort"

	"github.com/bwillis/packs/pkg/config"
	"github.com/bwillis/packs/pkg/errors"
	"github.com/bwillis/packs/pkg/registry"
	"github.com/bwillis/packs/pkg/types"
)

// Registry is an immutable snapshot of the packs found in one project.
// All methods are safe for concurrent use.
type Registry struct {
	root  string
	cfg   config.Config
	packs registry.Registry[types.Pack]

	// byLength holds the packs ordered by descending name length so the
	// first owner found by ForFile is the most specific one.
	byLength []types.Pack
}

func newRegistry(root string, cfg config.Config, store registry.Registry[types.Pack]) *Registry {
	byLength := store.Values()
	sort.SliceStable(byLength, func(i, j int) bool {
		return len(byLength[i].Name) > len(byLength[j].Name)
	})

	return &Registry{
		root:     root,
		cfg:      cfg.Clone(),
		packs:    store,
		byLength: byLength,
	}
}

// Root returns the absolute project root
func (r *Registry) Root() string {
	return r.root
}

// Config returns the configuration the snapshot was built from
func (r *Registry) Config() config.Config {
	return r.cfg.Clone()
}

// All returns every pack in discovery order.
func (r *Registry) All() []types.Pack {
	return r.packs.Values()
}

// Names returns the names of every pack in discovery order.
func (r *Registry) Names() []string {
	return r.packs.Names()
}

// Count returns the number of packs
func (r *Registry) Count() int {
	return r.packs.Count()
}

// Find returns the pack whose name is exactly name. Callers taking user
// input normalize it first; see Select.
func (r *Registry) Find(name string) (types.Pack, bool) {
	return r.packs.Lookup(name)
}

// MustFind is Find for callers that want an error when the pack is missing.
func (r *Registry) MustFind(name string) (types.Pack, error) {
	pack, ok := r.Find(name)
	if !ok {
		return types.Pack{}, errors.Newf(errors.ErrPackNotFound, "pack %q not found", name).
			WithDetail("name", name).
			WithDetail("available", r.Names())
	}
	return pack, nil
}
