package testutil

import (
	"github.com/bwillis/packs/pkg/filesystem"
	"github.com/bwillis/packs/pkg/types"
	"github.com/spf13/afero"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}
