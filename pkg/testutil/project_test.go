package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectBuilders(t *testing.T) {
	builders := map[string]func(*testing.T) *Project{
		"memory":  NewMemProject,
		"tempdir": NewTempProject,
	}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			p := build(t)

			dir := p.WritePack("packs/my_pack")
			info, err := p.FS.Stat(dir)
			require.NoError(t, err)
			assert.True(t, info.IsDir())

			marker, err := p.FS.ReadFile(p.Path("packs/my_pack/package.yml"))
			require.NoError(t, err)
			assert.Empty(t, marker)

			p.WriteConfig("pack_paths:\n  - packs/*\n")
			data, err := p.FS.ReadFile(p.Path("packs.yml"))
			require.NoError(t, err)
			assert.Contains(t, string(data), "packs/*")

			p.Mkdir("components/empty")
			_, err = p.FS.Stat(p.Path("components/empty/package.yml"))
			assert.True(t, os.IsNotExist(err))
		})
	}
}
