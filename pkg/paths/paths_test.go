package paths

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/bwillis/packs/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	root := filepath.FromSlash("/project")

	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"relative file", "packs/my_pack/file.rb", "packs/my_pack/file.rb", true},
		{"dot slash prefix", "./packs/my_pack/file.rb", "packs/my_pack/file.rb", true},
		{"trailing slash", "packs/my_pack/", "packs/my_pack", true},
		{"duplicate separators", "packs//my_pack///file.rb", "packs/my_pack/file.rb", true},
		{"inner dot dot", "packs/other/../my_pack/file.rb", "packs/my_pack/file.rb", true},
		{"absolute under root", filepath.Join(root, "packs", "my_pack", "file.rb"), "packs/my_pack/file.rb", true},
		{"absolute outside root", filepath.FromSlash("/elsewhere/file.rb"), "", false},
		{"escapes root", "../outside/file.rb", "", false},
		{"root itself", ".", "", false},
		{"absolute root itself", root, "", false},
		{"empty", "", "", false},
		{"null byte", "packs/\x00", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(root, tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRelName(t *testing.T) {
	root := filepath.FromSlash("/project")

	name, err := RelName(root, filepath.Join(root, "packs", "my_pack", "subpack"))
	require.NoError(t, err)
	assert.Equal(t, "packs/my_pack/subpack", name)
}

func TestResolveRoot(t *testing.T) {
	t.Run("relative becomes absolute", func(t *testing.T) {
		got, err := ResolveRoot("some/dir")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
		assert.True(t, strings.HasSuffix(filepath.ToSlash(got), "some/dir"))
	})

	t.Run("home expansion", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		got, err := ResolveRoot("~/app")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "app"), got)
	})

	t.Run("empty is invalid", func(t *testing.T) {
		_, err := ResolveRoot("")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestFindRoot_FromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvRoot, dir)

	root, usedFallback, err := FindRoot()
	require.NoError(t, err)
	assert.False(t, usedFallback)
	assert.Equal(t, filepath.Clean(dir), root)
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "x"), ExpandHome("~/x"))
	assert.Equal(t, "~other/x", ExpandHome("~other/x"))
	assert.Equal(t, "/abs", ExpandHome("/abs"))
	assert.Equal(t, "", ExpandHome(""))
}

func TestValidatePath(t *testing.T) {
	assert.NoError(t, ValidatePath("packs/a"))
	assert.Error(t, ValidatePath(""))
	assert.Error(t, ValidatePath(strings.Repeat("a", maxPathLength+1)))
	assert.Error(t, ValidatePath("a\x00b"))
}

func TestProjectRoot(t *testing.T) {
	explicit := t.TempDir()
	fromEnv := t.TempDir()
	t.Setenv(EnvRoot, fromEnv)

	root, err := ProjectRoot(explicit)
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(explicit), root)

	root, err = ProjectRoot("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(fromEnv), root)
}
