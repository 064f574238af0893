package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bwillis/packs/pkg/filesystem"
	"github.com/bwillis/packs/pkg/paths"
	"github.com/bwillis/packs/pkg/types"
)

// MemRoot is the project root used by in-memory projects
const MemRoot = "/project"

// Project is a project tree under construction
type Project struct {
	t    *testing.T
	Root string
	FS   types.FS
}

// NewMemProject creates an empty project on an in-memory filesystem
func NewMemProject(t *testing.T) *Project {
	t.Helper()

	fsys := NewTestFS()
	require.NoError(t, fsys.MkdirAll(MemRoot, 0755))
	return &Project{t: t, Root: MemRoot, FS: fsys}
}

// NewTempProject creates an empty project in a real temporary directory
func NewTempProject(t *testing.T) *Project {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return &Project{t: t, Root: root, FS: filesystem.NewOS()}
}

// Path returns the absolute path of a root-relative, slash-separated path
func (p *Project) Path(rel string) string {
	return filepath.Join(p.Root, filepath.FromSlash(rel))
}

// Mkdir creates a directory (and parents) without a marker file
func (p *Project) Mkdir(rel string) string {
	p.t.Helper()

	dir := p.Path(rel)
	require.NoError(p.t, p.FS.MkdirAll(dir, 0755))
	return dir
}

// WriteFile writes content to a root-relative path, creating parents
func (p *Project) WriteFile(rel, content string) string {
	p.t.Helper()

	file := p.Path(rel)
	require.NoError(p.t, p.FS.MkdirAll(filepath.Dir(file), 0755))
	require.NoError(p.t, p.FS.WriteFile(file, []byte(content), 0644))
	return file
}

// WritePack creates a directory carrying an empty marker file
func (p *Project) WritePack(rel string) string {
	p.t.Helper()

	p.WriteFile(rel+"/"+paths.MarkerFile, "")
	return p.Path(rel)
}

// WriteConfig writes the declarative configuration file at the root
func (p *Project) WriteConfig(content string) string {
	p.t.Helper()

	return p.WriteFile(paths.ConfigFile, content)
}
