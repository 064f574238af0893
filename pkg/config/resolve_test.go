package config_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwillis/packs/pkg/config"
	"github.com/bwillis/packs/pkg/errors"
	"github.com/bwillis/packs/pkg/testutil"
	"github.com/bwillis/packs/pkg/types"
)

func TestResolve_Precedence(t *testing.T) {
	tests := []struct {
		name         string
		file         string // empty means no packs.yml
		programmatic config.Settings
		wantPaths    []string
		wantSource   config.Source
	}{
		{
			name:       "nothing configured uses defaults",
			wantPaths:  []string{"packs/**"},
			wantSource: config.SourceDefault,
		},
		{
			name:         "programmatic used without a file",
			programmatic: config.Settings{PackPaths: []string{"packs/*", "components/*"}},
			wantPaths:    []string{"packs/*", "components/*"},
			wantSource:   config.SourceProgrammatic,
		},
		{
			name:       "declarative used without programmatic",
			file:       "pack_paths:\n  - packs/*\n  - components/*\n",
			wantPaths:  []string{"packs/*", "components/*"},
			wantSource: config.SourceDeclarative,
		},
		{
			name:         "declarative beats programmatic",
			file:         "pack_paths:\n  - packs/*\n  - components/*\n",
			programmatic: config.Settings{PackPaths: []string{"packages/*"}},
			wantPaths:    []string{"packs/*", "components/*"},
			wantSource:   config.SourceDeclarative,
		},
		{
			name:         "file without pack_paths defers to programmatic",
			file:         "owner: platform\n",
			programmatic: config.Settings{PackPaths: []string{"packages/*"}},
			wantPaths:    []string{"packages/*"},
			wantSource:   config.SourceProgrammatic,
		},
		{
			name:         "null pack_paths is undefined",
			file:         "pack_paths:\n",
			programmatic: config.Settings{PackPaths: []string{"packages/*"}},
			wantPaths:    []string{"packages/*"},
			wantSource:   config.SourceProgrammatic,
		},
		{
			name:         "empty declarative list still wins",
			file:         "pack_paths: []\n",
			programmatic: config.Settings{PackPaths: []string{"packages/*"}},
			wantPaths:    []string{},
			wantSource:   config.SourceDeclarative,
		},
		{
			name:         "empty programmatic list beats defaults",
			programmatic: config.Settings{PackPaths: []string{}},
			wantPaths:    []string{},
			wantSource:   config.SourceProgrammatic,
		},
		{
			name:       "empty file uses defaults",
			file:       "\n",
			wantPaths:  []string{"packs/**"},
			wantSource: config.SourceDefault,
		},
		{
			name:       "declarative order is preserved",
			file:       "pack_paths: [components/*, packs/*, packs/*]\n",
			wantPaths:  []string{"components/*", "packs/*", "packs/*"},
			wantSource: config.SourceDeclarative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testutil.NewMemProject(t)
			if tt.file != "" {
				p.WriteConfig(tt.file)
			}

			cfg, err := config.Resolve(p.FS, p.Root, tt.programmatic)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPaths, cfg.PackPaths)
			assert.Equal(t, tt.wantSource, cfg.Source)
			assert.Equal(t, p.Path("packs.yml"), cfg.File)
		})
	}
}

func TestResolve_DoesNotAliasSettings(t *testing.T) {
	p := testutil.NewMemProject(t)
	settings := config.Settings{PackPaths: []string{"packs/*"}}

	cfg, err := config.Resolve(p.FS, p.Root, settings)
	require.NoError(t, err)

	settings.PackPaths[0] = "changed/*"
	assert.Equal(t, []string{"packs/*"}, cfg.PackPaths)
}

func TestResolve_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name         string
		file         string
		programmatic config.Settings
		wantCode     errors.ErrorCode
	}{
		{"malformed yaml", "pack_paths: [packs/*\n", config.Settings{}, errors.ErrConfigParse},
		{"top level list", "- packs/*\n", config.Settings{}, errors.ErrConfigParse},
		{"scalar pack_paths", "pack_paths: packs/*\n", config.Settings{}, errors.ErrConfigValid},
		{"mapping pack_paths", "pack_paths:\n  packs: '*'\n", config.Settings{}, errors.ErrConfigValid},
		{"non string entry", "pack_paths:\n  - packs/*\n  - 42\n", config.Settings{}, errors.ErrConfigValid},
		{"nested list entry", "pack_paths:\n  - [packs/*]\n", config.Settings{}, errors.ErrConfigValid},
		{"absolute pattern", "pack_paths: [/etc/*]\n", config.Settings{}, errors.ErrConfigValid},
		{"escaping pattern", "pack_paths: ['../other/*']\n", config.Settings{}, errors.ErrConfigValid},
		{"empty pattern", "pack_paths: ['']\n", config.Settings{}, errors.ErrConfigValid},
		{"bad glob", "pack_paths: ['packs/[a']\n", config.Settings{}, errors.ErrConfigValid},
		{"bad programmatic pattern", "", config.Settings{PackPaths: []string{"packs/{a"}}, errors.ErrConfigValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testutil.NewMemProject(t)
			if tt.file != "" {
				p.WriteConfig(tt.file)
			}

			cfg, err := config.Resolve(p.FS, p.Root, tt.programmatic)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
			assert.True(t, errors.IsConfigurationError(err))
		})
	}
}

// unreadableFS fails every read of the config file with a permission error.
type unreadableFS struct {
	types.FS
}

func (u unreadableFS) ReadFile(name string) ([]byte, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
}

func TestResolve_UnreadableFile(t *testing.T) {
	p := testutil.NewMemProject(t)
	p.WriteConfig("pack_paths: [packs/*]\n")

	_, err := config.Resolve(unreadableFS{p.FS}, p.Root, config.Settings{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	assert.True(t, errors.IsConfigurationError(err))
	assert.Equal(t, p.Path("packs.yml"), errors.GetErrorDetails(err)["file"])
}

func TestDefaultPackPaths_ReturnsCopy(t *testing.T) {
	first := config.DefaultPackPaths()
	first[0] = "mutated/*"

	assert.Equal(t, []string{"packs/**"}, config.DefaultPackPaths())
}

func TestDefaultFileContent_IsValidConfig(t *testing.T) {
	p := testutil.NewMemProject(t)
	p.WriteConfig(string(config.DefaultFileContent()))

	cfg, err := config.Resolve(p.FS, p.Root, config.Settings{PackPaths: []string{"other/*"}})
	require.NoError(t, err)
	assert.Equal(t, config.SourceDeclarative, cfg.Source)
	assert.Equal(t, config.DefaultPackPaths(), cfg.PackPaths)
}

func TestSettingsClone(t *testing.T) {
	assert.Nil(t, config.Settings{}.Clone().PackPaths)

	orig := config.Settings{PackPaths: []string{"packs/*"}}
	clone := orig.Clone()
	clone.PackPaths[0] = "x/*"
	assert.Equal(t, "packs/*", orig.PackPaths[0])

	empty := config.Settings{PackPaths: []string{}}.Clone()
	assert.NotNil(t, empty.PackPaths)
	assert.Empty(t, empty.PackPaths)
}
