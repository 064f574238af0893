package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra/doc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwillis/packs/pkg/errors"
	"github.com/bwillis/packs/pkg/testutil"
	"github.com/bwillis/packs/pkg/types"
)

// cliProject returns a temp project with the environment isolated from
// the caller's PACKS_* settings and log directory.
func cliProject(t *testing.T) *testutil.Project {
	t.Helper()

	t.Setenv("XDG_STATE_HOME", t.TempDir())
	for _, key := range []string{"PACKS_ROOT", "PACKS_FORMAT", "PACKS_VERBOSE", "NO_COLOR"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return testutil.NewTempProject(t)
}

func runCLI(t *testing.T, args ...string) (string, string, int) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func TestList(t *testing.T) {
	p := cliProject(t)
	p.WritePack("packs/b")
	p.WritePack("packs/a")
	p.WritePack("packs/a/nested")
	p.Mkdir("packs/not_a_pack")

	stdout, _, code := runCLI(t, "list", "--root", p.Root, "--format", "text")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "packs/a\npacks/a/nested\npacks/b\n", stdout)
}

func TestList_JSON(t *testing.T) {
	p := cliProject(t)
	p.WritePack("packs/a")

	stdout, _, code := runCLI(t, "list", "--root", p.Root, "--format", "json")
	require.Equal(t, exitOK, code)

	var result types.ListPacksResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, p.Root, result.Root)
	require.Len(t, result.Packs, 1)
	assert.Equal(t, "packs/a", result.Packs[0].Name)
	assert.Equal(t, p.Path("packs/a"), result.Packs[0].Path)
}

func TestList_EmptyProjectPrintsEmptyArray(t *testing.T) {
	p := cliProject(t)

	stdout, _, code := runCLI(t, "list", "--root", p.Root, "--format", "json")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, `"packs": []`)
}

func TestList_DeclarativeConfig(t *testing.T) {
	p := cliProject(t)
	p.WriteConfig("pack_paths:\n  - components/*\n")
	p.WritePack("components/api")
	p.WritePack("packs/ignored")

	stdout, _, code := runCLI(t, "ls", "--root", p.Root, "--format", "text")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "components/api\n", stdout)
}

func TestConfigurationErrorExitCode(t *testing.T) {
	tests := []struct {
		name   string
		config string
	}{
		{"malformed yaml", "pack_paths: [unclosed\n"},
		{"wrong type", "pack_paths: 3\n"},
		{"invalid pattern", "pack_paths:\n  - ../outside/*\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := cliProject(t)
			p.WriteConfig(tt.config)

			stdout, stderr, code := runCLI(t, "list", "--root", p.Root, "--format", "text")

			assert.Equal(t, exitConfig, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "Error:")
			assert.Contains(t, stderr, "CONFIG_")
		})
	}
}

func TestFind(t *testing.T) {
	p := cliProject(t)
	p.WritePack("packs/a")

	t.Run("found", func(t *testing.T) {
		stdout, _, code := runCLI(t, "find", "packs/a/", "--root", p.Root, "--format", "text")
		assert.Equal(t, exitOK, code)
		assert.Equal(t, "packs/a\t"+p.Path("packs/a")+"\n", stdout)
	})

	t.Run("missing", func(t *testing.T) {
		stdout, stderr, code := runCLI(t, "find", "packs/a", "packs/x", "--root", p.Root, "--format", "text")
		assert.Equal(t, exitError, code)
		assert.Contains(t, stdout, "packs/x\t-\n")
		assert.Contains(t, stderr, "PACK_NOT_FOUND")
	})

	t.Run("requires a name", func(t *testing.T) {
		_, _, code := runCLI(t, "find", "--root", p.Root)
		assert.Equal(t, exitError, code)
	})
}

func TestForFile(t *testing.T) {
	p := cliProject(t)
	p.WritePack("packs/a")
	p.WritePack("packs/a/b")
	inner := p.WriteFile("packs/a/b/lib/x.rb", "")
	outer := p.WriteFile("packs/a/app/y.rb", "")
	loose := p.WriteFile("lib/z.rb", "")

	stdout, _, code := runCLI(t, "for-file", inner, outer, loose, "--root", p.Root, "--format", "text")

	assert.Equal(t, exitOK, code)
	assert.Equal(t,
		inner+"\tpacks/a/b\n"+
			outer+"\tpacks/a\n"+
			loose+"\t-\n",
		stdout)
}

func TestForFile_RelativeToWorkingDirectory(t *testing.T) {
	p := cliProject(t)
	p.WritePack("packs/a")
	p.WriteFile("packs/a/app/y.rb", "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(p.Path("packs/a")))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	stdout, _, code := runCLI(t, "for-file", "app/y.rb", "--root", p.Root, "--format", "text")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "app/y.rb\tpacks/a\n", stdout)
}

func TestConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := cliProject(t)

		stdout, _, code := runCLI(t, "config", "--root", p.Root, "--format", "json")
		require.Equal(t, exitOK, code)

		var result types.ConfigResult
		require.NoError(t, json.Unmarshal([]byte(stdout), &result))
		assert.Equal(t, "default", result.Source)
		assert.Equal(t, []string{"packs/**"}, result.PackPaths)
		assert.Equal(t, filepath.Join(p.Root, "packs.yml"), result.File)
	})

	t.Run("write then refuse to overwrite", func(t *testing.T) {
		p := cliProject(t)

		stdout, _, code := runCLI(t, "config", "--write", "--root", p.Root, "--format", "text")
		require.Equal(t, exitOK, code)
		assert.Contains(t, stdout, "Wrote "+p.Path("packs.yml"))
		assert.Contains(t, stdout, "source: declarative")
		assert.FileExists(t, p.Path("packs.yml"))

		_, stderr, code := runCLI(t, "config", "-w", "--root", p.Root, "--format", "text")
		assert.Equal(t, exitError, code)
		assert.Contains(t, stderr, "ALREADY_EXISTS")
	})
}

func TestEnvironmentDefaults(t *testing.T) {
	p := cliProject(t)
	p.WritePack("packs/a")
	t.Setenv("PACKS_ROOT", p.Root)
	t.Setenv("PACKS_FORMAT", "yaml")

	stdout, _, code := runCLI(t, "list")

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "name: packs/a")
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	p := cliProject(t)
	p.WritePack("packs/a")
	t.Setenv("PACKS_FORMAT", "yaml")

	stdout, _, code := runCLI(t, "list", "--root", p.Root, "--format", "text")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "packs/a\n", stdout)
}

func TestUnknownFormat(t *testing.T) {
	p := cliProject(t)

	_, stderr, code := runCLI(t, "list", "--root", p.Root, "--format", "xml")

	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "INVALID_INPUT")
}

func TestMissingRoot(t *testing.T) {
	cliProject(t)

	_, stderr, code := runCLI(t, "list", "--root", filepath.Join(t.TempDir(), "absent"))

	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "Error:")
}

func TestNoCommand(t *testing.T) {
	cliProject(t)

	stdout, _, code := runCLI(t)

	assert.Equal(t, exitError, code)
	assert.Contains(t, stdout, "USAGE")
}

func TestVersion(t *testing.T) {
	cliProject(t)

	stdout, _, code := runCLI(t, "version")

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "packs version")
}

func TestDocs(t *testing.T) {
	cliProject(t)

	t.Run("index", func(t *testing.T) {
		stdout, _, code := runCLI(t, "docs")
		assert.Equal(t, exitOK, code)
		assert.Contains(t, stdout, "patterns")
		assert.Contains(t, stdout, "ownership")
	})

	t.Run("topic", func(t *testing.T) {
		stdout, _, code := runCLI(t, "docs", "patterns")
		assert.Equal(t, exitOK, code)
		assert.Contains(t, stdout, "package.yml")
	})

	t.Run("help topic", func(t *testing.T) {
		stdout, _, code := runCLI(t, "help", "ownership")
		assert.Equal(t, exitOK, code)
		assert.Contains(t, stdout, "deepest pack")
	})

	t.Run("unknown topic", func(t *testing.T) {
		_, _, code := runCLI(t, "docs", "nope")
		assert.Equal(t, exitError, code)
	})
}

func TestCompletion(t *testing.T) {
	cliProject(t)

	stdout, _, code := runCLI(t, "completion", "bash")

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "packs")
}

func TestWriteCompletion_UnknownShell(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCompletion(NewRootCmd(), "tcsh", &buf)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Empty(t, buf.String())
}

func TestManPage(t *testing.T) {
	var buf bytes.Buffer
	header := &doc.GenManHeader{Title: "PACKS", Section: "1"}

	require.NoError(t, doc.GenMan(NewRootCmd(), header, &buf))
	assert.Contains(t, buf.String(), "for-file")
}
