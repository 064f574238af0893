package packs

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/bwillis/packs/pkg/config"
	"github.com/bwillis/packs/pkg/errors"
	"github.com/bwillis/packs/pkg/filesystem"
	"github.com/bwillis/packs/pkg/logging"
	"github.com/bwillis/packs/pkg/paths"
	"github.com/bwillis/packs/pkg/registry"
	"github.com/bwillis/packs/pkg/types"
)

// Options configures a registry build.
type Options struct {
	// Root is the project root. Relative roots are resolved against the
	// working directory; "~" is expanded. Empty means paths.FindRoot.
	Root string

	// FS is the filesystem to scan. Defaults to the OS filesystem.
	FS types.FS

	// Settings is the programmatic configuration. A pack_paths entry in the
	// root's packs.yml overrides it.
	Settings config.Settings
}

// New resolves configuration for opts.Root and discovers its packs.
// Configuration errors are returned as is; see errors.IsConfigurationError.
func New(opts Options) (*Registry, error) {
	logger := logging.GetLogger("packs.discovery")
	done := logging.LogOperationStart(logger, "build registry")
	defer done()

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	root, err := paths.ProjectRoot(opts.Root)
	if err != nil {
		return nil, err
	}
	if err := validateRoot(fsys, root); err != nil {
		return nil, err
	}

	cfg, err := config.Resolve(fsys, root, opts.Settings)
	if err != nil {
		return nil, err
	}

	return build(fsys, root, *cfg), nil
}

// Discover expands patterns under root without consulting packs.yml. It
// never fails: unreadable directories are logged and skipped, and a root
// with no matches yields an empty registry.
func Discover(fsys types.FS, root string, patterns []string) *Registry {
	cfg := config.Config{
		PackPaths: append([]string(nil), patterns...),
		Source:    config.SourceProgrammatic,
		File:      filepath.Join(root, paths.ConfigFile),
	}
	return build(fsys, filepath.Clean(root), cfg)
}

func build(fsys types.FS, root string, cfg config.Config) *Registry {
	defer logging.LogDuration(time.Now(), "discover packs")

	logger := logging.WithFields(map[string]interface{}{
		"component": "packs.discovery",
		"root":      root,
	})
	exp := &expander{fsys: fsys, root: root, logger: logger}

	store := registry.New[types.Pack]()
	// resolved directory -> pack name, so symlinked aliases collapse
	seen := make(map[string]string)
	for _, pattern := range cfg.PackPaths {
		matches := exp.expand(pattern)
		logger.Trace().Str("pattern", pattern).Int("candidates", len(matches)).Msg("Expanded pattern")

		for _, dir := range matches {
			name, err := paths.RelName(root, dir)
			if err != nil {
				logger.Warn().Err(err).Str("path", dir).Msg("Candidate outside project root, skipping")
				continue
			}
			if name == "." || store.Has(name) {
				continue
			}

			resolved := resolveDir(fsys, dir)
			if first, ok := seen[resolved]; ok {
				logger.Debug().Str("name", name).Str("pack", first).
					Msg("Candidate resolves to an existing pack, skipping")
				continue
			}

			pack := types.Pack{Name: name, Path: dir}
			marked, err := pack.FileExists(fsys, paths.MarkerFile)
			if err != nil {
				logger.Warn().Err(err).Str("pack", name).Msg("Cannot check marker file, skipping")
				continue
			}
			if !marked {
				logger.Trace().Str("path", dir).Msg("No marker file, not a pack")
				continue
			}

			if err := store.Register(name, pack); err != nil {
				logger.Error().Err(err).Str("pack", name).Msg("Failed to register pack")
				continue
			}
			seen[resolved] = name
			logger.Trace().Str("name", name).Str("path", dir).Msg("Found pack")
		}
	}
	store.Seal()

	logger.Info().
		Int("count", store.Count()).
		Str("source", string(cfg.Source)).
		Msg("Discovered packs")

	return newRegistry(root, cfg, store)
}

// resolveDir returns dir with symlinks resolved when fsys supports it, and
// dir unchanged otherwise.
func resolveDir(fsys types.FS, dir string) string {
	if lr, ok := fsys.(types.LinkResolver); ok {
		if resolved, err := lr.EvalSymlinks(dir); err == nil {
			return resolved
		}
	}
	return filepath.Clean(dir)
}

func validateRoot(fsys types.FS, root string) error {
	info, err := fsys.Stat(root)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.Wrap(err, errors.ErrNotFound, "project root does not exist").
				WithDetail("path", root)
		}
		return errors.Wrap(err, errors.ErrFileAccess, "cannot access project root").
			WithDetail("path", root)
	}

	if !info.IsDir() {
		return errors.New(errors.ErrInvalidInput, "project root is not a directory").
			WithDetail("path", root)
	}
	return nil
}
