package config

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"

	"github.com/bwillis/packs/pkg/errors"
	"github.com/bwillis/packs/pkg/logging"
	"github.com/bwillis/packs/pkg/paths"
	"github.com/bwillis/packs/pkg/types"
)

const packPathsKey = "pack_paths"

var (
	defaultsOnce sync.Once
	defaultPaths []string
)

// DefaultPackPaths returns the built-in patterns, read from the embedded
// packs.yml.
func DefaultPackPaths() []string {
	defaultsOnce.Do(func() {
		decoded, defined, err := decodePackPaths(defaultFile)
		if err != nil || !defined {
			logger := logging.GetLogger("config")
			logger.Error().Err(err).Msg("embedded defaults are invalid")
			decoded = []string{"packs/**"}
		}
		defaultPaths = decoded
	})
	return append([]string(nil), defaultPaths...)
}

// Resolve merges the declarative packs.yml under root with the programmatic
// settings. The declarative file wins whenever it defines pack_paths, even as
// an empty list.
func Resolve(fsys types.FS, root string, programmatic Settings) (*Config, error) {
	logger := logging.GetLogger("config")
	file := filepath.Join(root, paths.ConfigFile)

	declared, defined, err := loadDeclarative(fsys, file)
	if err != nil {
		return nil, err
	}

	cfg := &Config{File: file}
	switch {
	case defined:
		cfg.PackPaths = declared
		cfg.Source = SourceDeclarative
	case programmatic.PackPaths != nil:
		cfg.PackPaths = programmatic.Clone().PackPaths
		cfg.Source = SourceProgrammatic
	default:
		cfg.PackPaths = DefaultPackPaths()
		cfg.Source = SourceDefault
	}

	if err := ValidatePatterns(cfg.PackPaths); err != nil {
		if perr, ok := err.(*errors.PacksError); ok {
			perr.WithDetail("source", string(cfg.Source))
		}
		return nil, err
	}

	logger.Debug().
		Str("source", string(cfg.Source)).
		Str("file", file).
		Strs("pack_paths", cfg.PackPaths).
		Msg("Resolved pack paths")

	return cfg, nil
}

// loadDeclarative reads pack_paths from file. A missing file is not an error.
func loadDeclarative(fsys types.FS, file string) ([]string, bool, error) {
	logger := logging.GetLogger("config")

	data, err := fsys.ReadFile(file)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			logger.Trace().Str("file", file).Msg("No declarative config")
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read %s", paths.ConfigFile).
			WithDetail("file", file)
	}

	declared, defined, err := decodePackPaths(data)
	if err != nil {
		if perr, ok := err.(*errors.PacksError); ok {
			return nil, false, perr.WithDetail("file", file)
		}
		return nil, false, err
	}
	return declared, defined, nil
}

// decodePackPaths parses a packs.yml payload. The bool reports whether
// pack_paths is defined; an explicit null counts as undefined.
func decodePackPaths(data []byte) ([]string, bool, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: data}, kyaml.Parser()); err != nil {
		return nil, false, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse %s", paths.ConfigFile)
	}

	if k.Get(packPathsKey) == nil {
		return nil, false, nil
	}

	var out []string
	err := k.UnmarshalWithConf(packPathsKey, &out, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: false,
			ErrorUnused:      true,
		},
	})
	if err != nil {
		return nil, false, errors.Wrapf(err, errors.ErrConfigValid, "%s must be a list of strings", packPathsKey)
	}
	if out == nil {
		out = []string{}
	}
	return out, true, nil
}
