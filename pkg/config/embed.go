package config

import (
	_ "embed"
	"errors"
)

//go:embed embedded/packs.yml
var defaultFile []byte

// DefaultFileContent returns the packs.yml written by `packs config --write`.
// Its pack_paths are the built-in defaults.
func DefaultFileContent() []byte {
	out := make([]byte, len(defaultFile))
	copy(out, defaultFile)
	return out
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
