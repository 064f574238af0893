package config

import (
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/bwillis/packs/pkg/errors"
)

// EnvPrefix is the prefix for environment variables read by LoadCLIDefaults
const EnvPrefix = "PACKS_"

// CLIDefaults holds command line defaults that can be set from the
// environment. Flags override them.
type CLIDefaults struct {
	Root    string `koanf:"root"`
	Format  string `koanf:"format"`
	Verbose int    `koanf:"verbose"`
}

var cliBase = map[string]interface{}{
	"root":    "",
	"format":  "auto",
	"verbose": 0,
}

// LoadCLIDefaults layers PACKS_ROOT, PACKS_FORMAT and PACKS_VERBOSE over
// the built-in defaults.
func LoadCLIDefaults() (CLIDefaults, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(cliBase, "."), nil); err != nil {
		return CLIDefaults{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load CLI defaults")
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if _, known := cliBase[key]; !known {
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return CLIDefaults{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	var out CLIDefaults
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &out, unmarshalConf); err != nil {
		return CLIDefaults{}, errors.Wrap(err, errors.ErrConfigValid, "invalid PACKS_* environment")
	}
	return out, nil
}
