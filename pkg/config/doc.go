// Package config resolves which directories are searched for packs.
//
// Two sources compete. The declarative source is the packs.yml file at the
// project root; the programmatic source is a Settings value supplied by the
// embedding program. When packs.yml defines pack_paths it wins outright,
// otherwise programmatic settings apply, otherwise the built-in defaults.
//
// A second, smaller layer (LoadCLIDefaults) reads PACKS_* environment
// variables for the command line tool.
package config
