package config

// Settings is the programmatic configuration source.
type Settings struct {
	// PackPaths lists pack path patterns. nil means unset; a non-nil empty
	// slice explicitly configures no patterns.
	PackPaths []string
}

// Clone returns a deep copy of s.
func (s Settings) Clone() Settings {
	if s.PackPaths == nil {
		return Settings{}
	}
	out := make([]string, len(s.PackPaths))
	copy(out, s.PackPaths)
	return Settings{PackPaths: out}
}

// Source names the configuration source that supplied pack_paths.
type Source string

const (
	SourceDeclarative  Source = "declarative"
	SourceProgrammatic Source = "programmatic"
	SourceDefault      Source = "default"
)

// Config is the resolved configuration for one registry build.
type Config struct {
	// PackPaths are the ordered patterns to expand
	PackPaths []string

	// Source records which source won
	Source Source

	// File is the declarative file that was consulted, whether or not it
	// existed
	File string
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := c
	out.PackPaths = append([]string(nil), c.PackPaths...)
	return out
}
