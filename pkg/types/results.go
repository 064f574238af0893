package types

// ListPacksResult holds the result of the 'list' command.
type ListPacksResult struct {
	Root  string     `json:"root" yaml:"root" toml:"root"`
	Packs []PackInfo `json:"packs" yaml:"packs" toml:"packs"`
}

// PackInfo contains summary information about a single pack.
type PackInfo struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Path string `json:"path" yaml:"path" toml:"path"`
}

// NewPackInfo converts a pack for display.
func NewPackInfo(p Pack) PackInfo {
	return PackInfo{Name: p.Name, Path: p.Path}
}

// FindResult holds the result of the 'find' command. Missing lists the
// requested names that did not resolve to a pack.
type FindResult struct {
	Packs   []PackInfo `json:"packs" yaml:"packs" toml:"packs"`
	Missing []string   `json:"missing,omitempty" yaml:"missing,omitempty" toml:"missing,omitempty"`
}

// FileOwner pairs a queried path with its owning pack, if any.
type FileOwner struct {
	File  string `json:"file" yaml:"file" toml:"file"`
	Pack  string `json:"pack,omitempty" yaml:"pack,omitempty" toml:"pack,omitempty"`
	Owned bool   `json:"owned" yaml:"owned" toml:"owned"`
}

// ForFileResult holds the result of the 'for-file' command.
type ForFileResult struct {
	Files []FileOwner `json:"files" yaml:"files" toml:"files"`
}

// ConfigResult describes the resolved pack-path configuration.
type ConfigResult struct {
	Root      string   `json:"root" yaml:"root" toml:"root"`
	Source    string   `json:"source" yaml:"source" toml:"source"`
	File      string   `json:"file" yaml:"file" toml:"file"`
	PackPaths []string `json:"pack_paths" yaml:"pack_paths" toml:"pack_paths"`
}
