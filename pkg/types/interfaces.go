package types

import "io/fs"

// FS is the filesystem surface used by configuration loading and pack
// discovery. Implementations live in pkg/filesystem.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error
}

// LinkResolver is implemented by filesystems that can resolve symbolic
// links. Discovery uses it to treat two names for one directory as one pack.
type LinkResolver interface {
	EvalSymlinks(path string) (string, error)
}
