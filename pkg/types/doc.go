// Package types defines the core types and interfaces shared across packs:
// the Pack entity, the filesystem abstraction used by discovery, and the
// result structures rendered by the command-line interface.
package types
