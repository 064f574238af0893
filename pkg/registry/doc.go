// Package registry provides a generic, type-safe, insertion-ordered registry
// of named items. A registry can be sealed once populated, after which it is
// a read-only value that may be shared freely between goroutines.
package registry
