// Package packs discovers packs in a project tree and answers questions
// about them.
//
// A pack is a directory, matched by one of the configured pack path
// patterns, that contains a package.yml marker file. Discovery produces a
// Registry: an immutable snapshot that supports listing, lookup by name
// (Find) and ownership of arbitrary files (ForFile). Nested packs are
// allowed; a file belongs to the deepest pack whose directory contains it.
//
// Programs that want a single shared snapshot can use Configure, Load,
// Reload and BustCache. Rebuilding never mutates a snapshot that callers
// already hold.
package packs
