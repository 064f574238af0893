// Package testutil provides project builders for tests.
//
// A Project is a directory tree rooted at Root, backed either by an
// in-memory afero filesystem (NewMemProject) or by a real temporary
// directory (NewTempProject). Most tests should use the in-memory variant;
// the temp-dir variant exists for permission and OS-specific cases.
package testutil
