// Package paths provides centralized path handling for packs.
//
// It handles:
//
//   - Project root discovery (PACKS_ROOT, git toplevel, working directory)
//   - Conventional file names (packs.yml, package.yml)
//   - Normalization of arbitrary paths to root-relative, slash-separated form
//
// # Environment Variables
//
//   - PACKS_ROOT: project root to scan (default: git toplevel, then cwd)
//
// # Usage
//
//	root, usedFallback, err := paths.FindRoot()
//	rel, ok := paths.Normalize(root, "/abs/project/packs/a/file.rb")
//	// rel == "packs/a/file.rb", ok == true
package paths
