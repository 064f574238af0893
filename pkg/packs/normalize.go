package packs

import "strings"

// NormalizePackName removes trailing slashes and a leading "./" from a pack
// name. Shell completion adds trailing slashes to directory names.
func NormalizePackName(name string) string {
	name = strings.TrimPrefix(name, "./")
	return strings.TrimRight(name, "/")
}

// NormalizePackNames removes trailing slashes from all pack names in the slice.
func NormalizePackNames(names []string) []string {
	normalized := make([]string, len(names))
	for i, name := range names {
		normalized[i] = NormalizePackName(name)
	}
	return normalized
}
