// Package managed defines the allow-list of paths the updater owns.
//
// Every destructive operation (clean, delete, mirror) must route its file
// lists through a Filter first; paths outside the allow-list never influence
// what the tool writes or removes.
package managed

import "strings"

// Filter restricts relative repository paths to the managed allow-list.
// A path matches when it lives under one of the directory Prefixes or when it
// equals (or extends) one of the top-level Files.
type Filter struct {
	Prefixes []string
	Files    []string
}

// DefaultFilter returns the allow-list of toolkit paths skillkit manages.
func DefaultFilter() Filter {
	return Filter{
		Prefixes: []string{"agents/", "commands/", "scripts/", "skills/"},
		Files:    []string{"CHANGELOG.md", "CLAUDE.md", "Makefile"},
	}
}

// Match reports whether path falls inside the managed allow-list.
func (f Filter) Match(path string) bool {
	if path == "" {
		return false
	}
	for _, prefix := range f.Prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	for _, file := range f.Files {
		if path == file || strings.HasPrefix(path, file) {
			return true
		}
	}
	return false
}

// Apply returns the subset of paths matching the allow-list, preserving order.
func (f Filter) Apply(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		if f.Match(path) {
			out = append(out, path)
		}
	}
	return out
}

// PrefixDirs returns the managed directory prefixes without trailing slashes,
// suitable for path-scoped git clean and directory walks.
func (f Filter) PrefixDirs() []string {
	dirs := make([]string, 0, len(f.Prefixes))
	for _, prefix := range f.Prefixes {
		dirs = append(dirs, strings.TrimSuffix(prefix, "/"))
	}
	return dirs
}
