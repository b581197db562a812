package update

import "strings"

// ModKind classifies a working-tree modification.
type ModKind string

const (
	ModKindModified  ModKind = "Modified"
	ModKindAdded     ModKind = "Added"
	ModKindDeleted   ModKind = "Deleted"
	ModKindUntracked ModKind = "Untracked"
)

// Modification is one entry from a porcelain status scan.
type Modification struct {
	Path string
	Kind ModKind
}

// ParseModifications converts porcelain status lines into typed entries.
// Lines that do not carry a recognizable two-character code and a path are
// dropped.
func ParseModifications(lines []string) []Modification {
	mods := make([]Modification, 0, len(lines))
	for _, line := range lines {
		if len(line) < 4 {
			continue
		}
		code := line[:2]
		path := strings.TrimSpace(line[3:])
		if path == "" {
			continue
		}
		kind, ok := kindForCode(code)
		if !ok {
			continue
		}
		mods = append(mods, Modification{Path: path, Kind: kind})
	}
	return mods
}

// kindForCode maps a porcelain XY code to a modification kind. The index and
// worktree columns are collapsed: any M wins over A/D so a partially staged
// edit still reads as modified.
func kindForCode(code string) (ModKind, bool) {
	if code == "??" {
		return ModKindUntracked, true
	}
	if strings.Contains(code, "M") || strings.Contains(code, "R") {
		return ModKindModified, true
	}
	if strings.Contains(code, "A") {
		return ModKindAdded, true
	}
	if strings.Contains(code, "D") {
		return ModKindDeleted, true
	}
	return "", false
}
