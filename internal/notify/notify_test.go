package notify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow(t *testing.T) {
	t.Helper()
	orig := now
	now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	}
	t.Cleanup(func() { now = orig })
}

func readNote(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	return string(data)
}

func TestWriteUpdate(t *testing.T) {
	fixedNow(t)
	dir := t.TempDir()

	err := WriteUpdate(dir, UpdateNote{
		LocalVersion:  "v1.2.0",
		RemoteVersion: "v1.3.0",
		Behind:        3,
		ChangedFiles:  []string{"agents/reviewer.md", "skills/seo/SKILL.md"},
		DeletedFiles:  []string{"commands/old.md"},
	})
	require.NoError(t, err)

	content := readNote(t, dir)
	assert.Contains(t, content, "# Toolkit Update")
	assert.Contains(t, content, "Date: 2025-06-01 12:30:00")
	assert.Contains(t, content, "Version: v1.2.0 -> v1.3.0")
	assert.Contains(t, content, "Commits: 3 new commit(s)")
	assert.Contains(t, content, "  - agents/reviewer.md")
	assert.Contains(t, content, "## Removed Files")
	assert.Contains(t, content, "  - commands/old.md")
	assert.Contains(t, content, "You can safely delete it.")
}

func TestWriteUpdateOmitsEmptySections(t *testing.T) {
	fixedNow(t)
	dir := t.TempDir()

	require.NoError(t, WriteUpdate(dir, UpdateNote{LocalVersion: "v1.0.0", RemoteVersion: "v1.0.1", Behind: 1}))

	content := readNote(t, dir)
	assert.NotContains(t, content, "## Updated Files")
	assert.NotContains(t, content, "## Removed Files")
}

func TestWriteUpdateTruncatesLongLists(t *testing.T) {
	fixedNow(t)
	dir := t.TempDir()

	var changed []string
	for i := 0; i < 25; i++ {
		changed = append(changed, fmt.Sprintf("agents/a%02d.md", i))
	}
	require.NoError(t, WriteUpdate(dir, UpdateNote{Behind: 1, ChangedFiles: changed}))

	content := readNote(t, dir)
	assert.Contains(t, content, "  - agents/a19.md")
	assert.NotContains(t, content, "  - agents/a20.md")
	assert.Contains(t, content, "  ... and 5 more")
}

func TestWriteRegeneratesInsteadOfAppending(t *testing.T) {
	fixedNow(t)
	dir := t.TempDir()

	require.NoError(t, WriteUpdate(dir, UpdateNote{LocalVersion: "v1.0.0", RemoteVersion: "v1.1.0", Behind: 2}))
	require.NoError(t, WriteSync(dir, 4, 1, filepath.Join(dir, "consumer")))

	content := readNote(t, dir)
	assert.Equal(t, 1, strings.Count(content, "Date:"))
	assert.Contains(t, content, "# Toolkit Sync")
	assert.NotContains(t, content, "# Toolkit Update")
	assert.Contains(t, content, "Synced: 4 file(s)")
	assert.Contains(t, content, "Removed: 1 file(s)")
}

func TestWriteFailsOnMissingDir(t *testing.T) {
	fixedNow(t)
	err := WriteUpdate(filepath.Join(t.TempDir(), "nope"), UpdateNote{})
	assert.Error(t, err)
}
