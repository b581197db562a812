package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/conn-castle/skillkit/internal/update"
)

func render(info update.Info) string {
	origNoColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = origNoColor }()

	var buf bytes.Buffer
	renderInfo(&buf, info)
	return buf.String()
}

func TestRenderInfoUpToDate(t *testing.T) {
	out := render(update.Info{
		Status:       update.StatusUpToDate,
		LocalVersion: "v1.2.0",
		LocalCommit:  "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
	})
	assert.Contains(t, out, "Up to date")
	assert.Contains(t, out, "Current version: v1.2.0")
	assert.Contains(t, out, "Commit: aaaaaaaa")
	assert.NotContains(t, out, "Commits behind")
}

func TestRenderInfoUpdateAvailable(t *testing.T) {
	out := render(update.Info{
		Status:        update.StatusUpdateAvailable,
		LocalVersion:  "v1.2.0",
		RemoteVersion: "v1.3.0",
		Behind:        3,
		ChangedFiles:  []string{"agents/reviewer.md"},
		DeletedFiles:  []string{"commands/old.md"},
	})
	assert.Contains(t, out, "Update available")
	assert.Contains(t, out, "Latest version:  v1.3.0")
	assert.Contains(t, out, "Commits behind:  3")
	assert.Contains(t, out, "Local changes:   none")
	assert.Contains(t, out, "Files to update: 1")
	assert.Contains(t, out, "  - agents/reviewer.md")
	assert.Contains(t, out, "Files to be deleted locally: 1")
	assert.Contains(t, out, "  - commands/old.md")
}

func TestRenderInfoLocalChanges(t *testing.T) {
	out := render(update.Info{
		Status: update.StatusHasLocalChanges,
		LocalChanges: []update.Modification{
			{Path: "agents/reviewer.md", Kind: update.ModKindModified},
		},
	})
	assert.Contains(t, out, "Local changes present")
	assert.Contains(t, out, "Local changes:   1 file(s)")
}

func TestRenderInfoDegraded(t *testing.T) {
	out := render(update.Info{Status: update.StatusError})
	assert.Contains(t, out, "Repository state unavailable")
	assert.NotContains(t, out, "Current version")
}

func TestRenderListTruncates(t *testing.T) {
	var paths []string
	for i := 0; i < 14; i++ {
		paths = append(paths, fmt.Sprintf("agents/a%02d.md", i))
	}
	out := render(update.Info{
		Status:       update.StatusUpdateAvailable,
		ChangedFiles: paths,
	})
	assert.Contains(t, out, "  - agents/a09.md")
	assert.NotContains(t, out, "  - agents/a10.md")
	assert.Contains(t, out, "  ... and 4 more")
}
