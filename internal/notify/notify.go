// Package notify writes the human-readable update notification file. It
// consumes only counts and path lists produced by the engine.
package notify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/conn-castle/skillkit/internal/messages"
)

// FileName is the notification file written into the operator's working
// directory. The file is regenerated on every successful update or sync, not
// appended to.
const FileName = "update_notification.txt"

const (
	changedListLimit = 20
	deletedListLimit = 10
)

// now is swappable for tests.
var now = time.Now

// UpdateNote carries the details of a completed update.
type UpdateNote struct {
	LocalVersion  string
	RemoteVersion string
	Behind        int
	ChangedFiles  []string
	DeletedFiles  []string
}

// WriteUpdate regenerates the notification file for a completed update.
func WriteUpdate(dir string, note UpdateNote) error {
	var b strings.Builder
	b.WriteString(messages.NotifyUpdateHeader + "\n\n")
	b.WriteString(messages.NotifyUpdateBody + "\n\n")
	fmt.Fprintf(&b, messages.NotifyDateFmt+"\n", now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, messages.NotifyVersionFmt+"\n", note.LocalVersion, note.RemoteVersion)
	fmt.Fprintf(&b, messages.NotifyCommitsFmt+"\n\n", note.Behind)

	if len(note.ChangedFiles) > 0 {
		b.WriteString(messages.NotifyChangedHead + "\n")
		writeList(&b, note.ChangedFiles, changedListLimit)
		b.WriteString("\n")
	}
	if len(note.DeletedFiles) > 0 {
		b.WriteString(messages.NotifyDeletedHead + "\n")
		writeList(&b, note.DeletedFiles, deletedListLimit)
		b.WriteString("\n")
	}
	b.WriteString(messages.NotifyFooter + "\n")
	return write(dir, b.String())
}

// WriteSync regenerates the notification file for a full mirror sync.
func WriteSync(dir string, synced int, removed int, target string) error {
	var b strings.Builder
	b.WriteString(messages.NotifySyncHeader + "\n\n")
	b.WriteString(messages.NotifySyncBody + "\n\n")
	fmt.Fprintf(&b, messages.NotifyDateFmt+"\n", now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, messages.NotifySyncedFmt+"\n", synced)
	fmt.Fprintf(&b, messages.NotifyRemovedFmt+"\n", removed)
	fmt.Fprintf(&b, messages.NotifyTargetFmt+"\n\n", target)
	b.WriteString(messages.NotifyFooter + "\n")
	return write(dir, b.String())
}

// writeList appends up to limit entries, noting how many were elided.
func writeList(b *strings.Builder, items []string, limit int) {
	for i, item := range items {
		if i == limit {
			fmt.Fprintf(b, messages.ReportListMoreFmt+"\n", len(items)-limit)
			return
		}
		fmt.Fprintf(b, messages.ReportListItemFmt+"\n", item)
	}
}

func write(dir string, content string) error {
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf(messages.NotifyWriteFmt, path, err)
	}
	return nil
}
