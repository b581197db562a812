package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/conn-castle/skillkit/internal/messages"
	"github.com/conn-castle/skillkit/internal/update"
)

const renderListLimit = 10

// renderInfo writes the human-readable status report.
func renderInfo(out io.Writer, info update.Info) {
	switch info.Status {
	case update.StatusError:
		fmt.Fprintln(out, color.RedString(messages.ReportProbeDegraded))
		return
	case update.StatusUpToDate:
		fmt.Fprintln(out, color.GreenString(messages.ReportUpToDate))
		fmt.Fprintf(out, messages.ReportVersionFmt+"\n", info.LocalVersion)
		fmt.Fprintf(out, messages.ReportCommitFmt+"\n", shortCommit(info.LocalCommit))
		return
	case update.StatusHasLocalChanges:
		fmt.Fprintln(out, color.YellowString(messages.ReportLocalChanges))
	default:
		fmt.Fprintln(out, color.YellowString(messages.ReportUpdateAvail))
	}

	fmt.Fprintf(out, messages.ReportVersionFmt+"\n", info.LocalVersion)
	fmt.Fprintf(out, messages.ReportLatestFmt+"\n", info.RemoteVersion)
	fmt.Fprintf(out, messages.ReportBehindFmt+"\n", info.Behind)
	if len(info.LocalChanges) > 0 {
		fmt.Fprintln(out, color.YellowString(fmt.Sprintf(messages.ReportLocalCountFmt, len(info.LocalChanges))))
	} else {
		fmt.Fprintln(out, messages.ReportNoLocal)
	}

	if len(info.ChangedFiles) > 0 {
		fmt.Fprintf(out, messages.ReportChangedHeadFmt+"\n", len(info.ChangedFiles))
		renderList(out, info.ChangedFiles)
	}
	if len(info.DeletedFiles) > 0 {
		fmt.Fprintln(out, color.RedString(fmt.Sprintf(messages.ReportDeletedHeadFmt, len(info.DeletedFiles))))
		renderList(out, info.DeletedFiles)
	}
}

// renderList writes a truncated file list.
func renderList(out io.Writer, paths []string) {
	for i, path := range paths {
		if i == renderListLimit {
			fmt.Fprintf(out, messages.ReportListMoreFmt+"\n", len(paths)-renderListLimit)
			return
		}
		fmt.Fprintf(out, messages.ReportListItemFmt+"\n", path)
	}
}

// shortCommit truncates a commit id for display.
func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
