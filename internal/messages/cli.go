package messages

// Root command and shared CLI messages.
const (
	RootUse   = "skillkit"
	RootShort = "Keep the skillkit toolkit repository up to date"
	RootLong  = "skillkit synchronizes a local toolkit repository (agents, commands, scripts, skills) with its remote source of truth and mirrors the managed tree into the consumer directory."

	CheckUse      = "check"
	CheckShort    = "Check whether toolkit updates are available"
	StatusUse     = "status"
	StatusShort   = "Show toolkit update status"
	UpdateUse     = "update"
	UpdateShort   = "Update the toolkit to the latest version"
	SyncUse       = "sync"
	SyncShort     = "Mirror all managed files into the consumer directory"
	RollbackUse   = "rollback"
	RollbackShort = "Restore the repository from the most recent update backup"

	FlagForce   = "discard local changes without prompting"
	FlagSilent  = "suppress all output (for automation)"
	FlagRepoDir = "toolkit repository directory (default: auto-detected)"
	FlagCwd     = "directory for the update notification file (default: current directory)"

	VersionTemplate  = "{{.Version}}\n"
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"

	ResolveRepoDirErrFmt  = "resolve repository directory: %w"
	RepoDirNotRepoFmt     = "%s is not a git repository (missing .git)"
	ResolveConsumerDirErr = "resolve consumer directory: %w"
)

// Status report rendering.
const (
	ReportUpToDate       = "Up to date"
	ReportUpdateAvail    = "Update available"
	ReportLocalChanges   = "Local changes present"
	ReportProbeDegraded  = "Repository state unavailable"
	ReportVersionFmt     = "Current version: %s"
	ReportCommitFmt      = "Commit: %s"
	ReportLatestFmt      = "Latest version:  %s"
	ReportBehindFmt      = "Commits behind:  %d"
	ReportLocalCountFmt  = "Local changes:   %d file(s)"
	ReportNoLocal        = "Local changes:   none"
	ReportChangedHeadFmt = "Files to update: %d"
	ReportDeletedHeadFmt = "Files to be deleted locally: %d"
	ReportListItemFmt    = "  - %s"
	ReportListMoreFmt    = "  ... and %d more"
)
