package messages

// Sync and notification messages.
const (
	SyncSystemRequired = "sync system is required"
	SyncConfigRequired = "sync config is required"
	SyncSyncing        = "Syncing toolkit files..."
	SyncCompleteFmt    = "Synced %d file(s) to %s"
	SyncCreateRootFmt  = "create consumer directory %s: %w"
	SyncCopyWarnFmt    = "copy %s: %v"
	SyncRemoveWarnFmt  = "remove %s: %v"
	SyncWalkFmt        = "walk %s: %w"

	NotifyWriteFmt = "write notification file %s: %w"
)

// Notification file content.
const (
	NotifyUpdateHeader = "# Toolkit Update"
	NotifyUpdateBody   = "The toolkit has been updated successfully."
	NotifySyncHeader   = "# Toolkit Sync"
	NotifySyncBody     = "Toolkit files synced successfully."
	NotifyDateFmt      = "Date: %s"
	NotifyVersionFmt   = "Version: %s -> %s"
	NotifyCommitsFmt   = "Commits: %d new commit(s)"
	NotifyChangedHead  = "## Updated Files"
	NotifyDeletedHead  = "## Removed Files"
	NotifySyncedFmt    = "Synced: %d file(s)"
	NotifyRemovedFmt   = "Removed: %d file(s)"
	NotifyTargetFmt    = "Target: %s"
	NotifyFooter       = "---\nThis file was auto-generated by skillkit.\nYou can safely delete it."
)

// Config messages.
const (
	ConfigReadFmt         = "read config %s: %w"
	ConfigParseFmt        = "parse config %s: %w"
	ConfigRepoDirRequired = "repository directory is required"
)
