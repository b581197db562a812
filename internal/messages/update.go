package messages

// Update engine messages.
const (
	UpdateConfigRequired       = "update config is required"
	UpdateCancelled            = "update cancelled"
	UpdateCommitFirst          = "commit your changes first, then run update again"
	UpdateStashedHint          = "Changes stashed. Run `git stash pop` after the update to restore them."
	UpdateDiscarded            = "Local changes discarded"
	UpdateStashFailedFmt       = "stash local changes: %w"
	UpdateDiscardFailedFmt     = "discard local changes: %w"
	UpdateUnknownResolutionFmt = "unknown resolution %q"

	UpdatePulling          = "Pulling updates from remote..."
	UpdatePullFailedFmt    = "pull --rebase failed: %w"
	UpdateCleaning         = "Cleaning up deleted files..."
	UpdateReinstalling     = "Reinstalling toolkit..."
	UpdateReinstallOK      = "Reinstallation complete"
	UpdateReinstallWarnFmt = "reinstall exited with an error (update files are already in place): %v"

	UpdateLocalChangesHeadFmt = "Found %d local change(s):"
	UpdateLocalChangeItemFmt  = "  [%s] %s"
	UpdateForceDiscard        = "--force specified, discarding local changes"
	UpdateDeletionsHeadFmt    = "%d file(s) will be deleted from your local checkout:"

	UpdateBackingUp         = "Creating backup..."
	UpdateBackupFailedFmt   = "backup failed, proceeding without one: %v"
	UpdateFailedRollingBack = "Update failed, attempting rollback..."
	UpdateRolledBack        = "Rollback completed"
	UpdateRollbackFailedFmt = "rollback failed, manual intervention required: %v"
	UpdateCompleteFmt       = "Updated from %s to %s"
	UpdateRestartHint       = "Restart any running agent sessions to pick up the new toolkit."

	BackupMetadataMissing    = "no backup metadata found"
	BackupReadMetadataFmt    = "read backup metadata %s: %w"
	BackupParseMetadataFmt   = "parse backup metadata %s: %w"
	BackupWriteMetadataFmt   = "write backup metadata %s: %w"
	BackupPathMissingFmt     = "backup not found: %s"
	BackupCreateDirFmt       = "create backup directory %s: %w"
	BackupCopyScriptsFmt     = "back up scripts subtree: %w"
	BackupCopySettingsFmt    = "back up settings file: %w"
	BackupResetFailedFmt     = "reset to commit %s: %w"
	BackupRestoreScriptsFmt  = "restore scripts subtree: %w"
	BackupRestoreSettingsFmt = "restore settings file: %w"

	PromptProceed           = "Proceed with the update?"
	PromptResolution        = "How should local changes be handled?"
	PromptResolutionStash   = "stash - save changes aside, restore with git stash pop"
	PromptResolutionCommit  = "commit - stop here and commit manually first"
	PromptResolutionDiscard = "discard - throw away local changes"
	PromptDeletions         = "Continue with deletion?"
	PromptRequiresTerminal  = "interactive prompts require a terminal; use --force or --silent"

	GitCommandFailedFmt = "git %s: %s"
	GitStartFailedFmt   = "run git %s: %w"

	DiffPreviewHeaderFmt = "--- %s"
	DiffPreviewErrFmt    = "diff preview unavailable for %s: %v"
)

// Lock messages.
const (
	LockOpenFmt    = "open lock file %s: %w"
	LockAcquireFmt = "acquire lock %s: %w"
	LockTimeoutFmt = "timed out waiting for update lock after %s; is another skillkit invocation running?"
)
