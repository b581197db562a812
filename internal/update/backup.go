package update

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/conn-castle/skillkit/internal/config"
	"github.com/conn-castle/skillkit/internal/fsutil"
	"github.com/conn-castle/skillkit/internal/git"
	"github.com/conn-castle/skillkit/internal/messages"
)

// backupScriptsDir is the managed subtree snapshotted on every backup; it is
// the one the reinstall hook executes from, so a bad update there must be
// recoverable.
const backupScriptsDir = "scripts"

// Record is the persisted backup metadata. It is written when a backup is
// created, read only by rollback, and never deleted automatically.
type Record struct {
	Timestamp  string `json:"timestamp"`
	Commit     string `json:"commit"`
	BackupPath string `json:"backup_path"`
}

// BackupManager owns the backup directory tree and its metadata record.
type BackupManager struct {
	cfg    *config.Config
	runner git.Runner
}

// NewBackupManager returns a backup manager for the configured repository.
func NewBackupManager(cfg *config.Config, runner git.Runner) *BackupManager {
	return &BackupManager{cfg: cfg, runner: runner}
}

// Create snapshots the scripts subtree and the external settings file into a
// timestamped backup directory and persists the metadata record. Callers
// treat a failure as a warning, not a hard stop: the update proceeds without
// a safety net.
func (b *BackupManager) Create() (Record, error) {
	timestamp := time.Now().Format("20060102_150405")
	backupPath := filepath.Join(b.cfg.BackupDir, timestamp)
	if err := os.MkdirAll(backupPath, 0o755); err != nil {
		return Record{}, fmt.Errorf(messages.BackupCreateDirFmt, backupPath, err)
	}

	scriptsDir := filepath.Join(b.cfg.RepoDir, backupScriptsDir)
	if _, err := os.Stat(scriptsDir); err == nil {
		if err := fsutil.CopyTree(scriptsDir, filepath.Join(backupPath, backupScriptsDir)); err != nil {
			return Record{}, fmt.Errorf(messages.BackupCopyScriptsFmt, err)
		}
	}

	if _, err := os.Stat(b.cfg.SettingsPath); err == nil {
		dst := filepath.Join(backupPath, filepath.Base(b.cfg.SettingsPath))
		if err := fsutil.CopyFile(b.cfg.SettingsPath, dst); err != nil {
			return Record{}, fmt.Errorf(messages.BackupCopySettingsFmt, err)
		}
	}

	record := Record{
		Timestamp:  timestamp,
		Commit:     b.currentCommit(),
		BackupPath: backupPath,
	}
	if err := b.writeRecord(record); err != nil {
		return Record{}, err
	}
	return record, nil
}

// Rollback restores the repository head and the backed-up files from the most
// recent record. Every failure along the chain is terminal; there is no
// second-level fallback.
func (b *BackupManager) Rollback() error {
	record, err := b.LoadRecord()
	if err != nil {
		return err
	}
	if _, err := os.Stat(record.BackupPath); err != nil {
		return fmt.Errorf(messages.BackupPathMissingFmt, record.BackupPath)
	}

	if err := git.ResetHard(b.runner, record.Commit); err != nil {
		return fmt.Errorf(messages.BackupResetFailedFmt, record.Commit, err)
	}

	scriptsBackup := filepath.Join(record.BackupPath, backupScriptsDir)
	if _, err := os.Stat(scriptsBackup); err == nil {
		if err := fsutil.CopyTree(scriptsBackup, filepath.Join(b.cfg.RepoDir, backupScriptsDir)); err != nil {
			return fmt.Errorf(messages.BackupRestoreScriptsFmt, err)
		}
	}

	settingsBackup := filepath.Join(record.BackupPath, filepath.Base(b.cfg.SettingsPath))
	if _, err := os.Stat(settingsBackup); err == nil {
		if err := fsutil.CopyFile(settingsBackup, b.cfg.SettingsPath); err != nil {
			return fmt.Errorf(messages.BackupRestoreSettingsFmt, err)
		}
	}
	return nil
}

// LoadRecord reads the persisted metadata record.
func (b *BackupManager) LoadRecord() (Record, error) {
	data, err := os.ReadFile(b.cfg.MetadataPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Record{}, errors.New(messages.BackupMetadataMissing)
		}
		return Record{}, fmt.Errorf(messages.BackupReadMetadataFmt, b.cfg.MetadataPath, err)
	}
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return Record{}, fmt.Errorf(messages.BackupParseMetadataFmt, b.cfg.MetadataPath, err)
	}
	return record, nil
}

// writeRecord persists the metadata record atomically.
func (b *BackupManager) writeRecord(record Record) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf(messages.BackupWriteMetadataFmt, b.cfg.MetadataPath, err)
	}
	if err := fsutil.WriteFileAtomic(b.cfg.MetadataPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf(messages.BackupWriteMetadataFmt, b.cfg.MetadataPath, err)
	}
	return nil
}

// currentCommit returns the head commit for the record, degrading to the
// unknown sentinel rather than failing the backup.
func (b *BackupManager) currentCommit() string {
	out, err := git.Head(b.runner)
	if err != nil || out == "" {
		return UnknownCommit
	}
	return out
}
