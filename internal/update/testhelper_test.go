package update

import (
	"path/filepath"
	"testing"

	"github.com/conn-castle/skillkit/internal/config"
	"github.com/conn-castle/skillkit/internal/managed"
)

// newTestConfig builds a config rooted in fresh temp directories so tests
// never touch the user's home or a real checkout.
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	repo := t.TempDir()
	consumer := t.TempDir()
	return &config.Config{
		RepoDir:         repo,
		ConsumerDir:     consumer,
		BackupDir:       filepath.Join(repo, ".skillkit_backup"),
		MetadataPath:    filepath.Join(repo, ".skillkit_update_metadata.json"),
		LockPath:        filepath.Join(repo, ".skillkit_update.lock"),
		NotifyDir:       t.TempDir(),
		SettingsPath:    filepath.Join(consumer, "settings.json"),
		Remote:          "origin",
		Branch:          "main",
		Managed:         managed.DefaultFilter(),
		ReinstallScript: "scripts/setup",
	}
}
