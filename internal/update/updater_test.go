package update

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/skillkit/internal/notify"
	"github.com/conn-castle/skillkit/internal/testutil"
)

func TestUpdateBehindCleanRepo(t *testing.T) {
	cfg := newTestConfig(t)
	writeRepoFile(t, cfg.RepoDir, "agents/reviewer.md", "reviewer v2\n")
	runner := testutil.Script(3, []string{"agents/reviewer.md", "README.md"}, nil)

	var out bytes.Buffer
	updater, err := NewUpdater(cfg, Options{Runner: runner, Out: &out})
	require.NoError(t, err)

	info, err := updater.Update(false)
	require.NoError(t, err)
	assert.Equal(t, StatusUpdateAvailable, info.Status)
	assert.Equal(t, 3, info.Behind)

	// The pull ran and only managed files were filtered into the change set.
	assert.True(t, runner.Called("pull --rebase origin main"))
	assert.Equal(t, []string{"agents/reviewer.md"}, info.ChangedFiles)

	// The changed file was mirrored into the consumer directory.
	data, err := os.ReadFile(filepath.Join(cfg.ConsumerDir, "agents", "reviewer.md"))
	require.NoError(t, err)
	assert.Equal(t, "reviewer v2\n", string(data))

	// The notification file lists exactly the filtered changed files.
	note, err := os.ReadFile(filepath.Join(cfg.NotifyDir, notify.FileName))
	require.NoError(t, err)
	assert.Contains(t, string(note), "agents/reviewer.md")
	assert.NotContains(t, string(note), "README.md")

	// A backup record was persisted before the pull.
	assert.FileExists(t, cfg.MetadataPath)
}

func TestUpdateUpToDateIsNoOp(t *testing.T) {
	cfg := newTestConfig(t)
	runner := testutil.Script(0, nil, nil)

	updater, err := NewUpdater(cfg, Options{Runner: runner})
	require.NoError(t, err)

	info, err := updater.Update(false)
	require.NoError(t, err)
	assert.Equal(t, StatusUpToDate, info.Status)
	assert.False(t, runner.CalledPrefix("pull"))
}

func TestUpdateLocalChangesCommitResolutionCancels(t *testing.T) {
	cfg := newTestConfig(t)
	runner := testutil.Script(0, nil, nil)
	runner.Responses["status --porcelain"] = testutil.FakeResponse{Out: "?? notes.txt\n?? scratch.md"}

	prompter := scriptedPrompter{proceed: true, resolution: ResolutionCommit}
	updater, err := NewUpdater(cfg, Options{Runner: runner, Prompter: prompter})
	require.NoError(t, err)

	info, err := updater.Update(false)
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Equal(t, StatusHasLocalChanges, info.Status)

	// The repository must be untouched.
	assert.False(t, runner.CalledPrefix("stash"))
	assert.False(t, runner.CalledPrefix("reset"))
	assert.False(t, runner.CalledPrefix("pull"))
}

func TestUpdateDeclinedDeletionCancels(t *testing.T) {
	cfg := newTestConfig(t)
	runner := testutil.Script(2, []string{"skills/old/SKILL.md"}, []string{"skills/old/SKILL.md"})

	prompter := scriptedPrompter{proceed: true, resolution: ResolutionStash, deletions: false}
	updater, err := NewUpdater(cfg, Options{Runner: runner, Prompter: prompter})
	require.NoError(t, err)

	_, err = updater.Update(false)
	assert.ErrorIs(t, err, ErrCancelled)
	assert.False(t, runner.CalledPrefix("pull"))
}

func TestUpdatePullFailureRollsBack(t *testing.T) {
	cfg := newTestConfig(t)
	runner := testutil.Script(3, []string{"agents/a.md"}, nil)
	runner.Responses["pull --rebase origin main"] = testutil.FakeResponse{Err: errors.New("network down")}
	runner.Responses["reset --hard "+headCommit] = testutil.FakeResponse{}

	var out bytes.Buffer
	updater, err := NewUpdater(cfg, Options{Runner: runner, Out: &out})
	require.NoError(t, err)

	_, err = updater.Update(false)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRollbackFailed)
	assert.True(t, runner.Called("reset --hard "+headCommit))
	assert.Contains(t, out.String(), "Rollback completed")
}

func TestUpdateFailedBackupThenFailedPullIsRollbackFailed(t *testing.T) {
	cfg := newTestConfig(t)
	// Block the backup root so the backup fails before the pull.
	require.NoError(t, os.WriteFile(cfg.BackupDir, []byte("in the way"), 0o644))
	runner := testutil.Script(3, []string{"agents/a.md"}, nil)
	runner.Responses["pull --rebase origin main"] = testutil.FakeResponse{Err: errors.New("network down")}

	var out bytes.Buffer
	updater, err := NewUpdater(cfg, Options{Runner: runner, Out: &out})
	require.NoError(t, err)

	_, err = updater.Update(false)
	assert.ErrorIs(t, err, ErrRollbackFailed)
	assert.Contains(t, out.String(), "manual intervention")
}

func TestUpdateReleasesLockOnCancel(t *testing.T) {
	cfg := newTestConfig(t)
	runner := testutil.Script(0, nil, nil)
	runner.Responses["status --porcelain"] = testutil.FakeResponse{Out: "?? notes.txt"}

	prompter := scriptedPrompter{proceed: false}
	updater, err := NewUpdater(cfg, Options{Runner: runner, Prompter: prompter})
	require.NoError(t, err)

	_, err = updater.Update(false)
	assert.ErrorIs(t, err, ErrCancelled)

	// A second invocation must be able to take the lock immediately.
	_, err = updater.Update(false)
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestSyncAllWritesNotification(t *testing.T) {
	cfg := newTestConfig(t)
	writeRepoFile(t, cfg.RepoDir, "skills/seo/SKILL.md", "skill\n")
	writeRepoFile(t, cfg.RepoDir, "CLAUDE.md", "instructions\n")

	updater, err := NewUpdater(cfg, Options{Runner: testutil.Script(0, nil, nil)})
	require.NoError(t, err)

	manifest, err := updater.SyncAll()
	require.NoError(t, err)
	assert.Equal(t, 2, manifest.Synced)
	assert.FileExists(t, filepath.Join(cfg.NotifyDir, notify.FileName))
	assert.FileExists(t, filepath.Join(cfg.ConsumerDir, "skills", "seo", "SKILL.md"))
}

func TestRollbackCommandRestoresBackup(t *testing.T) {
	cfg := newTestConfig(t)
	writeRepoFile(t, cfg.RepoDir, "scripts/setup", "original\n")
	runner := testutil.Script(0, nil, nil)
	runner.Responses["reset --hard "+headCommit] = testutil.FakeResponse{}

	updater, err := NewUpdater(cfg, Options{Runner: runner})
	require.NoError(t, err)

	_, err = NewBackupManager(cfg, runner).Create()
	require.NoError(t, err)
	writeRepoFile(t, cfg.RepoDir, "scripts/setup", "clobbered\n")

	require.NoError(t, updater.Rollback())
	data, err := os.ReadFile(filepath.Join(cfg.RepoDir, "scripts", "setup"))
	require.NoError(t, err)
	assert.Equal(t, "original\n", string(data))
}
