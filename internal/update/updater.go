package update

import (
	"errors"
	"fmt"
	"io"

	"github.com/conn-castle/skillkit/internal/config"
	"github.com/conn-castle/skillkit/internal/git"
	"github.com/conn-castle/skillkit/internal/lockfile"
	"github.com/conn-castle/skillkit/internal/messages"
	"github.com/conn-castle/skillkit/internal/notify"
	"github.com/conn-castle/skillkit/internal/sync"
)

// ErrCancelled reports that the operator declined to resolve local changes or
// declined a destructive deletion. The update aborts with no side effects.
var ErrCancelled = errors.New(messages.UpdateCancelled)

// ErrRollbackFailed reports that an update failed and the automatic rollback
// failed too; the repository needs manual intervention.
var ErrRollbackFailed = errors.New("rollback failed")

// Options configures an Updater.
type Options struct {
	// Runner drives the version-control process. Defaults to an
	// ExecRunner in the repository directory.
	Runner git.Runner
	// Prompter supplies interactive decisions; nil means headless
	// deterministic defaults.
	Prompter Prompter
	// Out receives progress and warning lines; nil discards them.
	Out io.Writer
	// SyncSystem backs the consumer-directory propagation. Defaults to
	// the real filesystem.
	SyncSystem sync.System
}

// Updater wires the probe, guard, backup, executor, and propagator into the
// full update flow. One Updater instance serves one invocation.
type Updater struct {
	cfg      *config.Config
	runner   git.Runner
	prompter Prompter
	out      io.Writer

	probe      *Probe
	guard      *Guard
	backup     *BackupManager
	executor   *Executor
	propagator *sync.Propagator
}

// NewUpdater builds an updater for the configured repository.
func NewUpdater(cfg *config.Config, opts Options) (*Updater, error) {
	if cfg == nil {
		return nil, errors.New(messages.UpdateConfigRequired)
	}
	runner := opts.Runner
	if runner == nil {
		runner = git.ExecRunner{Dir: cfg.RepoDir}
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	sys := opts.SyncSystem
	if sys == nil {
		sys = sync.RealSystem{}
	}
	propagator, err := sync.NewPropagator(cfg, sys)
	if err != nil {
		return nil, err
	}
	u := &Updater{
		cfg:      cfg,
		runner:   runner,
		prompter: opts.Prompter,
		out:      out,
	}
	u.probe = NewProbe(cfg, runner)
	u.guard = NewGuard(cfg, runner, opts.Prompter, out)
	u.backup = NewBackupManager(cfg, runner)
	u.executor = NewExecutor(cfg, runner, out)
	u.propagator = propagator
	return u, nil
}

// Check probes repository state without taking the run lock; it performs no
// destructive operations.
func (u *Updater) Check() Info {
	return u.probe.Check()
}

// Update runs the full flow: probe, guard, backup, pull, propagate, notify,
// with rollback on executor failure. The run lock is held for the whole
// invocation. Returns ErrCancelled when the operator bails out and
// ErrRollbackFailed when both the update and its rollback failed.
func (u *Updater) Update(force bool) (Info, error) {
	var info Info
	err := lockfile.WithLock(u.cfg.LockPath, func() error {
		var err error
		info, err = u.update(force)
		return err
	})
	return info, err
}

func (u *Updater) update(force bool) (Info, error) {
	info := u.probe.Check()
	if info.Status == StatusUpToDate || info.Status == StatusError {
		return info, nil
	}

	safe, err := u.guard.Ensure(info.LocalChanges, force)
	if err != nil {
		return info, err
	}
	if !safe {
		return info, ErrCancelled
	}

	if len(info.DeletedFiles) > 0 && !force && u.prompter != nil {
		fmt.Fprintf(u.out, messages.UpdateDeletionsHeadFmt+"\n", len(info.DeletedFiles))
		for i, path := range info.DeletedFiles {
			if i == guardDisplayLimit {
				fmt.Fprintf(u.out, messages.ReportListMoreFmt+"\n", len(info.DeletedFiles)-guardDisplayLimit)
				break
			}
			fmt.Fprintf(u.out, messages.ReportListItemFmt+"\n", path)
		}
		proceed, err := u.prompter.ConfirmDeletions(info.DeletedFiles)
		if err != nil {
			return info, err
		}
		if !proceed {
			return info, ErrCancelled
		}
	}

	fmt.Fprintln(u.out, messages.UpdateBackingUp)
	if _, err := u.backup.Create(); err != nil {
		// Explicit policy: a failed backup is a warning, the update
		// proceeds without a safety net.
		fmt.Fprintf(u.out, messages.UpdateBackupFailedFmt+"\n", err)
	}

	if err := u.executor.Perform(); err != nil {
		fmt.Fprintln(u.out, messages.UpdateFailedRollingBack)
		if rbErr := u.backup.Rollback(); rbErr != nil {
			fmt.Fprintf(u.out, messages.UpdateRollbackFailedFmt+"\n", rbErr)
			return info, fmt.Errorf("%w: %w (update error: %w)", ErrRollbackFailed, rbErr, err)
		}
		fmt.Fprintln(u.out, messages.UpdateRolledBack)
		return info, err
	}

	manifest := u.propagator.Changes(info.ChangedFiles, info.DeletedFiles)
	for _, warning := range manifest.Warnings {
		fmt.Fprintln(u.out, warning)
	}

	if u.cfg.NotifyDir != "" {
		if err := notify.WriteUpdate(u.cfg.NotifyDir, notify.UpdateNote{
			LocalVersion:  info.LocalVersion,
			RemoteVersion: info.RemoteVersion,
			Behind:        info.Behind,
			ChangedFiles:  info.ChangedFiles,
			DeletedFiles:  info.DeletedFiles,
		}); err != nil {
			fmt.Fprintln(u.out, err)
		}
	}

	fmt.Fprintf(u.out, messages.UpdateCompleteFmt+"\n", info.LocalVersion, info.RemoteVersion)
	return info, nil
}

// SyncAll mirrors the full managed tree into the consumer directory under the
// run lock and regenerates the sync notification.
func (u *Updater) SyncAll() (sync.Manifest, error) {
	var manifest sync.Manifest
	err := lockfile.WithLock(u.cfg.LockPath, func() error {
		fmt.Fprintln(u.out, messages.SyncSyncing)
		var err error
		manifest, err = u.propagator.All()
		if err != nil {
			return err
		}
		for _, warning := range manifest.Warnings {
			fmt.Fprintln(u.out, warning)
		}
		if u.cfg.NotifyDir != "" {
			if err := notify.WriteSync(u.cfg.NotifyDir, manifest.Synced, manifest.Removed, u.cfg.ConsumerDir); err != nil {
				fmt.Fprintln(u.out, err)
			}
		}
		fmt.Fprintf(u.out, messages.SyncCompleteFmt+"\n", manifest.Synced, u.cfg.ConsumerDir)
		return nil
	})
	return manifest, err
}

// Rollback manually restores the repository from the most recent backup
// record.
func (u *Updater) Rollback() error {
	return lockfile.WithLock(u.cfg.LockPath, func() error {
		return u.backup.Rollback()
	})
}
