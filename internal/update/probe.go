package update

import (
	"github.com/conn-castle/skillkit/internal/config"
	"github.com/conn-castle/skillkit/internal/git"
)

// UnknownCommit is the sentinel returned when a repository query fails.
// Downstream comparisons treat it as "no update detectable" rather than an
// error.
const UnknownCommit = "unknown"

// Probe answers repository state questions through the git runner. Every
// query fails soft: a failed command yields a sentinel or empty value, never
// an error, so a degraded probe only ever narrows what the caller knows.
type Probe struct {
	cfg    *config.Config
	runner git.Runner
}

// NewProbe returns a probe for the configured repository.
func NewProbe(cfg *config.Config, runner git.Runner) *Probe {
	return &Probe{cfg: cfg, runner: runner}
}

// LocalCommit returns the current head commit, or UnknownCommit.
func (p *Probe) LocalCommit() string {
	out, err := git.Head(p.runner)
	if err != nil || out == "" {
		return UnknownCommit
	}
	return out
}

// RemoteCommit returns the remote default-branch head, or UnknownCommit.
func (p *Probe) RemoteCommit() string {
	out, err := git.RemoteHead(p.runner, p.cfg.Remote)
	if err != nil || out == "" {
		return UnknownCommit
	}
	return out
}

// LocalModifications returns the typed working-tree status. The list is
// unfiltered; it informs the operator, not destructive operations.
func (p *Probe) LocalModifications() []Modification {
	lines, err := git.StatusPorcelain(p.runner)
	if err != nil {
		return nil
	}
	return ParseModifications(lines)
}

// ChangeSet fetches the remote and returns the managed changed and deleted
// paths plus the commit-distance behind the remote head. When the checkout is
// not behind, the file diffs are skipped entirely.
func (p *Probe) ChangeSet() (changed []string, deleted []string, behind int) {
	_ = git.Fetch(p.runner, p.cfg.Remote)

	behind, err := git.BehindCount(p.runner, p.cfg.Remote, p.cfg.Branch)
	if err != nil || behind == 0 {
		return nil, nil, 0
	}

	changedRaw, err := git.DiffNameOnly(p.runner, p.cfg.Remote, p.cfg.Branch, false)
	if err != nil {
		changedRaw = nil
	}
	deletedRaw, err := git.DiffNameOnly(p.runner, p.cfg.Remote, p.cfg.Branch, true)
	if err != nil {
		deletedRaw = nil
	}
	return p.cfg.Managed.Apply(changedRaw), p.cfg.Managed.Apply(deletedRaw), behind
}

// VersionInfo returns the local and remote versions, preferring tags and
// falling back to 8-character commit prefixes. Tag lookup failures never fail
// the probe.
func (p *Probe) VersionInfo() (string, string) {
	local, err := git.DescribeTag(p.runner, "")
	if err != nil || local == "" {
		local = shortCommit(p.LocalCommit())
	}
	remote, err := git.DescribeTag(p.runner, p.cfg.Remote+"/"+p.cfg.Branch)
	if err != nil || remote == "" {
		remote = shortCommit(p.RemoteCommit())
	}
	return local, remote
}

// Check assembles the full update check. Being behind the remote takes
// precedence over local modifications when classifying the status.
func (p *Probe) Check() Info {
	info := Info{
		LocalCommit:  p.LocalCommit(),
		RemoteCommit: p.RemoteCommit(),
		LocalChanges: p.LocalModifications(),
	}
	info.LocalVersion, info.RemoteVersion = p.VersionInfo()
	info.ChangedFiles, info.DeletedFiles, info.Behind = p.ChangeSet()

	switch {
	case info.LocalCommit == UnknownCommit && info.RemoteCommit == UnknownCommit:
		info.Status = StatusError
	case info.Behind > 0:
		info.Status = StatusUpdateAvailable
	case len(info.LocalChanges) > 0:
		info.Status = StatusHasLocalChanges
	default:
		info.Status = StatusUpToDate
	}
	return info
}

// shortCommit truncates a commit id to an 8-character prefix.
func shortCommit(commit string) string {
	if len(commit) > 8 && commit != UnknownCommit {
		return commit[:8]
	}
	return commit
}
