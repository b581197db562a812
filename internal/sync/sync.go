// Package sync mirrors the managed toolkit subtree from the repository into
// the consumer directory that downstream tooling reads.
package sync

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/conn-castle/skillkit/internal/config"
	"github.com/conn-castle/skillkit/internal/messages"
)

// Manifest reports what one propagation did. It is a return value only,
// never persisted.
type Manifest struct {
	Synced  int
	Removed int
	// Warnings records per-file copy or removal failures; they do not
	// abort the batch.
	Warnings []string
}

// Propagator idempotently mirrors managed files into the consumer directory.
type Propagator struct {
	cfg *config.Config
	sys System
}

// NewPropagator returns a propagator for the configured consumer directory.
func NewPropagator(cfg *config.Config, sys System) (*Propagator, error) {
	if cfg == nil {
		return nil, errors.New(messages.SyncConfigRequired)
	}
	if sys == nil {
		return nil, errors.New(messages.SyncSystemRequired)
	}
	return &Propagator{cfg: cfg, sys: sys}, nil
}

// Changes mirrors the given changed paths into the consumer directory and
// removes the given deleted paths from it. A missing consumer root means
// there is no installation to mirror into, so the whole operation is skipped:
// an update must not silently create a fresh consumer installation.
func (p *Propagator) Changes(changed []string, deleted []string) Manifest {
	var m Manifest
	if _, err := p.sys.Stat(p.cfg.ConsumerDir); err != nil {
		return m
	}

	for _, rel := range changed {
		src := filepath.Join(p.cfg.RepoDir, filepath.FromSlash(rel))
		if _, err := p.sys.Stat(src); err != nil {
			continue
		}
		dst := filepath.Join(p.cfg.ConsumerDir, filepath.FromSlash(rel))
		if err := p.sys.CopyFile(src, dst); err != nil {
			m.Warnings = append(m.Warnings, fmt.Sprintf(messages.SyncCopyWarnFmt, rel, err))
			continue
		}
		m.Synced++
	}

	for _, rel := range deleted {
		dst := filepath.Join(p.cfg.ConsumerDir, filepath.FromSlash(rel))
		if _, err := p.sys.Stat(dst); err != nil {
			continue
		}
		if err := p.sys.Remove(dst); err != nil {
			m.Warnings = append(m.Warnings, fmt.Sprintf(messages.SyncRemoveWarnFmt, rel, err))
			continue
		}
		m.Removed++
		// Prune the now-possibly-empty parent; Remove fails on non-empty
		// directories and that is fine.
		_ = p.sys.Remove(filepath.Dir(dst))
	}
	return m
}

// All mirrors every managed prefix subtree and managed file into the consumer
// directory, creating it if needed. Running it twice with no source changes
// yields an identical consumer tree and the same counts.
func (p *Propagator) All() (Manifest, error) {
	var m Manifest
	if err := p.sys.MkdirAll(p.cfg.ConsumerDir, 0o755); err != nil {
		return m, fmt.Errorf(messages.SyncCreateRootFmt, p.cfg.ConsumerDir, err)
	}

	for _, dir := range p.cfg.Managed.PrefixDirs() {
		srcDir := filepath.Join(p.cfg.RepoDir, dir)
		if _, err := p.sys.Stat(srcDir); err != nil {
			continue
		}
		err := p.sys.WalkDir(srcDir, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() || !entry.Type().IsRegular() {
				return nil
			}
			rel, err := filepath.Rel(p.cfg.RepoDir, path)
			if err != nil {
				return err
			}
			dst := filepath.Join(p.cfg.ConsumerDir, rel)
			if err := p.sys.CopyFile(path, dst); err != nil {
				m.Warnings = append(m.Warnings, fmt.Sprintf(messages.SyncCopyWarnFmt, rel, err))
				return nil
			}
			m.Synced++
			return nil
		})
		if err != nil {
			return m, fmt.Errorf(messages.SyncWalkFmt, srcDir, err)
		}
	}

	for _, name := range p.cfg.Managed.Files {
		src := filepath.Join(p.cfg.RepoDir, name)
		if _, err := p.sys.Stat(src); err != nil {
			continue
		}
		dst := filepath.Join(p.cfg.ConsumerDir, name)
		if err := p.sys.CopyFile(src, dst); err != nil {
			m.Warnings = append(m.Warnings, fmt.Sprintf(messages.SyncCopyWarnFmt, name, err))
			continue
		}
		m.Synced++
	}
	return m, nil
}
