// Package config resolves the paths and settings every updater component
// shares. The config is constructed once per invocation and passed by
// reference; no component reads ambient process state on its own.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/skillkit/internal/managed"
	"github.com/conn-castle/skillkit/internal/messages"
)

// FileConfig models the optional .skillkit/config.toml overrides.
type FileConfig struct {
	ConsumerDir string `toml:"consumer_dir"`
	Remote      string `toml:"remote"`
	Branch      string `toml:"branch"`
}

// Config holds every path and setting the update and sync engines need.
type Config struct {
	// RepoDir is the toolkit repository checkout.
	RepoDir string
	// ConsumerDir is the directory downstream tooling reads the managed
	// tree from.
	ConsumerDir string
	// BackupDir is the root for timestamped update backups.
	BackupDir string
	// MetadataPath is the backup metadata record.
	MetadataPath string
	// LockPath is the advisory lock taken for update and sync invocations.
	LockPath string
	// NotifyDir is where the update notification file is written.
	NotifyDir string
	// SettingsPath is the external settings file included in backups.
	SettingsPath string
	// Remote and Branch identify the source-of-truth ref.
	Remote string
	Branch string
	// Managed is the allow-list of paths the tool owns.
	Managed managed.Filter
	// ReinstallScript is the optional post-update hook, relative to RepoDir.
	ReinstallScript string
}

const (
	backupDirName    = ".skillkit_backup"
	metadataFileName = ".skillkit_update_metadata.json"
	lockFileName     = ".skillkit_update.lock"
	configRelPath    = ".skillkit/config.toml"
	settingsFileName = "settings.json"
	reinstallRelPath = "scripts/setup"
	consumerDirName  = ".claude"
)

// Default builds the configuration for a repository checkout, resolving the
// consumer directory under the user's home.
func Default(repoDir string) (*Config, error) {
	if repoDir == "" {
		return nil, errors.New(messages.ConfigRepoDirRequired)
	}
	home, err := homedir.Dir()
	if err != nil {
		return nil, fmt.Errorf(messages.ResolveConsumerDirErr, err)
	}
	consumer := filepath.Join(home, consumerDirName)
	return &Config{
		RepoDir:         repoDir,
		ConsumerDir:     consumer,
		BackupDir:       filepath.Join(repoDir, backupDirName),
		MetadataPath:    filepath.Join(repoDir, metadataFileName),
		LockPath:        filepath.Join(repoDir, lockFileName),
		NotifyDir:       "",
		SettingsPath:    filepath.Join(consumer, settingsFileName),
		Remote:          "origin",
		Branch:          "main",
		Managed:         managed.DefaultFilter(),
		ReinstallScript: reinstallRelPath,
	}, nil
}

// Load builds the default configuration and applies the optional
// .skillkit/config.toml overrides when the file exists.
func Load(repoDir string) (*Config, error) {
	cfg, err := Default(repoDir)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(repoDir, filepath.FromSlash(configRelPath))
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf(messages.ConfigReadFmt, path, err)
	}
	var file FileConfig
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf(messages.ConfigParseFmt, path, err)
	}
	cfg.apply(file)
	return cfg, nil
}

// apply overlays non-empty file values onto the config.
func (c *Config) apply(file FileConfig) {
	if file.ConsumerDir != "" {
		c.ConsumerDir = file.ConsumerDir
		c.SettingsPath = filepath.Join(file.ConsumerDir, settingsFileName)
	}
	if file.Remote != "" {
		c.Remote = file.Remote
	}
	if file.Branch != "" {
		c.Branch = file.Branch
	}
}
