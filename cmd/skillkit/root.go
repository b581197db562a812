package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/conn-castle/skillkit/internal/config"
	"github.com/conn-castle/skillkit/internal/messages"
)

// rootFlags carries the persistent flags shared by every subcommand.
type rootFlags struct {
	repoDir string
	cwd     string
}

// getwd and executablePath are swappable for tests.
var getwd = os.Getwd
var executablePath = os.Executable

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand defaults to status.
			return runStatus(cmd, flags)
		},
	}
	cmd.PersistentFlags().StringVar(&flags.repoDir, "repo-dir", "", messages.FlagRepoDir)
	cmd.PersistentFlags().StringVar(&flags.cwd, "cwd", "", messages.FlagCwd)

	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newStatusCmd(flags))
	cmd.AddCommand(newUpdateCmd(flags))
	cmd.AddCommand(newSyncCmd(flags))
	cmd.AddCommand(newRollbackCmd(flags))
	return cmd
}

// loadConfig resolves the repository directory and builds the invocation
// config, including the notification directory.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	repoDir, err := resolveRepoDir(flags.repoDir)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(repoDir)
	if err != nil {
		return nil, err
	}
	notifyDir := flags.cwd
	if notifyDir == "" {
		notifyDir, err = getwd()
		if err != nil {
			return nil, fmt.Errorf(messages.ResolveRepoDirErrFmt, err)
		}
	}
	cfg.NotifyDir = notifyDir
	return cfg, nil
}

// resolveRepoDir picks the toolkit repository: the explicit flag, the
// installed binary's parent repository, or the current directory, whichever
// first contains a .git directory.
func resolveRepoDir(flag string) (string, error) {
	if flag != "" {
		abs, err := filepath.Abs(flag)
		if err != nil {
			return "", fmt.Errorf(messages.ResolveRepoDirErrFmt, err)
		}
		if !isGitRepo(abs) {
			return "", fmt.Errorf(messages.RepoDirNotRepoFmt, abs)
		}
		return abs, nil
	}
	if exe, err := executablePath(); err == nil {
		// An installed binary lives in <repo>/scripts; its parent's
		// parent is the checkout.
		candidate := filepath.Dir(filepath.Dir(exe))
		if isGitRepo(candidate) {
			return candidate, nil
		}
	}
	cwd, err := getwd()
	if err != nil {
		return "", fmt.Errorf(messages.ResolveRepoDirErrFmt, err)
	}
	if !isGitRepo(cwd) {
		return "", fmt.Errorf(messages.RepoDirNotRepoFmt, cwd)
	}
	return cwd, nil
}

func isGitRepo(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}
