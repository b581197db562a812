package update

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/conn-castle/skillkit/internal/config"
	"github.com/conn-castle/skillkit/internal/git"
	"github.com/conn-castle/skillkit/internal/messages"
)

// reinstallQuickFlag is passed to the reinstall hook; the contract with the
// hook is exit-code-only.
const reinstallQuickFlag = "--quick"

// Executor performs the destructive half of an update: the rebase pull, the
// managed-path cleanup, and the best-effort reinstall hook.
type Executor struct {
	cfg    *config.Config
	runner git.Runner
	out    io.Writer

	// runHook is swappable for tests.
	runHook func(script string) error
}

// NewExecutor returns an executor for the configured repository.
func NewExecutor(cfg *config.Config, runner git.Runner, out io.Writer) *Executor {
	if out == nil {
		out = io.Discard
	}
	e := &Executor{cfg: cfg, runner: runner, out: out}
	e.runHook = e.execHook
	return e
}

// Perform pulls the remote branch with rebase, removes managed files deleted
// upstream, and runs the reinstall hook when present. Only a pull failure is
// fatal; the caller triggers rollback on error.
func (e *Executor) Perform() error {
	fmt.Fprintln(e.out, messages.UpdatePulling)
	if err := git.PullRebase(e.runner, e.cfg.Remote, e.cfg.Branch); err != nil {
		return fmt.Errorf(messages.UpdatePullFailedFmt, err)
	}

	// Files deleted upstream linger as untracked after the rebase; clean
	// them per managed prefix, never repository-wide.
	fmt.Fprintln(e.out, messages.UpdateCleaning)
	for _, dir := range e.cfg.Managed.PrefixDirs() {
		_ = git.CleanPath(e.runner, dir)
	}

	e.reinstall()
	return nil
}

// reinstall invokes the external reinstall hook if one exists. A non-zero
// exit is a warning only: the file state is already correct and reinstall is
// best-effort.
func (e *Executor) reinstall() {
	if e.cfg.ReinstallScript == "" {
		return
	}
	script := filepath.Join(e.cfg.RepoDir, filepath.FromSlash(e.cfg.ReinstallScript))
	if _, err := os.Stat(script); err != nil {
		return
	}
	fmt.Fprintln(e.out, messages.UpdateReinstalling)
	if err := e.runHook(script); err != nil {
		fmt.Fprintf(e.out, messages.UpdateReinstallWarnFmt+"\n", err)
		return
	}
	fmt.Fprintln(e.out, messages.UpdateReinstallOK)
}

// execHook runs the hook executable with the quick flag. Output is not
// parsed; only the exit code matters.
func (e *Executor) execHook(script string) error {
	cmd := exec.Command(script, reinstallQuickFlag)
	cmd.Dir = e.cfg.RepoDir
	return cmd.Run()
}
