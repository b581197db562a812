// Package git drives the version-control process the updater relies on.
//
// All repository state flows through the Runner interface so the update
// engine can be exercised in tests with a scripted runner instead of a real
// git checkout.
package git

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/conn-castle/skillkit/internal/messages"
)

// Runner executes a git subcommand in the repository and returns its output
// with trailing newlines trimmed. Leading whitespace is preserved: porcelain
// status lines carry their state in the first two columns. A non-zero exit is
// reported as an error carrying the captured output as the message.
type Runner interface {
	Run(args ...string) (string, error)
}

// ExecRunner implements Runner by shelling out to the git command.
type ExecRunner struct {
	// Dir is the repository working directory for every invocation.
	Dir string
}

// Run executes git with args in the runner's directory.
func (r ExecRunner) Run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	out, err := cmd.CombinedOutput()
	output := strings.TrimRight(string(out), "\n")
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return output, fmt.Errorf(messages.GitCommandFailedFmt, strings.Join(args, " "), output)
		}
		return output, fmt.Errorf(messages.GitStartFailedFmt, strings.Join(args, " "), err)
	}
	return output, nil
}

// Head returns the current HEAD commit hash.
func Head(r Runner) (string, error) {
	return r.Run("rev-parse", "HEAD")
}

// RemoteHead returns the commit hash of the remote default branch head.
func RemoteHead(r Runner, remote string) (string, error) {
	out, err := r.Run("ls-remote", remote, "HEAD")
	if err != nil {
		return "", err
	}
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return "", fmt.Errorf(messages.GitCommandFailedFmt, "ls-remote "+remote+" HEAD", "empty output")
	}
	return fields[0], nil
}

// StatusPorcelain returns the porcelain working-tree status lines.
func StatusPorcelain(r Runner) ([]string, error) {
	out, err := r.Run("status", "--porcelain")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// Fetch updates remote-tracking refs from the given remote.
func Fetch(r Runner, remote string) error {
	_, err := r.Run("fetch", remote)
	return err
}

// BehindCount returns how many commits HEAD is behind remote/branch.
func BehindCount(r Runner, remote string, branch string) (int, error) {
	out, err := r.Run("rev-list", "--count", "HEAD.."+remote+"/"+branch)
	if err != nil {
		return 0, err
	}
	var behind int
	if _, err := fmt.Sscanf(out, "%d", &behind); err != nil {
		return 0, fmt.Errorf(messages.GitCommandFailedFmt, "rev-list --count", "unparseable output "+out)
	}
	return behind, nil
}

// DiffNameOnly returns the paths differing between HEAD and remote/branch.
// When deletedOnly is set, the diff is restricted to deletions.
func DiffNameOnly(r Runner, remote string, branch string, deletedOnly bool) ([]string, error) {
	args := []string{"diff", "--name-only"}
	if deletedOnly {
		args = append(args, "--diff-filter=D")
	}
	args = append(args, "HEAD", remote+"/"+branch)
	out, err := r.Run(args...)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// DescribeTag returns the most recent tag reachable from ref. Pass an empty
// ref for HEAD.
func DescribeTag(r Runner, ref string) (string, error) {
	args := []string{"describe", "--tags", "--abbrev=0"}
	if ref != "" {
		args = append(args, ref)
	}
	return r.Run(args...)
}

// Show returns the contents of path at the given ref.
func Show(r Runner, ref string, path string) (string, error) {
	return r.Run("show", ref+":"+path)
}

// StashSave stashes working-tree changes under the given label.
func StashSave(r Runner, label string) error {
	_, err := r.Run("stash", "save", label)
	return err
}

// ResetHard resets the working tree to ref.
func ResetHard(r Runner, ref string) error {
	_, err := r.Run("reset", "--hard", ref)
	return err
}

// PullRebase pulls remote/branch with rebase to keep a linear history.
func PullRebase(r Runner, remote string, branch string) error {
	_, err := r.Run("pull", "--rebase", remote, branch)
	return err
}

// CleanPath removes untracked files limited to the given path. Never invoked
// repository-wide; callers pass one managed prefix at a time.
func CleanPath(r Runner, path string) error {
	_, err := r.Run("clean", "-fd", path)
	return err
}
