package update

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/skillkit/internal/config"
	"github.com/conn-castle/skillkit/internal/git"
	"github.com/conn-castle/skillkit/internal/messages"
)

const (
	guardDisplayLimit     = 10
	guardDiffPreviewFiles = 3
	guardDiffMaxLines     = 40
)

// Guard classifies local modifications and resolves them before any
// destructive update step runs.
type Guard struct {
	cfg      *config.Config
	runner   git.Runner
	prompter Prompter
	out      io.Writer
}

// NewGuard returns a guard. prompter may be nil for headless callers; the
// default resolution is then stash.
func NewGuard(cfg *config.Config, runner git.Runner, prompter Prompter, out io.Writer) *Guard {
	if out == nil {
		out = io.Discard
	}
	return &Guard{cfg: cfg, runner: runner, prompter: prompter, out: out}
}

// Resolve is the pure decision half of the guard: given the modifications,
// the force flag, and an optional prompter it picks a resolution without
// touching the repository. The boolean reports whether the update may
// proceed at all; an empty resolution with proceed=true means nothing needs
// resolving.
func Resolve(mods []Modification, force bool, prompter Prompter) (Resolution, bool, error) {
	if len(mods) == 0 {
		return "", true, nil
	}
	if force {
		// Caller accepts responsibility; nothing is stashed or filtered.
		return "", true, nil
	}
	if prompter == nil {
		return ResolutionStash, true, nil
	}
	proceed, err := prompter.ConfirmProceed()
	if err != nil {
		return "", false, err
	}
	if !proceed {
		return "", false, nil
	}
	resolution, err := prompter.ChooseResolution()
	if err != nil {
		return "", false, err
	}
	return resolution, true, nil
}

// Ensure discloses local modifications, resolves them, and executes the
// chosen strategy. It reports whether the update is safe to continue.
func (g *Guard) Ensure(mods []Modification, force bool) (bool, error) {
	if len(mods) == 0 {
		return true, nil
	}

	g.disclose(mods, force)

	resolution, proceed, err := Resolve(mods, force, g.prompter)
	if err != nil {
		return false, err
	}
	if !proceed {
		return false, nil
	}
	if resolution == "" {
		return true, nil
	}
	return g.apply(resolution)
}

// apply executes the chosen resolution strategy.
func (g *Guard) apply(resolution Resolution) (bool, error) {
	switch resolution {
	case ResolutionStash:
		label := "skillkit_auto_update_" + time.Now().Format("20060102_150405")
		if err := git.StashSave(g.runner, label); err != nil {
			return false, fmt.Errorf(messages.UpdateStashFailedFmt, err)
		}
		fmt.Fprintln(g.out, messages.UpdateStashedHint)
		return true, nil
	case ResolutionCommit:
		// Deliberate non-destructive bail-out, not an error.
		fmt.Fprintln(g.out, messages.UpdateCommitFirst)
		return false, nil
	case ResolutionDiscard:
		if err := git.ResetHard(g.runner, "HEAD"); err != nil {
			return false, fmt.Errorf(messages.UpdateDiscardFailedFmt, err)
		}
		// Untracked files are removed per managed prefix only; a
		// repository-wide clean would touch files the tool does not own.
		for _, dir := range g.cfg.Managed.PrefixDirs() {
			_ = git.CleanPath(g.runner, dir)
		}
		fmt.Fprintln(g.out, messages.UpdateDiscarded)
		return true, nil
	default:
		return false, fmt.Errorf(messages.UpdateUnknownResolutionFmt, string(resolution))
	}
}

// disclose prints the truncated modification list and, for interactive runs,
// a short diff preview of the first few modified files.
func (g *Guard) disclose(mods []Modification, force bool) {
	fmt.Fprintf(g.out, messages.UpdateLocalChangesHeadFmt+"\n", len(mods))
	for i, mod := range mods {
		if i == guardDisplayLimit {
			fmt.Fprintf(g.out, messages.ReportListMoreFmt+"\n", len(mods)-guardDisplayLimit)
			break
		}
		fmt.Fprintf(g.out, messages.UpdateLocalChangeItemFmt+"\n", mod.Kind, mod.Path)
	}
	if force {
		fmt.Fprintln(g.out, messages.UpdateForceDiscard)
		return
	}
	if g.prompter != nil {
		g.previewDiffs(mods)
	}
}

// previewDiffs renders a unified diff of up to a few modified files against
// HEAD so the operator can judge the resolution. Preview failures degrade to
// a note; they never block the guard.
func (g *Guard) previewDiffs(mods []Modification) {
	shown := 0
	for _, mod := range mods {
		if shown == guardDiffPreviewFiles {
			return
		}
		if mod.Kind != ModKindModified {
			continue
		}
		before, err := git.Show(g.runner, "HEAD", mod.Path)
		if err != nil {
			fmt.Fprintf(g.out, messages.DiffPreviewErrFmt+"\n", mod.Path, err)
			continue
		}
		afterBytes, err := os.ReadFile(filepath.Join(g.cfg.RepoDir, filepath.FromSlash(mod.Path)))
		if err != nil {
			fmt.Fprintf(g.out, messages.DiffPreviewErrFmt+"\n", mod.Path, err)
			continue
		}
		diff := udiff.Unified("a/"+mod.Path, "b/"+mod.Path, before+"\n", string(afterBytes))
		fmt.Fprintf(g.out, messages.DiffPreviewHeaderFmt+"\n", mod.Path)
		fmt.Fprintln(g.out, truncateLines(diff, guardDiffMaxLines))
		shown++
	}
}

// truncateLines caps text at max lines, noting how many were elided.
func truncateLines(text string, max int) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) <= max {
		return strings.Join(lines, "\n")
	}
	kept := lines[:max]
	kept = append(kept, fmt.Sprintf(messages.ReportListMoreFmt, len(lines)-max))
	return strings.Join(kept, "\n")
}
