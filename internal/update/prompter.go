package update

import (
	"errors"

	"github.com/conn-castle/skillkit/internal/messages"
)

// Resolution is the operator's answer for handling local changes before a
// destructive update step runs.
type Resolution string

const (
	// ResolutionStash saves working-tree changes under a timestamped label.
	ResolutionStash Resolution = "stash"
	// ResolutionCommit aborts the update so the operator can commit first.
	ResolutionCommit Resolution = "commit"
	// ResolutionDiscard hard-resets tracked changes and cleans untracked
	// files within the managed prefixes.
	ResolutionDiscard Resolution = "discard"
)

// Prompter supplies the interactive decisions the update flow needs. Headless
// callers pass a nil Prompter and the guard falls back to deterministic
// defaults.
type Prompter interface {
	// ConfirmProceed asks whether to continue after local changes were
	// disclosed.
	ConfirmProceed() (bool, error)
	// ChooseResolution picks how local changes are handled.
	ChooseResolution() (Resolution, error)
	// ConfirmDeletions asks whether to continue when the update will
	// delete local managed files.
	ConfirmDeletions(paths []string) (bool, error)
}

// PromptFuncs adapts optional prompt callbacks into a Prompter.
type PromptFuncs struct {
	ConfirmProceedFunc   func() (bool, error)
	ChooseResolutionFunc func() (Resolution, error)
	ConfirmDeletionsFunc func(paths []string) (bool, error)
}

// ConfirmProceed invokes the configured callback.
// Returns an error when no callback is configured.
func (p PromptFuncs) ConfirmProceed() (bool, error) {
	if p.ConfirmProceedFunc == nil {
		return false, errors.New(messages.PromptRequiresTerminal)
	}
	return p.ConfirmProceedFunc()
}

// ChooseResolution invokes the configured callback.
// Returns an error when no callback is configured.
func (p PromptFuncs) ChooseResolution() (Resolution, error) {
	if p.ChooseResolutionFunc == nil {
		return "", errors.New(messages.PromptRequiresTerminal)
	}
	return p.ChooseResolutionFunc()
}

// ConfirmDeletions invokes the configured callback.
// Returns an error when no callback is configured.
func (p PromptFuncs) ConfirmDeletions(paths []string) (bool, error) {
	if p.ConfirmDeletionsFunc == nil {
		return false, errors.New(messages.PromptRequiresTerminal)
	}
	return p.ConfirmDeletionsFunc(paths)
}
