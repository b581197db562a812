package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/conn-castle/skillkit/internal/messages"
	"github.com/conn-castle/skillkit/internal/update"
)

// huhPrompter implements update.Prompter with interactive forms.
type huhPrompter struct{}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

func newHuhPrompter() *huhPrompter {
	return &huhPrompter{}
}

// promptKeyMap binds Ctrl+C and Esc to form abort, which the caller maps to
// declining the prompt.
func promptKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))
	km.Select.Filter.SetEnabled(false)
	km.Select.SetFilter.SetEnabled(false)
	km.Select.ClearFilter.SetEnabled(false)
	return km
}

// runForm runs a single-group form. An aborted form is reported as
// huh.ErrUserAborted; a SIGINT is converted to a graceful quit first so the
// renderer clears the form output.
func (p *huhPrompter) runForm(form *huh.Form) error {
	form.WithKeyMap(promptKeyMap())
	form.WithProgramOptions(
		tea.WithOutput(os.Stderr),
		tea.WithFilter(func(_ tea.Model, msg tea.Msg) tea.Msg {
			if _, ok := msg.(tea.InterruptMsg); ok {
				return tea.QuitMsg{}
			}
			return msg
		}),
	)
	return runFormFunc(form)
}

// confirm renders a yes/no prompt; aborting counts as no.
func (p *huhPrompter) confirm(title string, defaultValue bool) (bool, error) {
	value := defaultValue
	err := p.runForm(huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Value(&value),
	)))
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return value, nil
}

// ConfirmProceed asks whether to continue after local changes were disclosed.
func (p *huhPrompter) ConfirmProceed() (bool, error) {
	return p.confirm(messages.PromptProceed, true)
}

// ChooseResolution picks how local changes are handled; aborting falls back
// to the stash default.
func (p *huhPrompter) ChooseResolution() (update.Resolution, error) {
	resolution := update.ResolutionStash
	err := p.runForm(huh.NewForm(huh.NewGroup(
		huh.NewSelect[update.Resolution]().
			Title(messages.PromptResolution).
			Options(
				huh.NewOption(messages.PromptResolutionStash, update.ResolutionStash),
				huh.NewOption(messages.PromptResolutionCommit, update.ResolutionCommit),
				huh.NewOption(messages.PromptResolutionDiscard, update.ResolutionDiscard),
			).
			Value(&resolution),
	)))
	if errors.Is(err, huh.ErrUserAborted) {
		return update.ResolutionStash, nil
	}
	if err != nil {
		return "", err
	}
	return resolution, nil
}

// ConfirmDeletions asks whether to continue when the update will delete local
// managed files.
func (p *huhPrompter) ConfirmDeletions(paths []string) (bool, error) {
	return p.confirm(messages.PromptDeletions, true)
}
