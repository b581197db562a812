package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/conn-castle/skillkit/internal/messages"
	"github.com/conn-castle/skillkit/internal/terminal"
	"github.com/conn-castle/skillkit/internal/update"
)

func newUpdateCmd(flags *rootFlags) *cobra.Command {
	var force bool
	var silent bool

	cmd := &cobra.Command{
		Use:   messages.UpdateUse,
		Short: messages.UpdateShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if silent {
				out = io.Discard
			}

			var prompter update.Prompter
			if !silent && !force && terminal.IsInteractive() {
				prompter = newHuhPrompter()
			}

			updater, err := update.NewUpdater(cfg, update.Options{
				Prompter: prompter,
				Out:      out,
			})
			if err != nil {
				return err
			}

			info, err := updater.Update(force)
			if err != nil {
				if errors.Is(err, update.ErrCancelled) {
					fmt.Fprintln(out, messages.UpdateCancelled)
					return &SilentExitError{Code: 1}
				}
				if silent {
					return &SilentExitError{Code: 1}
				}
				return err
			}
			if !silent {
				// The engine already narrated the update; a second
				// status report would still show the pre-update
				// probe. Only a no-op or degraded run needs one.
				switch info.Status {
				case update.StatusUpToDate, update.StatusError:
					renderInfo(out, info)
				default:
					fmt.Fprintln(out, messages.UpdateRestartHint)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, messages.FlagForce)
	cmd.Flags().BoolVarP(&silent, "silent", "s", false, messages.FlagSilent)
	return cmd
}
