package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/skillkit/internal/messages"
	"github.com/conn-castle/skillkit/internal/update"
)

func newSyncCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.SyncUse,
		Short: messages.SyncShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			updater, err := update.NewUpdater(cfg, update.Options{Out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			_, err = updater.SyncAll()
			return err
		},
	}
}

func newRollbackCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.RollbackUse,
		Short: messages.RollbackShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			updater, err := update.NewUpdater(cfg, update.Options{Out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			if err := updater.Rollback(); err != nil {
				return err
			}
			cmd.Println(messages.UpdateRolledBack)
			return nil
		},
	}
}
