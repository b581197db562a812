package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/skillkit/internal/messages"
	"github.com/conn-castle/skillkit/internal/update"
)

func newCheckCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.CheckUse,
		Short: messages.CheckShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, flags)
		},
	}
}

func newStatusCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.StatusUse,
		Short: messages.StatusShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, flags)
		},
	}
}

// runStatus probes and renders the update status. A fully degraded probe
// exits 1.
func runStatus(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	updater, err := update.NewUpdater(cfg, update.Options{})
	if err != nil {
		return err
	}
	info := updater.Check()
	renderInfo(cmd.OutOrStdout(), info)
	if info.Status == update.StatusError {
		return &SilentExitError{Code: 1}
	}
	return nil
}
