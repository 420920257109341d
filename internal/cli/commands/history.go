package commands

import (
	"github.com/spf13/cobra"

	"bundletest/internal/config"
	"bundletest/internal/ui"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config     *config.Config
	newStorage StorageFactory
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, newStorage StorageFactory) *HistoryCommand {
	return &HistoryCommand{
		config:     cfg,
		newStorage: newStorage,
	}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	st, err := hc.newStorage(hc.config)
	if err != nil {
		return err
	}
	if c, ok := st.(interface{ Close() error }); ok {
		defer c.Close()
	}

	history, err := st.History(hc.config.Storage.HistoryLimit)
	if err != nil {
		return err
	}

	var viewer ui.Viewer = ui.NewHistoryViewer()
	if hc.config.Flags.Plain {
		viewer = ui.NewTableViewer(cmd.OutOrStdout())
	}
	return viewer.View(history)
}
