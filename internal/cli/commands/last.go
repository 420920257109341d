package commands

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bundletest/internal/config"
	"bundletest/internal/storage"
	"bundletest/internal/ui"
)

// LastCommand handles the last command
type LastCommand struct {
	config     *config.Config
	newStorage StorageFactory
	formatter  *ui.Formatter
}

// NewLastCommand creates a new LastCommand
func NewLastCommand(cfg *config.Config, newStorage StorageFactory, formatter *ui.Formatter) *LastCommand {
	return &LastCommand{
		config:     cfg,
		newStorage: newStorage,
		formatter:  formatter,
	}
}

// Execute runs the command
func (lc *LastCommand) Execute(cmd *cobra.Command, args []string) error {
	st, err := lc.newStorage(lc.config)
	if err != nil {
		return err
	}
	if c, ok := st.(interface{ Close() error }); ok {
		defer c.Close()
	}

	record, err := st.Last()
	if errors.Is(err, storage.ErrNoRuns) {
		color.Yellow("No stored runs")
		return nil
	}
	if err != nil {
		return err
	}

	lc.formatter.SetOutput(cmd.OutOrStdout())
	lc.formatter.PrintSummary(record)
	return nil
}
