package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bundletest/internal/config"
	"bundletest/internal/discovery"
	"bundletest/internal/ui"
)

// ModulesCommand handles the modules command
type ModulesCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewModulesCommand creates a new ModulesCommand
func NewModulesCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ModulesCommand {
	return &ModulesCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (mc *ModulesCommand) Execute(cmd *cobra.Command, args []string) error {
	modules, err := mc.scanner.Scan(mc.config.GetModuleBaseDir())
	if err != nil {
		return err
	}

	modules = mc.filter.FilterByName(modules, mc.config.Flags.NameFilter)

	if len(modules) == 0 {
		color.Yellow("No modules found")
		return nil
	}

	mc.formatter.SetOutput(cmd.OutOrStdout())
	mc.formatter.PrintModules(modules)
	return nil
}
