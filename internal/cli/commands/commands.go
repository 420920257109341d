package commands

import (
	"bundletest/internal/cli"
	"bundletest/internal/config"
	"bundletest/internal/discovery"
	"bundletest/internal/execution"
	"bundletest/internal/harness"
	"bundletest/internal/loader"
	"bundletest/internal/parser"
	"bundletest/internal/storage"
	"bundletest/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run     *RunCommand
	Last    *LastCommand
	History *HistoryCommand
	Modules *ModulesCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	bundleLoader := loader.New(cfg)
	resultParser := parser.NewResultParser()
	runner := execution.NewRunner(resultParser)
	h := harness.New(cfg, bundleLoader, runner)
	formatter := ui.NewFormatter(cfg)
	scanner := discovery.NewScanner(".js")
	filter := discovery.NewFilter()

	return &Commands{
		Run:     NewRunCommand(cfg, bundleLoader, h, formatter, storage.New),
		Last:    NewLastCommand(cfg, storage.New, formatter),
		History: NewHistoryCommand(cfg, storage.New),
		Modules: NewModulesCommand(cfg, scanner, filter, formatter),
	}
}

// loadConfig replaces cfg in place so that dependencies built by NewCommands see the result
func loadConfig(cfg *config.Config, flags *cli.Flags) error {
	loaded, err := config.Load(flags.ToConfigFlags())
	if err != nil {
		return err
	}
	*cfg = *loaded
	return nil
}

// addRunFlags registers the flags that only affect a harness run
func addRunFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().StringVar(&flags.Timezone, "timezone", "", "Timezone applied before loading the artifact (default UTC)")
	cmd.Flags().BoolVar(&flags.StrictImports, "strict-imports", false, "Fail the artifact when an auxiliary module fails to load")
	cmd.Flags().BoolVar(&flags.NoSave, "no-save", false, "Do not store the run result")
	cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Only print bundle console output")
}

// Register registers all commands with cobra.
// The root command itself behaves like "run".
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	preRun := func(cmd *cobra.Command, args []string) error {
		return loadConfig(cfg, flags)
	}

	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Path to a bundletest.yaml config file")
	rootCmd.PersistentFlags().StringVarP(&flags.ArtifactPath, "artifact", "a", "", "Path to the pre-built test bundle")
	rootCmd.PersistentFlags().StringVarP(&flags.ModuleBase, "module-base", "b", "", "Prefix prepended to auxiliary module names")
	rootCmd.PersistentFlags().StringVarP(&flags.EntryPoint, "entry-point", "e", "", "Dotted path of the aggregate test function")

	rootCmd.RunE = c.Run.Execute
	rootCmd.PreRunE = preRun
	rootCmd.Args = cobra.NoArgs
	addRunFlags(rootCmd, flags)

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Load the test bundle and run its entry point",
		Long:    "Load the pre-built test bundle, call its aggregate entry point once and exit 0 when nothing failed, 1 on test failures and 2 when the bundle could not be run",
		Args:    cobra.NoArgs,
		RunE:    c.Run.Execute,
		PreRunE: preRun,
	}
	addRunFlags(runCmd, flags)
	rootCmd.AddCommand(runCmd)

	// Last command
	lastCmd := &cobra.Command{
		Use:     "last",
		Short:   "Show the last stored run",
		Long:    "Print the statistics of the most recent stored run",
		Args:    cobra.NoArgs,
		RunE:    c.Last.Execute,
		PreRunE: preRun,
	}
	rootCmd.AddCommand(lastCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:     "history",
		Short:   "Browse stored runs",
		Long:    "Display stored runs in an interactive viewer, or as a table with --plain",
		Args:    cobra.NoArgs,
		RunE:    c.History.Execute,
		PreRunE: preRun,
	}
	historyCmd.Flags().BoolVar(&flags.Plain, "plain", false, "Print a table instead of opening the viewer")
	historyCmd.Flags().IntVarP(&flags.Limit, "limit", "n", 0, "Number of runs to show (default: history limit)")
	rootCmd.AddCommand(historyCmd)

	// Modules command
	modulesCmd := &cobra.Command{
		Use:     "modules",
		Short:   "List auxiliary modules",
		Long:    "Scan the module base and list the names the import hook can resolve",
		Args:    cobra.NoArgs,
		RunE:    c.Modules.Execute,
		PreRunE: preRun,
	}
	modulesCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter modules by name pattern (supports wildcards, e.g., '*dom*' or 'goog/events/*')")
	rootCmd.AddCommand(modulesCmd)
}
