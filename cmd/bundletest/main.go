package main

import (
	"fmt"
	"os"

	"bundletest/internal/cli"
	"bundletest/internal/cli/commands"
	"bundletest/internal/config"
	"bundletest/internal/harness"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI and returns the process exit code
func run(args []string) int {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "bundletest",
		Short: "Run a pre-built JavaScript test bundle",
		Long: `Load a pre-built JavaScript test bundle into an embedded runtime, call its aggregate
test entry point once and exit 0 when everything passed, 1 when tests failed or errored,
and 2 when the bundle could not be loaded or run.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetArgs(args)

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)
	cli.AddLoggingFlags(rootCmd)

	// Execute root command
	err := rootCmd.Execute()
	if err != nil && !harness.IsTestFailure(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return harness.ExitCode(err)
}
