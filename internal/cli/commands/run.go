package commands

import (
	"github.com/coreos/pkg/capnslog"
	"github.com/spf13/cobra"

	"bundletest/internal/config"
	"bundletest/internal/domain"
	"bundletest/internal/harness"
	"bundletest/internal/loader"
	"bundletest/internal/storage"
	"bundletest/internal/ui"
)

var plog = capnslog.NewPackageLogger("bundletest", "commands")

// StorageFactory opens the storage selected by the config
type StorageFactory func(cfg *config.Config) (storage.Storage, error)

// RunCommand handles the run command
type RunCommand struct {
	config     *config.Config
	loader     *loader.Loader
	harness    *harness.Harness
	formatter  *ui.Formatter
	newStorage StorageFactory
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	l *loader.Loader,
	h *harness.Harness,
	formatter *ui.Formatter,
	newStorage StorageFactory,
) *RunCommand {
	return &RunCommand{
		config:     cfg,
		loader:     l,
		harness:    h,
		formatter:  formatter,
		newStorage: newStorage,
	}
}

// Execute runs the command.
// A *harness.TestFailureError is returned when the bundle reports failures.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	rc.loader.SetConsole(cmd.OutOrStdout())

	var progress *ui.ModuleProgress
	if !rc.config.Flags.Quiet {
		progress = ui.NewModuleProgress()
		rc.loader.SetProgress(progress)
	}

	plog.Infof("running %s", rc.harness.Describe())
	record, err := rc.harness.Run()
	if progress != nil {
		progress.Finish()
	}
	if record == nil {
		return err
	}

	if !rc.config.Flags.NoSave {
		rc.save(record)
	}

	if !rc.config.Flags.Quiet {
		rc.formatter.SetOutput(cmd.OutOrStdout())
		rc.formatter.PrintSummary(record)
	}

	return err
}

// save stores the record; failures never change the outcome of the run
func (rc *RunCommand) save(record *domain.RunRecord) {
	st, err := rc.newStorage(rc.config)
	if err != nil {
		plog.Warningf("failed to open storage: %v", err)
		return
	}
	if c, ok := st.(interface{ Close() error }); ok {
		defer c.Close()
	}
	if err := st.Save(record); err != nil {
		plog.Warningf("failed to save run %s: %v", record.ID, err)
	}
}
