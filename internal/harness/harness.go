// Package harness ties the loader and the runner together: it applies the
// timezone, loads the artifact, calls the entry point once and turns the result
// into a RunRecord and an exit status.
package harness

import (
	"fmt"
	"time"

	"github.com/coreos/pkg/capnslog"
	"github.com/google/uuid"

	"bundletest/internal/config"
	"bundletest/internal/domain"
	"bundletest/internal/exitcodes"
	"bundletest/internal/execution"
	"bundletest/internal/loader"
)

var plog = capnslog.NewPackageLogger("bundletest", "harness")

// Harness runs one artifact
type Harness struct {
	config   *config.Config
	loader   *loader.Loader
	executor execution.Executor
}

// New creates a new Harness
func New(cfg *config.Config, l *loader.Loader, executor execution.Executor) *Harness {
	return &Harness{
		config:   cfg,
		loader:   l,
		executor: executor,
	}
}

// Run executes the steps in order: timezone, load, entry point, exit status.
// A load or entry point failure returns a nil record. A result with failures
// returns the record together with a *TestFailureError.
func (h *Harness) Run() (*domain.RunRecord, error) {
	if err := ApplyTimezone(h.config.Timezone); err != nil {
		return nil, err
	}

	start := time.Now()
	artifact := h.config.GetArtifactPath()

	reg, err := h.loader.Load(artifact)
	if err != nil {
		return nil, err
	}

	result, err := h.executor.Run(reg, h.config.EntryPoint)
	if err != nil {
		return nil, err
	}

	record := &domain.RunRecord{
		ID:             uuid.NewString(),
		Artifact:       artifact,
		EntryPoint:     h.config.EntryPoint,
		Result:         result,
		ExitStatus:     execution.ExitStatus(result),
		Modules:        h.loader.Modules(),
		ImportFailures: h.loader.ImportFailures(),
		Timestamp:      start.UTC().Format(time.RFC3339),
	}
	record.SetDuration(time.Since(start))

	plog.Infof("run %s: passed=%d fail=%d error=%d", record.ID, result.Passed, result.Fail, result.Error)

	if record.ExitStatus != exitcodes.Success {
		return record, &TestFailureError{Record: record}
	}
	return record, nil
}

// Describe returns a one-line description of the configured run for logs
func (h *Harness) Describe() string {
	return fmt.Sprintf("%s -> %s (tz=%s, imports=%s)", h.config.GetArtifactPath(), h.config.EntryPoint, h.config.Timezone, h.config.ImportPolicy)
}
