package harness

import (
	"errors"
	"fmt"

	"bundletest/internal/domain"
	"bundletest/internal/exitcodes"
	"bundletest/internal/loader"
)

// TestFailureError is returned when the entry point reports failures or errors.
// It is a normal outcome of a run, not a harness malfunction.
type TestFailureError struct {
	Record *domain.RunRecord
}

func (e *TestFailureError) Error() string {
	r := e.Record.Result
	return fmt.Sprintf("%d test(s) failed, %d errored (%d passed)", r.Fail, r.Error, r.Passed)
}

// IsTestFailure reports whether err wraps a *TestFailureError
func IsTestFailure(err error) bool {
	var tf *TestFailureError
	return errors.As(err, &tf)
}

// IsLoadError reports whether err is a startup failure caused by the artifact
func IsLoadError(err error) bool {
	return loader.IsLoadError(err)
}

// ExitCode maps the error returned by Run to a process exit code.
// Anything other than a test failure is a startup failure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return exitcodes.Success
	case IsTestFailure(err):
		return exitcodes.TestFailure
	default:
		return exitcodes.LoadFailure
	}
}
