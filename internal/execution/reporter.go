package execution

import (
	"bundletest/internal/domain"
	"bundletest/internal/exitcodes"
)

// ExitStatus maps a result to the process exit status: any failure or error is 1
func ExitStatus(result domain.TestResult) int {
	if result.HasFailures() {
		return exitcodes.TestFailure
	}
	return exitcodes.Success
}
