// Package exitcodes defines the process exit codes used by bundletest.
package exitcodes

// Exit code constants used by bundletest:
//
// * Success (0): the entry point reported no failures and no errors
// * TestFailure (1): fail + error > 0 in the reported result
// * LoadFailure (2): the harness could not reach or complete the entry point call
const (
	Success     = 0
	TestFailure = 1
	LoadFailure = 2
)
