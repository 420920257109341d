package domain

import (
	"fmt"
	"math"
	"time"
)

// TestResult is the summary returned by one run of the aggregate entry point
type TestResult struct {
	Passed int `json:"passed"`
	Fail   int `json:"fail"`
	Error  int `json:"error"`
}

// HasFailures reports whether any case failed or errored
func (r TestResult) HasFailures() bool {
	return r.Fail > 0 || r.Error > 0
}

// FailureCount returns the number of cases that did not pass, capped at math.MaxInt
func (r TestResult) FailureCount() int {
	return addCounts(r.Fail, r.Error)
}

// Total returns the number of cases the entry point reported, capped at math.MaxInt
func (r TestResult) Total() int {
	return addCounts(addCounts(r.Passed, r.Fail), r.Error)
}

// addCounts sums two non-negative counts without wrapping
func addCounts(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// Validate rejects negative counts
func (r TestResult) Validate() error {
	if r.Passed < 0 || r.Fail < 0 || r.Error < 0 {
		return fmt.Errorf("negative count in result (passed=%d fail=%d error=%d)", r.Passed, r.Fail, r.Error)
	}
	return nil
}

// RunRecord describes one harness run as stored and displayed
type RunRecord struct {
	ID             string     `json:"id"`
	Artifact       string     `json:"artifact"`
	EntryPoint     string     `json:"entry_point"`
	Result         TestResult `json:"result"`
	ExitStatus     int        `json:"exit_status"`
	Modules        []string   `json:"modules,omitempty"`
	ImportFailures []string   `json:"import_failures,omitempty"`
	Duration       string     `json:"duration"`
	DurationSecs   float64    `json:"duration_seconds"`
	Timestamp      string     `json:"timestamp"`
}

// SetDuration fills both duration fields
func (r *RunRecord) SetDuration(d time.Duration) {
	r.Duration = d.String()
	r.DurationSecs = d.Seconds()
}

// Passed reports whether the run finished without failures or errors
func (r RunRecord) Passed() bool {
	return !r.Result.HasFailures()
}

// RunHistoryOutput is the complete structure of the JSON results file
type RunHistoryOutput struct {
	Last    *RunRecord  `json:"last"`
	History []RunRecord `json:"history"`
}
