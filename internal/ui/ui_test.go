package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"bundletest/internal/config"
	"bundletest/internal/domain"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func sampleRecord(fail, errs int) *domain.RunRecord {
	r := &domain.RunRecord{
		ID:         "6f1c9a2e-0000-4000-8000-000000000000",
		Artifact:   "target/test.js",
		EntryPoint: "tongue.test.test_all",
		Result:     domain.TestResult{Passed: 8, Fail: fail, Error: errs},
		Modules:    []string{"deps.js", "goog/dom/dom.js"},
		Timestamp:  "2026-10-17T10:00:00Z",
	}
	r.DurationSecs = 1.25
	r.Duration = "1.25s"
	return r
}

func TestFormatter_PrintSummaryPassed(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	f := NewFormatter(config.New())
	f.SetOutput(&buf)

	f.PrintSummary(sampleRecord(0, 0))

	out := buf.String()
	assert.Contains(t, out, "Test Bundle Statistics")
	assert.Contains(t, out, "tongue.test.test_all")
	assert.Contains(t, out, "1.25s")
	assert.Contains(t, out, "✓ All tests passed! (8)")
	assert.NotContains(t, out, "Failed Imports")
}

func TestFormatter_PrintSummaryFailed(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	f := NewFormatter(config.New())
	f.SetOutput(&buf)

	rec := sampleRecord(2, 1)
	rec.ImportFailures = []string{"gone.js: open gone.js: no such file or directory"}
	f.PrintSummary(rec)

	out := buf.String()
	assert.Contains(t, out, "✗ 2 test(s) failed and 1 errored out of 11")
	assert.Contains(t, out, "Failed Imports")
	assert.Contains(t, out, "! import gone.js")
}

func TestFormatter_PrintModules(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	cfg := config.New()
	cfg.ModuleBase = "/mods/"
	f := NewFormatter(cfg)
	f.SetOutput(&buf)

	f.PrintModules([]string{"a.js", "foo/bar.js"})

	out := buf.String()
	assert.Contains(t, out, "/mods/foo/bar.js")
	assert.Contains(t, out, "✓ Found 2 module(s)")
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "short", shorten("short", 10))
	got := shorten("/a/very/long/path/to/target/test.js", 12)
	assert.Equal(t, 12, len([]rune(got)))
	assert.Equal(t, "…get/test.js", got)
}

func TestPrintHistoryTable(t *testing.T) {
	var buf bytes.Buffer
	history := []domain.RunRecord{*sampleRecord(0, 0), *sampleRecord(2, 0)}
	history[1].ID = "abc"

	PrintHistoryTable(&buf, history)

	out := buf.String()
	assert.Contains(t, out, "Bundle Test Runs (2)")
	assert.Contains(t, out, "6f1c9a2e")
	assert.NotContains(t, out, "6f1c9a2e-0000")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "1 failing run(s)")
}

func TestFormatRunDetails(t *testing.T) {
	rec := sampleRecord(1, 0)
	rec.ImportFailures = []string{"x.js: boom"}

	out := formatRunDetails(*rec)
	assert.Contains(t, out, "✗ FAIL")
	assert.Contains(t, out, "tongue.test.test_all")
	assert.Contains(t, out, "Auxiliary modules (2)")
	assert.Contains(t, out, "x.js: boom")

	assert.Contains(t, formatRunDetails(*sampleRecord(0, 0)), "✓ PASS")
	assert.Contains(t, formatRunListItem(0, *sampleRecord(0, 0)), "1.")
}
