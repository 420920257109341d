package ui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"bundletest/internal/domain"
)

// TableViewer prints stored runs as a plain table
type TableViewer struct {
	out io.Writer
}

// NewTableViewer creates a TableViewer writing to out
func NewTableViewer(out io.Writer) *TableViewer {
	return &TableViewer{out: out}
}

// View renders the history, newest last, with a totals footer
func (tv *TableViewer) View(history []domain.RunRecord) error {
	PrintHistoryTable(tv.out, history)
	return nil
}

// PrintHistoryTable renders runs with go-pretty
func PrintHistoryTable(w io.Writer, history []domain.RunRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("Bundle Test Runs (%d)", len(history)))

	t.AppendHeader(table.Row{"#", "Run", "Timestamp", "Entry Point", "Passed", "Failed", "Errors", "Duration", "Status"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "#", Align: text.AlignRight},
		{Name: "Entry Point", WidthMax: 40, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Passed", Align: text.AlignRight},
		{Name: "Failed", Align: text.AlignRight},
		{Name: "Errors", Align: text.AlignRight},
		{Name: "Duration", Align: text.AlignRight},
	})

	var passed, failed, errored, failedRuns int
	for i, r := range history {
		t.AppendRow(table.Row{
			i + 1,
			shortID(r.ID),
			r.Timestamp,
			r.EntryPoint,
			r.Result.Passed,
			r.Result.Fail,
			r.Result.Error,
			fmt.Sprintf("%.2fs", r.DurationSecs),
			statusString(r),
		})
		passed += r.Result.Passed
		failed += r.Result.Fail
		errored += r.Result.Error
		if !r.Passed() {
			failedRuns++
		}
	}

	t.AppendFooter(table.Row{"", "TOTAL", "", fmt.Sprintf("%d failing run(s)", failedRuns), passed, failed, errored, "", ""})
	t.SetStyle(table.StyleLight)
	t.Style().Format.Footer = text.FormatDefault
	t.Render()
}

func statusString(r domain.RunRecord) string {
	if r.Passed() {
		return "PASS"
	}
	return "FAIL"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
