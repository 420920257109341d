package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"bundletest/internal/domain"
)

// HistoryViewer displays stored runs in an interactive TUI
type HistoryViewer struct{}

// NewHistoryViewer creates a new HistoryViewer
func NewHistoryViewer() *HistoryViewer {
	return &HistoryViewer{}
}

// View shows runs newest first: a list on the left, the selected run on the right
func (hv *HistoryViewer) View(history []domain.RunRecord) error {
	if len(history) == 0 {
		color.Yellow("No stored runs")
		return nil
	}

	runs := make([]domain.RunRecord, len(history))
	for i, r := range history {
		runs[len(history)-1-i] = r
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, r := range runs {
		list.AddItem(formatRunListItem(i, r), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsContainer, 0, 2, false)

	failing := 0
	for _, r := range runs {
		if !r.Passed() {
			failing++
		}
	}
	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Bundle Test Runs (%d total, %d failing) | Use ↑↓ to navigate, → to view details, ← to go back, Ctrl+C to exit ", len(runs), failing))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(runs) {
			detailsView.SetText(formatRunDetails(runs[index]))
			detailsView.ScrollToBeginning()
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC, tcell.KeyEsc:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatRunListItem formats a list entry using tview color tags
func formatRunListItem(index int, r domain.RunRecord) string {
	if r.Passed() {
		return fmt.Sprintf("[green]✓[white] [yellow]%d.[white] %s", index+1, r.Timestamp)
	}
	return fmt.Sprintf("[red]✗[white] [yellow]%d.[white] %s", index+1, r.Timestamp)
}

// formatRunDetails formats a run for the details pane using tview color tags
func formatRunDetails(r domain.RunRecord) string {
	var b strings.Builder

	if r.Passed() {
		fmt.Fprintf(&b, "[green]✓ PASS[white]  [gray]%s[white]\n\n", r.ID)
	} else {
		fmt.Fprintf(&b, "[red]✗ FAIL[white]  [gray]%s[white]\n\n", r.ID)
	}

	fmt.Fprintf(&b, "[cyan]Artifact:[white] %s\n", r.Artifact)
	fmt.Fprintf(&b, "[cyan]Entry point:[white] %s\n", r.EntryPoint)
	fmt.Fprintf(&b, "[cyan]Started:[white] %s  [cyan]Duration:[white] %s\n", r.Timestamp, r.Duration)
	fmt.Fprintf(&b, "[cyan]Exit status:[white] %d\n\n", r.ExitStatus)

	fmt.Fprintf(&b, "[green]passed %d[white]  [red]fail %d[white]  [red]error %d[white]\n\n", r.Result.Passed, r.Result.Fail, r.Result.Error)

	if len(r.Modules) > 0 {
		fmt.Fprintf(&b, "[yellow]Auxiliary modules (%d):[white]\n", len(r.Modules))
		for i, m := range r.Modules {
			if i == 20 {
				fmt.Fprintf(&b, "  [gray]... and %d more[white]\n", len(r.Modules)-20)
				break
			}
			fmt.Fprintf(&b, "  %s\n", tview.Escape(m))
		}
		fmt.Fprintln(&b)
	}

	if len(r.ImportFailures) > 0 {
		fmt.Fprintf(&b, "[yellow]Failed imports:[white]\n")
		for _, f := range r.ImportFailures {
			fmt.Fprintf(&b, "  [red]%s[white]\n", tview.Escape(f))
		}
	}

	return b.String()
}
