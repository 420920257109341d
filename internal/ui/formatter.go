package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"bundletest/internal/config"
	"bundletest/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to color.Output
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{
		config: cfg,
		out:    color.Output,
	}
}

// SetOutput redirects the formatter
func (f *Formatter) SetOutput(w io.Writer) {
	f.out = w
}

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	white  = color.New(color.FgWhite)
)

// PrintSummary displays the statistics of a run
func (f *Formatter) PrintSummary(record *domain.RunRecord) {
	r := record.Result

	fmt.Fprint(f.out, "\n")
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                    Test Bundle Statistics                     ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	f.row("Artifact", white, shorten(record.Artifact, 27))
	f.separator()
	f.row("Entry Point", white, shorten(record.EntryPoint, 27))
	f.separator()
	f.row("Passed", green, fmt.Sprintf("%d", r.Passed))
	f.separator()
	f.row("Failed", failColor(r.Fail), fmt.Sprintf("%d", r.Fail))
	f.separator()
	f.row("Errors", failColor(r.Error), fmt.Sprintf("%d", r.Error))
	f.separator()
	f.row("Auxiliary Modules", white, fmt.Sprintf("%d", len(record.Modules)))
	if len(record.ImportFailures) > 0 {
		f.separator()
		f.row("Failed Imports", yellow, fmt.Sprintf("%d", len(record.ImportFailures)))
	}
	f.separator()
	f.row("Duration", white, fmt.Sprintf("%.2fs", record.DurationSecs))
	f.separator()
	f.row("Timestamp", white, record.Timestamp)
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	for _, failure := range record.ImportFailures {
		yellow.Fprintf(f.out, "! import %s\n", failure)
	}

	// Print summary line
	fmt.Fprintln(f.out)
	if record.Passed() {
		green.Fprintf(f.out, "✓ All tests passed! (%d)\n", r.Passed)
	} else {
		red.Fprintf(f.out, "✗ %d test(s) failed and %d errored out of %d\n", r.Fail, r.Error, r.Total())
	}
}

// PrintModules lists auxiliary modules with the path each resolves to
func (f *Formatter) PrintModules(modules []string) {
	cyan.Fprintf(f.out, "Auxiliary modules under %s\n\n", f.config.ModuleBase)
	for i, m := range modules {
		fmt.Fprintf(f.out, "  %3d. ", i+1)
		white.Fprint(f.out, m)
		fmt.Fprintf(f.out, "  → %s\n", f.config.ResolveModule(m))
	}
	fmt.Fprintln(f.out)
	green.Fprintf(f.out, "✓ Found %d module(s)\n", len(modules))
}

func (f *Formatter) row(label string, c *color.Color, value string) {
	fmt.Fprintf(f.out, "│ %-31s │ ", label)
	c.Fprintf(f.out, "%-27s", value)
	fmt.Fprintln(f.out, " │")
}

func (f *Formatter) separator() {
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
}

func failColor(n int) *color.Color {
	if n > 0 {
		return red
	}
	return green
}

// shorten keeps the tail of s so that it fits in width runes
func shorten(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return "…" + strings.TrimLeft(string(runes[len(runes)-width+1:]), " ")
}
