package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ModuleProgress shows a spinner while the artifact pulls in auxiliary modules
type ModuleProgress struct {
	bar    *progressbar.ProgressBar
	loaded int
	failed int
}

// NewModuleProgress creates a new spinner on stderr
func NewModuleProgress() *ModuleProgress {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(describeModules(0, 0)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ModuleProgress{bar: bar}
}

// ModuleLoaded updates the spinner with success and failure counts
func (p *ModuleProgress) ModuleLoaded(name string, err error) {
	if err != nil {
		p.failed++
	} else {
		p.loaded++
	}
	p.bar.Describe(describeModules(p.loaded, p.failed))
	p.bar.Add(1)
}

// Finish completes the spinner
func (p *ModuleProgress) Finish() {
	p.bar.Finish()
}

func describeModules(loaded, failed int) string {
	return color.CyanString("Loading modules: ") +
		color.GreenString("[loaded: %d", loaded) +
		" | " +
		color.RedString("failed: %d]", failed)
}
