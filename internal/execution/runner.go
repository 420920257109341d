package execution

import (
	"errors"
	"fmt"
	"time"

	"github.com/coreos/pkg/capnslog"
	"github.com/dop251/goja"

	"bundletest/internal/domain"
	"bundletest/internal/loader"
	"bundletest/internal/parser"
)

var plog = capnslog.NewPackageLogger("bundletest", "execution")

// EntryPointError reports that the entry point could not be called or returned garbage
type EntryPointError struct {
	EntryPoint string
	Err        error
}

func (e *EntryPointError) Error() string {
	return fmt.Sprintf("entry point %s: %v", e.EntryPoint, e.Err)
}

func (e *EntryPointError) Unwrap() error {
	return e.Err
}

// IsEntryPointError reports whether err wraps an *EntryPointError
func IsEntryPointError(err error) bool {
	var ee *EntryPointError
	return errors.As(err, &ee)
}

// Runner calls the entry point exactly once
type Runner struct {
	parser parser.Parser
}

// NewRunner creates a new Runner
func NewRunner(p parser.Parser) *Runner {
	return &Runner{parser: p}
}

// Run looks up entryPoint in reg, calls it with no arguments and decodes its result.
// The function is called as a method of the object that owns it.
func (r *Runner) Run(reg *loader.Registry, entryPoint string) (domain.TestResult, error) {
	value, owner, err := reg.Lookup(entryPoint)
	if err != nil {
		return domain.TestResult{}, &EntryPointError{EntryPoint: entryPoint, Err: err}
	}

	fn, ok := goja.AssertFunction(value)
	if !ok {
		return domain.TestResult{}, &EntryPointError{EntryPoint: entryPoint, Err: fmt.Errorf("not callable: %s", value.String())}
	}

	plog.Infof("running %s", entryPoint)
	start := time.Now()
	out, err := fn(owner)
	if err != nil {
		return domain.TestResult{}, &EntryPointError{EntryPoint: entryPoint, Err: err}
	}
	plog.Debugf("%s returned after %s", entryPoint, time.Since(start).Round(time.Millisecond))

	result, err := r.parser.Parse(reg.Runtime(), out)
	if err != nil {
		return domain.TestResult{}, &EntryPointError{EntryPoint: entryPoint, Err: err}
	}
	return result, nil
}
