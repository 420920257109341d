package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/coreos/pkg/capnslog"
	"github.com/dop251/goja"

	"bundletest/internal/config"
)

var plog = capnslog.NewPackageLogger("bundletest", "loader")

// Progress receives a notification for every auxiliary module the hook loads
type Progress interface {
	ModuleLoaded(name string, err error)
}

// Loader runs the primary artifact and resolves auxiliary modules on demand
type Loader struct {
	config   *config.Config
	console  io.Writer
	progress Progress

	modules  []string
	failures []string
	loaded   map[string]bool
}

// New creates a Loader that writes bundle console output to stdout
func New(cfg *config.Config) *Loader {
	return &Loader{
		config:  cfg,
		console: os.Stdout,
	}
}

// SetConsole redirects console.* output of the bundle
func (l *Loader) SetConsole(w io.Writer) {
	l.console = w
}

// SetProgress sets the sink notified after each auxiliary module
func (l *Loader) SetProgress(p Progress) {
	l.progress = p
}

// Modules returns the auxiliary module names requested during the last Load, in order
func (l *Loader) Modules() []string {
	return l.modules
}

// ImportFailures returns "name: error" entries for auxiliary modules that failed to load
func (l *Loader) ImportFailures() []string {
	return l.failures
}

// Load executes the artifact at path in a fresh registry.
// The returned registry is ready for the runner; on error it is nil.
func (l *Loader) Load(path string) (*Registry, error) {
	l.modules = nil
	l.failures = nil
	l.loaded = make(map[string]bool)

	reg := NewRegistry()
	if err := l.prepare(reg); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	plog.Infof("loading artifact %s", path)
	if err := reg.RunFile(path); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	plog.Debugf("artifact %s loaded with %d auxiliary module(s)", path, len(l.modules))

	return reg, nil
}

// prepare installs namespaces, the import hook and console before any artifact code runs
func (l *Loader) prepare(reg *Registry) error {
	for _, ns := range l.config.Namespaces {
		if err := reg.Define(ns); err != nil {
			return err
		}
	}
	if err := reg.Set(l.config.ImportHook, l.importHook(reg)); err != nil {
		return err
	}
	return installConsole(reg, l.console)
}

// importHook returns the function the bundle calls with a symbolic module name
func (l *Loader) importHook(reg *Registry) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		name := call.Argument(0).String()
		// a module runs once per load; it is marked before running so cycles terminate
		if l.loaded[name] {
			plog.Debugf("module %s already loaded", name)
			return reg.rt.ToValue(true)
		}
		l.loaded[name] = true

		path := l.config.ResolveModule(name)
		l.modules = append(l.modules, name)

		plog.Debugf("importing %s from %s", name, path)
		err := reg.RunFile(path)
		if l.progress != nil {
			l.progress.ModuleLoaded(name, err)
		}
		if err == nil {
			return reg.rt.ToValue(true)
		}

		// failed modules are retried on the next import, like a failed require
		delete(l.loaded, name)
		l.failures = append(l.failures, fmt.Sprintf("%s: %v", name, err))
		if l.config.Strict() {
			panic(reg.rt.NewGoError(&LoadError{Path: path, Err: err}))
		}
		plog.Warningf("auxiliary module %s failed to load: %v", name, err)
		return reg.rt.ToValue(true)
	}
}
