package loader

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dop251/goja"
)

// ErrNotFound is returned by Lookup when a path segment is undefined or null
var ErrNotFound = errors.New("not found in registry")

// Registry is the namespace shared between the loader and the runner.
// It owns a single JavaScript runtime; it is not safe for concurrent use.
type Registry struct {
	rt *goja.Runtime
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{rt: goja.New()}
}

// Runtime returns the underlying runtime
func (r *Registry) Runtime() *goja.Runtime {
	return r.rt
}

// Set installs a host value under a global name
func (r *Registry) Set(name string, value interface{}) error {
	if err := r.rt.Set(name, value); err != nil {
		return fmt.Errorf("set global %s: %w", name, err)
	}
	return nil
}

// Define makes sure an object exists at the dotted namespace path.
// Existing objects along the path are left untouched.
func (r *Registry) Define(namespace string) error {
	parts, err := splitPath(namespace)
	if err != nil {
		return err
	}

	obj := r.rt.GlobalObject()
	for _, part := range parts {
		v := obj.Get(part)
		if isMissing(v) {
			next := r.rt.NewObject()
			if err := obj.Set(part, next); err != nil {
				return fmt.Errorf("define %s: %w", namespace, err)
			}
			obj = next
			continue
		}
		next, ok := v.(*goja.Object)
		if !ok {
			return fmt.Errorf("define %s: %s is not an object", namespace, part)
		}
		obj = next
	}
	return nil
}

// Lookup resolves a dotted path such as "tongue.test.test_all".
// It returns the value and the object that owns it.
func (r *Registry) Lookup(path string) (value goja.Value, owner *goja.Object, err error) {
	parts, err := splitPath(path)
	if err != nil {
		return nil, nil, err
	}

	owner = r.rt.GlobalObject()
	for i, part := range parts {
		value = owner.Get(part)
		if isMissing(value) {
			return nil, nil, fmt.Errorf("%w: %s (missing %q)", ErrNotFound, path, strings.Join(parts[:i+1], "."))
		}
		if i == len(parts)-1 {
			break
		}
		owner = value.ToObject(r.rt)
	}
	return value, owner, nil
}

// RunFile compiles and executes the file at path in the global scope
func (r *Registry) RunFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return r.RunScript(path, string(src))
}

// RunScript compiles and executes src in the global scope, naming it name in stack traces
func (r *Registry) RunScript(name, src string) error {
	prg, err := goja.Compile(name, src, false)
	if err != nil {
		return err
	}
	if _, err := r.rt.RunProgram(prg); err != nil {
		return err
	}
	return nil
}

func splitPath(path string) ([]string, error) {
	parts := strings.Split(path, ".")
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("invalid path %q", path)
		}
	}
	return parts, nil
}

func isMissing(v goja.Value) bool {
	return v == nil || goja.IsUndefined(v) || goja.IsNull(v)
}
