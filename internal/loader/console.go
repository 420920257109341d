package loader

import (
	"fmt"
	"io"
	"strings"

	"github.com/dop251/goja"
)

var consoleMethods = []string{"log", "info", "warn", "error", "debug"}

// installConsole exposes a console object whose methods print one line per call to w
func installConsole(reg *Registry, w io.Writer) error {
	console := reg.rt.NewObject()
	write := func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		fmt.Fprintln(w, strings.Join(parts, " "))
		return goja.Undefined()
	}
	for _, name := range consoleMethods {
		if err := console.Set(name, write); err != nil {
			return fmt.Errorf("install console.%s: %w", name, err)
		}
	}
	return reg.Set("console", console)
}
