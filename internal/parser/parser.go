package parser

import (
	"github.com/dop251/goja"

	"bundletest/internal/domain"
)

// Parser converts the value returned by the entry point into a TestResult
type Parser interface {
	Parse(rt *goja.Runtime, value goja.Value) (domain.TestResult, error)
}
