package execution

import (
	"bundletest/internal/domain"
	"bundletest/internal/loader"
)

// Executor invokes the aggregate entry point of a loaded registry
type Executor interface {
	Run(reg *loader.Registry, entryPoint string) (domain.TestResult, error)
}
