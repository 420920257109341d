package parser

import (
	"fmt"
	"math"

	"github.com/dop251/goja"

	"bundletest/internal/domain"
)

// Result field names as returned by the entry point
const (
	FieldPassed = "passed"
	FieldFail   = "fail"
	FieldError  = "error"
)

// ResultParser decodes {passed, fail, error} objects
type ResultParser struct{}

// NewResultParser creates a new ResultParser
func NewResultParser() *ResultParser {
	return &ResultParser{}
}

// Parse requires all three fields to be present, numeric, integral and non-negative.
// Values too large for int are clamped to math.MaxInt.
func (p *ResultParser) Parse(rt *goja.Runtime, value goja.Value) (domain.TestResult, error) {
	if value == nil || goja.IsUndefined(value) || goja.IsNull(value) {
		return domain.TestResult{}, fmt.Errorf("entry point returned %v, want an object", value)
	}
	obj, ok := value.(*goja.Object)
	if !ok {
		return domain.TestResult{}, fmt.Errorf("entry point returned %s, want an object", value.String())
	}

	var result domain.TestResult
	fields := []struct {
		name   string
		target *int
	}{
		{FieldPassed, &result.Passed},
		{FieldFail, &result.Fail},
		{FieldError, &result.Error},
	}
	for _, f := range fields {
		n, err := p.count(obj, f.name)
		if err != nil {
			return domain.TestResult{}, err
		}
		*f.target = n
	}

	if err := result.Validate(); err != nil {
		return domain.TestResult{}, err
	}
	return result, nil
}

func (p *ResultParser) count(obj *goja.Object, name string) (int, error) {
	v := obj.Get(name)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return 0, fmt.Errorf("result field %q is missing", name)
	}

	// counts beyond math.MaxInt are clamped; they still mean "more than zero"
	switch n := v.Export().(type) {
	case int64:
		if n < 0 {
			return 0, fmt.Errorf("result field %q is negative: %d", name, n)
		}
		if uint64(n) > math.MaxInt {
			return math.MaxInt, nil
		}
		return int(n), nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, fmt.Errorf("result field %q is not an integer: %v", name, n)
		}
		if n < 0 {
			return 0, fmt.Errorf("result field %q is negative: %v", name, n)
		}
		if n >= float64(math.MaxInt) {
			return math.MaxInt, nil
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("result field %q is not a number: %s", name, v.String())
	}
}
