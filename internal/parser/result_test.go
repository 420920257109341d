package parser

import (
	"math"
	"testing"

	"github.com/dop251/goja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bundletest/internal/domain"
)

func eval(t *testing.T, rt *goja.Runtime, src string) goja.Value {
	t.Helper()
	v, err := rt.RunString(src)
	require.NoError(t, err)
	return v
}

func TestResultParser_Parse(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected domain.TestResult
	}{
		{name: "all passed", src: "({passed: 10, fail: 0, error: 0})", expected: domain.TestResult{Passed: 10}},
		{name: "failures", src: "({passed: 8, fail: 2, error: 0})", expected: domain.TestResult{Passed: 8, Fail: 2}},
		{name: "errors", src: "({passed: 0, fail: 0, error: 3})", expected: domain.TestResult{Error: 3}},
		{name: "integral floats", src: "({passed: 4/2, fail: 1.0, error: 0})", expected: domain.TestResult{Passed: 2, Fail: 1}},
		{name: "extra fields ignored", src: "({passed: 1, fail: 0, error: 0, duration: 12.5})", expected: domain.TestResult{Passed: 1}},
		{name: "getter fields", src: "({get passed() { return 5; }, fail: 0, error: 0})", expected: domain.TestResult{Passed: 5}},
		{name: "count above int range", src: "({passed: 0, fail: 1e20, error: 0})", expected: domain.TestResult{Fail: math.MaxInt}},
		{name: "counts near int range", src: "({passed: 0, fail: 6e18, error: 6e18})", expected: domain.TestResult{Fail: 6000000000000000000, Error: 6000000000000000000}},
		{name: "max safe integer", src: "({passed: Number.MAX_SAFE_INTEGER, fail: 0, error: 0})", expected: domain.TestResult{Passed: 9007199254740991}},
	}

	p := NewResultParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := goja.New()
			result, err := p.Parse(rt, eval(t, rt, tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestResultParser_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "undefined", src: "undefined"},
		{name: "null", src: "null"},
		{name: "number", src: "3"},
		{name: "string", src: "'ok'"},
		{name: "missing error field", src: "({passed: 1, fail: 0})"},
		{name: "null field", src: "({passed: 1, fail: null, error: 0})"},
		{name: "string field", src: "({passed: '1', fail: 0, error: 0})"},
		{name: "fractional", src: "({passed: 1.5, fail: 0, error: 0})"},
		{name: "negative", src: "({passed: 1, fail: -1, error: 0})"},
		{name: "NaN", src: "({passed: NaN, fail: 0, error: 0})"},
		{name: "infinite", src: "({passed: 1, fail: 0, error: Infinity})"},
	}

	p := NewResultParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := goja.New()
			_, err := p.Parse(rt, eval(t, rt, tt.src))
			assert.Error(t, err)
		})
	}
}

func TestResultParser_ParseNil(t *testing.T) {
	_, err := NewResultParser().Parse(goja.New(), nil)
	assert.Error(t, err)
}
