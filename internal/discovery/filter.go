package discovery

import (
	"path"
	"strings"
)

// Filter filters module names by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters module names by name pattern using wildcard matching.
// Supports patterns like "*dom*.js" or "goog/events/*"; a pattern without
// wildcards matches any module whose name contains it.
func (f *Filter) FilterByName(modules []string, pattern string) []string {
	if pattern == "" {
		return modules
	}

	var filtered []string
	for _, module := range modules {
		if f.matches(module, pattern) {
			filtered = append(filtered, module)
		}
	}
	return filtered
}

func (f *Filter) matches(module, pattern string) bool {
	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(module, pattern)
	}

	// Try the full name first, then just the file name
	for _, candidate := range []string{module, path.Base(module)} {
		if matched, err := path.Match(pattern, candidate); err == nil && matched {
			return true
		}
	}

	// path.Match does not cross "/"; fall back to ordered substring matching
	// so "*events*" also finds "goog/events/events.js"
	rest := module
	found := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" || strings.Contains(part, "?") {
			continue
		}
		i := strings.Index(rest, part)
		if i < 0 {
			return false
		}
		rest = rest[i+len(part):]
		found = true
	}
	return found
}
