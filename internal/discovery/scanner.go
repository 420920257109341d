package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scanner finds auxiliary modules below the module base directory
type Scanner struct {
	extension string
}

// NewScanner creates a Scanner for files with the given extension (".js")
func NewScanner(extension string) *Scanner {
	return &Scanner{extension: extension}
}

// Scan returns the symbolic module names found below root, sorted.
// A module name is the path relative to root with forward slashes, the same
// string the import hook is called with.
func (s *Scanner) Scan(root string) ([]string, error) {
	var modules []string

	// Clean and validate the root path
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("module base does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("module base is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			// Skip hidden directories (starting with .)
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasSuffix(d.Name(), s.extension) {
			name, err := ModuleName(root, path)
			if err != nil {
				return err
			}
			modules = append(modules, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(modules)
	return modules, nil
}

// ModuleName returns the name under which the import hook resolves path against base
func ModuleName(base, path string) (string, error) {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return "", fmt.Errorf("module %s is not below %s: %w", path, base, err)
	}
	if strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("module %s is not below %s", path, base)
	}
	return filepath.ToSlash(rel), nil
}
