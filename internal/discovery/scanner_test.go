package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	// Create a temporary module base for testing
	tmpDir := t.TempDir()

	files := []string{
		"base.js",
		"deps.js",
		"goog/dom/dom.js",
		"goog/events/events.js",
		".cache/stale.js",
		"README.md",
	}
	for _, file := range files {
		fullPath := filepath.Join(tmpDir, file)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", file, err)
		}
		if err := os.WriteFile(fullPath, []byte("// module"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}

	scanner := NewScanner(".js")

	t.Run("scans modules correctly", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := []string{"base.js", "deps.js", "goog/dom/dom.js", "goog/events/events.js"}
		if len(results) != len(expected) {
			t.Fatalf("expected %d modules, got %d: %v", len(expected), len(results), results)
		}
		for i := range expected {
			if results[i] != expected[i] {
				t.Errorf("expected %s at %d, got %s", expected[i], i, results[i])
			}
		}
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan("/non/existent/path")
		if err == nil {
			t.Error("expected error for non-existent directory")
		}
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		_, err := scanner.Scan(filepath.Join(tmpDir, "base.js"))
		if err == nil {
			t.Error("expected error for file path")
		}
	})
}

func TestModuleName(t *testing.T) {
	name, err := ModuleName("/base", "/base/foo/bar.js")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "foo/bar.js" {
		t.Errorf("expected foo/bar.js, got %s", name)
	}

	if _, err := ModuleName("/base", "/elsewhere/x.js"); err == nil {
		t.Error("expected error for path outside base")
	}
}
