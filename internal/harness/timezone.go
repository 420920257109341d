package harness

import (
	"fmt"
	"os"
	"time"
)

// ApplyTimezone sets TZ for the process and makes name the local time zone.
// Date handling in the bundle follows time.Local, so this must run before the artifact is loaded.
func ApplyTimezone(name string) error {
	if name == "" {
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", name, err)
	}
	if err := os.Setenv("TZ", name); err != nil {
		return fmt.Errorf("set TZ: %w", err)
	}
	time.Local = loc
	return nil
}
