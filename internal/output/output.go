// Package output writes the scalar result artifact.
package output

import (
	"fmt"
	"os"
)

// DefaultPath is the artifact location relative to the working directory.
const DefaultPath = "temp_file.txt"

// WriteFile replaces the contents of path with text. No newline is added.
// A failed close is reported, since the data may not have reached disk.
func WriteFile(path, text string) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	if _, err := f.WriteString(text); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
