package buffer

import (
	"fmt"
	"os"
)

// Open reads the file at path into a new LineBuffer. A missing or unreadable
// file yields a fresh single-line buffer, so opening always succeeds from
// the user's point of view and editing starts empty.
func Open(path string) *LineBuffer {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewLineBuffer("")
	}
	return NewLineBuffer(string(data))
}

// Save writes the full contents of buf to path, replacing whatever was
// there. A failed save is reported to the caller and changes nothing in
// memory.
func Save(path string, buf Buffer) error {
	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
