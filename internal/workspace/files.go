package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// DiskWriter is the stand-alone ContentWriter: it writes resolved content
// straight to the filesystem, preserving the file's mode when it exists.
type DiskWriter struct{}

var _ ContentWriter = DiskWriter{}

// WriteResolvedContent replaces the file at path with content.
func (DiskWriter) WriteResolvedContent(path string, content string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("failed to write resolved content to %s: %w", path, err)
	}
	return nil
}
