package cli

import (
	"os"
	"path/filepath"
)

// readFile is a test seam for os.ReadFile, letting command tests feed image
// bytes without touching the filesystem.
var readFile = os.ReadFile

func baseName(path string) string {
	return filepath.Base(path)
}
