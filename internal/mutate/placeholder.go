package mutate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Paths the placeholder fix must never create under, regardless of what
// the logs claim is missing.
var protectedPatterns = []string{
	".git",
	".git/**",
	"**/.git/**",
}

// CreatePlaceholder creates an empty file at path under root, creating
// missing parent directories as needed. Returns false without touching
// anything when a file already exists at path; existing content is never
// truncated or overwritten.
func CreatePlaceholder(root, path string) (bool, error) {
	clean := filepath.ToSlash(filepath.Clean(path))
	if filepath.IsAbs(path) || clean == ".." || strings.HasPrefix(clean, "../") {
		return false, fmt.Errorf("placeholder path %q escapes the repository", path)
	}

	for _, pattern := range protectedPatterns {
		matched, err := doublestar.Match(pattern, clean)
		if err != nil {
			return false, err
		}
		if matched {
			return false, fmt.Errorf("placeholder path %q is protected", path)
		}
	}

	target := filepath.Join(root, filepath.FromSlash(clean))
	if _, err := os.Stat(target); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return false, err
	}

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return false, err
	}
	return true, f.Close()
}
