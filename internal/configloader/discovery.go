package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// manifestFileName is the project manifest pyguard reads its configuration
// section from.
const manifestFileName = "pyproject.toml"

// FindProjectManifest searches upward from startDir for a pyproject.toml.
// It returns the path to the first manifest found, or an empty string if
// none exists between startDir and the filesystem root.
func FindProjectManifest(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}

	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	currentDir := absDir
	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		path := filepath.Join(currentDir, manifestFileName)
		if fileExists(path) {
			return path, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}

// fileExists reports whether path exists and is a regular file. A
// pyproject.toml with no [tool.pyguard] section is still used — Load
// falls back to defaults for every key it doesn't find.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
