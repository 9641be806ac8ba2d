package dotenv

import (
	"os"
	"path/filepath"
)

// FindUpwards looks for name in startDir and each of its ancestors, nearest
// first. It reports false once the filesystem root has been checked.
func FindUpwards(startDir, name string) (string, bool) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false
	}

	for {
		candidate := filepath.Join(dir, name)
		if fileExists(candidate) {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
