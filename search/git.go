package search

import (
	"os"
	"path/filepath"
)

// FindGitRoot finds the git repository root directory starting from the given path
func FindGitRoot(startPath string) (string, bool) {
	path := startPath
	for {
		// .git is a file in worktrees and submodules
		if _, err := os.Stat(filepath.Join(path, ".git")); err == nil {
			return path, true
		}

		parent := filepath.Dir(path)
		if parent == path {
			return "", false
		}
		path = parent
	}
}

// GetCurrentGitRoot finds the git repository root from the current working directory
func GetCurrentGitRoot() (string, bool) {
	wd, err := os.Getwd()
	if err != nil {
		return "", false
	}
	return FindGitRoot(wd)
}
