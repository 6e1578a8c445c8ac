// Package workspace provides project root detection.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound indicates no project root was found.
var ErrNotFound = errors.New("not inside a project with a .claude directory")

// Markers used to detect the project root.
const (
	// PrimaryMarker identifies a project that has Claude Code
	// configuration. Hook invocations run with this as cwd.
	PrimaryMarker = ".claude"

	// SecondaryMarker is the repository root, used when the project
	// has not created .claude yet (e.g. before `zenhook install`).
	SecondaryMarker = ".git"
)

// Find locates the project root by walking up from the given
// directory. A directory containing .claude/ wins over one containing
// only .git/. Does not resolve symlinks to stay consistent with
// os.Getwd().
func Find(startDir string) (string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	var secondaryMatch string

	current := absDir
	for {
		if info, err := os.Stat(filepath.Join(current, PrimaryMarker)); err == nil && info.IsDir() {
			return current, nil
		}
		if secondaryMatch == "" {
			if _, err := os.Stat(filepath.Join(current, SecondaryMarker)); err == nil {
				secondaryMatch = current
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			if secondaryMatch != "" {
				return secondaryMatch, nil
			}
			return "", ErrNotFound
		}
		current = parent
	}
}

// FindFromCwd locates the project root from the current working directory.
func FindFromCwd() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return Find(cwd)
}
