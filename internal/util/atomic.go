// Package util provides small file-handling helpers shared by the
// zenhook commands.
package util

import (
	"encoding/json"
	"os"
)

// AtomicWriteJSON writes indented JSON to a file atomically. Used for
// settings.json rewrites so a crash mid-write never leaves Claude Code
// with a half-written config.
func AtomicWriteJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return AtomicWriteFile(path, data, 0600)
}

// AtomicWriteFile writes data to a file atomically by writing a
// sibling temp file and renaming it over the target. The rename is
// atomic on POSIX systems.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmpFile := path + ".tmp"

	if err := os.WriteFile(tmpFile, data, perm); err != nil {
		return err
	}

	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}

	return nil
}
