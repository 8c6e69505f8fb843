package sysnet

import (
	"fmt"
	"os"
	"path/filepath"

	"grimm.is/emergenet/internal/logging"
)

// WriteFiles persists a path -> content batch. Each file is written to a
// temp file in its target directory and renamed into place so readers
// never observe a partial file. The first failure aborts the batch;
// files already renamed stay in place.
func WriteFiles(files map[string]string) error {
	for path, content := range files {
		if err := writeFile(path, content); err != nil {
			return err
		}
		logging.Debug("wrote file", "path", path, "bytes", len(content))
	}
	return nil
}

func writeFile(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
