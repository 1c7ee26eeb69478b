package io

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/matzehuels/lifeweeks/pkg/errors"
)

// DefaultOutputDir is where generated calendars are written.
const DefaultOutputDir = "output"

// toDateSuffix distinguishes draw-to-date documents from normal ones.
const toDateSuffix = "_"

// Stem returns the output file stem for name: name for normal documents and
// name_ for draw-to-date documents.
func Stem(name string, drawToDate bool) string {
	if drawToDate {
		return name + toDateSuffix
	}
	return name
}

// EnsureDir creates dir and its parents if they do not exist.
func EnsureDir(dir string) error {
	if err := errors.ValidatePath(dir); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}
	return nil
}

// WriteArtifact writes data to dir/stem.format and returns the path.
func WriteArtifact(dir, stem, format string, data []byte) (string, error) {
	if err := errors.ValidateName(stem); err != nil {
		return "", err
	}
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	path := filepath.Join(dir, stem+"."+format)
	tmp, err := os.CreateTemp(dir, "."+stem+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
