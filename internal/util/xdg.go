package util

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDir = "palette"

// DataDir returns the palette data directory under $XDG_DATA_HOME, falling
// back to ~/.local/share/palette. Relative XDG_DATA_HOME values are invalid
// under XDG rules and are ignored.
func DataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" && filepath.IsAbs(dataHome) {
		return filepath.Join(dataHome, appDir), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".local", "share", appDir), nil
}

// DataFile returns the path of name inside DataDir.
func DataFile(name string) (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
