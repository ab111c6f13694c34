package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigName is the settings file looked up by FindConfig.
const ConfigName = "nvgtls.toml"

// ConfigNames lists the accepted settings files in lookup order.
var ConfigNames = []string{ConfigName, "nvgtls.yaml", "nvgtls.yml"}

// FindConfig walks up from startDir to the nearest directory holding one of
// ConfigNames. Within a directory the earlier name wins.
func FindConfig(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		for _, name := range ConfigNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// FindProjectRoot returns the directory containing the settings file, if any.
func FindProjectRoot(startDir string) (root string, ok bool, err error) {
	configPath, ok, err := FindConfig(startDir)
	if err != nil || !ok {
		return "", ok, err
	}
	return filepath.Dir(configPath), true, nil
}
