package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"nvgtls/internal/project"
	"nvgtls/internal/settings"
)

const configHint = project.ConfigName

// loadSettings reads --config, or the nearest nvgtls.toml above the working
// directory, or falls back to defaults. The returned path is empty when no
// file was used. --max-diagnostics overrides the file when set.
func loadSettings(cmd *cobra.Command) (settings.Settings, string, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return settings.Default(), "", fmt.Errorf("failed to get config flag: %w", err)
	}
	if path == "" {
		found, ok, err := project.FindConfig(".")
		if err != nil {
			return settings.Default(), "", err
		}
		if ok {
			path = found
		}
	}

	var s settings.Settings
	if path != "" {
		s, err = settings.Load(path)
		if err != nil {
			return s, path, err
		}
	} else {
		s = settings.Default()
		if err := s.Normalize(); err != nil {
			return s, "", err
		}
	}

	maxDiag, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return s, path, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if maxDiag >= 0 {
		s.Diagnostics.MaxDiagnostics = maxDiag
	}
	return s, path, nil
}

// predefinedPath returns --predefined or resources/as.predefined next to the executable.
func predefinedPath(cmd *cobra.Command) string {
	if p, _ := cmd.Root().PersistentFlags().GetString("predefined"); p != "" {
		return p
	}
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(exe), "resources", "as.predefined")
}
