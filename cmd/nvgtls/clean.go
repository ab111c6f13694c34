package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"nvgtls/internal/driver"
	"nvgtls/internal/version"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop the on-disk token cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := driver.OpenDiskCache(version.Name)
		if err != nil {
			return fmt.Errorf("failed to open token cache: %w", err)
		}
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to drop token cache: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "token cache cleared")
		return nil
	},
}
