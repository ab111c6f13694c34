package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"nvgtls/internal/driver"
	"nvgtls/internal/project"
	"nvgtls/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] [dir...]",
	Short: "Re-inspect scripts whenever they change",
	Long:  "Re-inspect scripts whenever they change. Without arguments the project root\n(the directory holding " + configHint + ") is watched, or the current directory.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().Duration("debounce", 150*time.Millisecond, "wait this long for changes to settle")
	watchCmd.Flags().Bool("no-cache", false, "do not use the on-disk token cache")
}

func runWatch(cmd *cobra.Command, args []string) error {
	debounce, err := cmd.Flags().GetDuration("debounce")
	if err != nil {
		return fmt.Errorf("failed to get debounce flag: %w", err)
	}
	s, configPath, err := currentSettings()
	if err != nil {
		return err
	}
	roots, err := watchRoots(args)
	if err != nil {
		return err
	}

	in := driver.NewInspector(s, predefinedPath(cmd), openTokenCache(cmd), nil)
	out := cmd.OutOrStdout()
	colored := useColor(cmd, os.Stdout)
	w, err := driver.NewWatcher(in, driver.WatchOptions{
		Roots:      roots,
		ConfigPath: configPath,
		Debounce:   debounce,
		OnRound: func(ev driver.WatchEvent) {
			if ev.Err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", ev.Err)
			}
			if ev.SettingsReloaded {
				fmt.Fprintln(out, "settings reloaded")
			}
			opts := reportOptions{format: "pretty", color: colored}
			if err := writeReport(out, ev.Results, opts, nil); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
			files := statuses(ev.Results)
			_ = ui.StatusTable(out, files, terminalWidth(os.Stdout), colored)
			_ = ui.Summary(out, ui.Total(files), colored)
		},
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// watchRoots defaults to the project root, then to the working directory.
func watchRoots(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	root, ok, err := project.FindProjectRoot(".")
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{"."}, nil
	}
	return []string{root}, nil
}
