package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"golang.org/x/term"

	"nvgtls/internal/settings"
	"nvgtls/internal/version"
)

// errFailed сигнализирует о найденных ошибках; сообщение уже выведено.
var errFailed = errors.New("diagnostics reported errors")

var rootCmd = &cobra.Command{
	Use:           "nvgtls",
	Short:         "NVGT script analysis front-end",
	Long:          `nvgtls tokenizes and inspects NVGT/AngelScript scripts, resolving #include graphs and reporting diagnostics`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := configureLogging(cmd); err != nil {
			return err
		}
		return startProfiling(cmd)
	},
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "settings file (default: nearest "+configHint+")")
	rootCmd.PersistentFlags().String("predefined", "", "predefined declarations file (default: <exe dir>/resources/as.predefined)")
	rootCmd.PersistentFlags().Int("max-diagnostics", -1, "maximum number of diagnostics per file (-1 = from settings, 0 = unlimited)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to this file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to this file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a runtime trace to this file")
}

func main() {
	err := rootCmd.Execute()
	if stopErr := profiling.Stop(); stopErr != nil {
		fmt.Fprintf(os.Stderr, "failed to finish profiling: %v\n", stopErr)
	}
	if err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	flag, _ := cmd.Root().PersistentFlags().GetString("color")
	switch flag {
	case "on":
		return true
	case "off":
		return false
	}
	return isTerminal(f)
}

// loaded хранит настройки, прочитанные до запуска команды.
var loaded struct {
	settings settings.Settings
	path     string
	err      error
}

func configureLogging(cmd *cobra.Command) error {
	verbose, err := cmd.Root().PersistentFlags().GetCount("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	loaded.settings, loaded.path, loaded.err = loadSettings(cmd)
	level := verbose
	if loaded.err == nil {
		level = max(level, loaded.settings.Verbosity())
	}
	commonlog.Configure(level, nil)
	return nil
}

// currentSettings returns the settings loaded for this invocation.
func currentSettings() (settings.Settings, string, error) {
	return loaded.settings, loaded.path, loaded.err
}
