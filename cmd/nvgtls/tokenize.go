package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"nvgtls/internal/diagfmt"
	"nvgtls/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.nvgt...",
	Short: "Tokenize NVGT script files",
	Long:  `Tokenize breaks scripts into tokens and reports lexical diagnostics`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().IntP("jobs", "j", runtime.GOMAXPROCS(0), "files tokenized in parallel")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := formatFlag(cmd, "pretty", "json")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	s, _, err := currentSettings()
	if err != nil {
		return err
	}

	results, err := driver.TokenizeFiles(cmd.Context(), args, s.Diagnostics.MaxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	failed := false
	out := cmd.OutOrStdout()
	for _, res := range results {
		// Диагностику выводим в stderr
		if res.Bag.Len() > 0 {
			failed = failed || res.Bag.HasErrors()
			file := diagfmt.File{URI: res.URI, Content: res.Content, Diagnostics: res.Bag.Items()}
			opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr), ShowSource: true}
			if err := diagfmt.Pretty(os.Stderr, []diagfmt.File{file}, opts); err != nil {
				return err
			}
		}
		if len(results) > 1 {
			fmt.Fprintf(out, "== %s\n", res.Path)
		}
		switch format {
		case "pretty":
			err = diagfmt.FormatTokensPretty(out, res.Tokens)
		case "json":
			err = diagfmt.FormatTokensJSON(out, res.Tokens)
		}
		if err != nil {
			return err
		}
	}
	if failed {
		return errFailed
	}
	return nil
}
