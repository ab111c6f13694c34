package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"nvgtls/internal/diag"
	"nvgtls/internal/diagfmt"
	"nvgtls/internal/driver"
	"nvgtls/internal/inspect"
	"nvgtls/internal/source"
	"nvgtls/internal/ui"
	"nvgtls/internal/version"
)

type reportOptions struct {
	format  string
	timings bool
	color   bool
}

// filesOf orders each file's diagnostics by position; the cached results
// keep emission order.
func filesOf(results []*inspect.Result, timings bool) []diagfmt.File {
	files := make([]diagfmt.File, 0, len(results))
	for _, res := range results {
		bag := diag.NewBag(0)
		for _, d := range res.Diagnostics {
			bag.Add(d)
		}
		bag.Sort()
		if timings {
			bag.Add(driver.TimingDiagnostic(res))
		}
		files = append(files, diagfmt.File{URI: res.URI, Content: res.Content, Diagnostics: bag.Items()})
	}
	return files
}

func writeReport(out io.Writer, results []*inspect.Result, opts reportOptions, args []string) error {
	files := filesOf(results, opts.timings)
	switch opts.format {
	case "pretty":
		return diagfmt.Pretty(out, files, diagfmt.PrettyOpts{
			Color:      opts.color,
			PathMode:   diagfmt.PathModeAuto,
			ShowSource: true,
		})
	case "json":
		return diagfmt.JSON(out, files, diagfmt.JSONOpts{Indent: true})
	case "sarif":
		return diagfmt.Sarif(out, files, diagfmt.SarifRunMeta{
			ToolName:       version.Name,
			ToolVersion:    version.Version,
			InvocationArgs: args,
		})
	}
	return fmt.Errorf("unknown format: %s", opts.format)
}

// statuses собирает счётчики диагностик по файлам для ui.
func statuses(results []*inspect.Result) []ui.FileStatus {
	out := make([]ui.FileStatus, 0, len(results))
	for _, res := range results {
		st := ui.FileStatus{Path: source.DisplayPath(res.URI)}
		for _, d := range res.Diagnostics {
			switch d.Severity {
			case diag.SevError:
				st.Errors++
			case diag.SevWarning:
				st.Warnings++
			}
		}
		out = append(out, st)
	}
	return out
}

// terminalWidth returns the width of f, or 0 when it is not a terminal.
func terminalWidth(f *os.File) int {
	if !isTerminal(f) {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}

func formatFlag(cmd *cobra.Command, allowed ...string) (string, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("failed to get format flag: %w", err)
	}
	for _, a := range allowed {
		if format == a {
			return format, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q", format)
}

func openTokenCache(cmd *cobra.Command) *driver.DiskCache {
	if off, _ := cmd.Flags().GetBool("no-cache"); off {
		return nil
	}
	cache, err := driver.OpenDiskCache(version.Name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: token cache disabled: %v\n", err)
		return nil
	}
	return cache
}
