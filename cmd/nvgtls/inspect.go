package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"nvgtls/internal/driver"
	"nvgtls/internal/inspect"
	"nvgtls/internal/source"
	"nvgtls/internal/ui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] path...",
	Short: "Inspect scripts and their includes",
	Long: `Inspect runs the full pipeline (tokenize, preprocess, parse, resolve includes, analyze)
over the given scripts or directories and reports diagnostics`,
	Args: cobra.ArbitraryArgs,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("format", "pretty", "output format (pretty|json|sarif)")
	inspectCmd.Flags().Bool("timings", false, "attach per-phase timings to every file")
	inspectCmd.Flags().Bool("graph", false, "print the include graph in dependency order")
	inspectCmd.Flags().Bool("includes", false, "also report diagnostics of included files")
	inspectCmd.Flags().Bool("no-cache", false, "do not use the on-disk token cache")
	inspectCmd.Flags().String("stdin-path", "", "read the content of this file from stdin instead of the disk")
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, err := formatFlag(cmd, "pretty", "json", "sarif")
	if err != nil {
		return err
	}
	timings, _ := cmd.Flags().GetBool("timings")
	graph, _ := cmd.Flags().GetBool("graph")
	withIncludes, _ := cmd.Flags().GetBool("includes")

	s, _, err := currentSettings()
	if err != nil {
		return err
	}
	paths, err := driver.ListScripts(args)
	if err != nil {
		return err
	}

	overlay := source.NewOverlay(source.ReadOS)
	stdinPath, _ := cmd.Flags().GetString("stdin-path")
	var stdinContent string
	if stdinPath != "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		stdinContent = string(data)
		abs, err := filepath.Abs(stdinPath)
		if err != nil {
			return fmt.Errorf("failed to resolve %q: %w", stdinPath, err)
		}
		// includes of the buffer from other files see the same content
		overlay.Set(source.PathToURI(abs), stdinContent)
		paths = dropPath(paths, abs)
	}

	in := driver.NewInspector(s, predefinedPath(cmd), openTokenCache(cmd), overlay.Read)
	var results []*inspect.Result
	if stdinPath != "" {
		res, err := driver.InspectBuffer(in, stdinPath, stdinContent)
		if err != nil {
			return err
		}
		results = append(results, res)
	}
	more, err := driver.InspectFiles(cmd.Context(), in, paths)
	if err != nil {
		return err
	}
	results = append(results, more...)
	if len(results) == 0 {
		return fmt.Errorf("no scripts found in %v", args)
	}
	if withIncludes {
		results = withIncluded(in, results)
	}

	out := cmd.OutOrStdout()
	colored := useColor(cmd, os.Stdout)
	if err := writeReport(out, results, reportOptions{format: format, timings: timings, color: colored}, os.Args[1:]); err != nil {
		return err
	}
	if graph {
		printGraph(cmd, driver.BuildIncludeGraph(in))
	}
	files := statuses(results)
	c := ui.Total(files)
	if format == "pretty" {
		if err := ui.Summary(out, c, colored); err != nil {
			return err
		}
	}
	if c.Errors > 0 {
		return errFailed
	}
	return nil
}

// dropPath removes abs from paths; the buffer is inspected separately.
func dropPath(paths []string, abs string) []string {
	out := paths[:0]
	for _, p := range paths {
		if pa, err := filepath.Abs(p); err == nil && pa == abs {
			continue
		}
		out = append(out, p)
	}
	return out
}

// withIncluded appends every other cached result after the requested ones.
func withIncluded(in *inspect.Inspector, results []*inspect.Result) []*inspect.Result {
	seen := make(map[source.FileID]bool, len(results))
	for _, res := range results {
		seen[res.URI] = true
	}
	for _, res := range in.Results() {
		if !seen[res.URI] {
			results = append(results, res)
		}
	}
	return results
}

func printGraph(cmd *cobra.Command, g driver.IncludeGraph) {
	out := cmd.ErrOrStderr()
	fmt.Fprintln(out, "include order:")
	for i, uri := range g.Order {
		fmt.Fprintf(out, "%3d: %s\n", i+1, source.DisplayPath(uri))
		for _, dep := range g.Edges[uri] {
			fmt.Fprintf(out, "       -> %s\n", source.DisplayPath(dep))
		}
	}
	for _, uri := range g.Cycles {
		fmt.Fprintf(out, "cycle: %s\n", source.DisplayPath(uri))
	}
	for _, uri := range g.SelfIncludes {
		fmt.Fprintf(out, "self-include: %s\n", source.DisplayPath(uri))
	}
}
