package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"nvgtls/internal/inspect"
	"nvgtls/internal/project/dag"
	"nvgtls/internal/settings"
	"nvgtls/internal/source"
)

// NewInspector creates an inspector configured from s. predefinedPath may be
// empty; tokens may be nil to disable the token cache; reader defaults to the
// OS reader (pass a source.Overlay's Read to serve unsaved buffers).
func NewInspector(s settings.Settings, predefinedPath string, tokens *DiskCache, reader source.Reader) *inspect.Inspector {
	var predefined source.FileID
	if predefinedPath != "" {
		if abs, err := filepath.Abs(predefinedPath); err == nil {
			predefined = source.PathToURI(abs)
		}
	}
	opts := inspect.Options{
		PredefinedURI:  predefined,
		Reader:         reader,
		StdlibRoot:     s.StdlibURI(),
		DiagnoseCycles: s.Diagnostics.IncludeCycles,
		MaxDiagnostics: s.Diagnostics.MaxDiagnostics,
	}
	if tokens != nil {
		opts.TokenCache = tokens
	}
	return inspect.New(opts)
}

// InspectFile reads path and inspects it under its file URI.
func InspectFile(in *inspect.Inspector, path string) (*inspect.Result, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	// #nosec G304 -- path is provided by the user
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return in.Inspect(string(data), source.PathToURI(abs)), nil
}

// InspectBuffer inspects content as the file at path, without reading the disk.
func InspectBuffer(in *inspect.Inspector, path, content string) (*inspect.Result, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	return in.Inspect(content, source.PathToURI(abs)), nil
}

// InspectFiles inspects paths one after another through in, so later files
// reuse the includes already resolved for earlier ones. Unreadable paths are
// logged and skipped; only cancellation stops the run.
func InspectFiles(ctx context.Context, in *inspect.Inspector, paths []string) ([]*inspect.Result, error) {
	results := make([]*inspect.Result, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := InspectFile(in, path)
		if err != nil {
			log.Errorf("skipping: %s", err)
			continue
		}
		results = append(results, res)
	}
	return results, nil
}

// IncludeGraph is the include structure of every cached result.
type IncludeGraph struct {
	Order        []source.FileID // includers before included files
	Cycles       []source.FileID // files on (or behind) an include cycle
	SelfIncludes []source.FileID
	Edges        map[source.FileID][]source.FileID
}

// BuildIncludeGraph orders the include graph of the results cached in in.
func BuildIncludeGraph(in *inspect.Inspector) IncludeGraph {
	edges := make(map[source.FileID][]source.FileID)
	for _, res := range in.Results() {
		edges[res.URI] = append([]source.FileID(nil), res.Includes...)
	}
	idx := dag.BuildIndex(edges)
	g, self := dag.BuildGraph(idx, edges)
	topo := dag.ToposortKahn(g)
	return IncludeGraph{
		Order:        idx.Names(topo.Order),
		Cycles:       idx.Names(topo.Cycles),
		SelfIncludes: self,
		Edges:        edges,
	}
}
