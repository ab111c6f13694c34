package diagfmt

import (
	"encoding/json"
	"io"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"nvgtls/internal/diag"
)

// JSONOpts configures JSON output.
type JSONOpts struct {
	Indent bool
}

// Publications converts files into the notifications an editor would receive,
// one textDocument/publishDiagnostics payload per file.
func Publications(files []File) []protocol.PublishDiagnosticsParams {
	out := make([]protocol.PublishDiagnosticsParams, 0, len(files))
	for _, f := range files {
		out = append(out, protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentUri(f.URI),
			Diagnostics: diag.ToProtocolList(f.Diagnostics),
		})
	}
	return out
}

// JSON writes the publications of files as one JSON array.
func JSON(w io.Writer, files []File, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	if opts.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(Publications(files))
}
