package inspect

import (
	"nvgtls/internal/ast"
	"nvgtls/internal/diag"
	"nvgtls/internal/observ"
	"nvgtls/internal/source"
	"nvgtls/internal/symbols"
	"nvgtls/internal/token"
)

// Result is everything the pipeline produced for one file. A stored Result
// is replaced wholesale on re-inspection and never mutated afterwards.
type Result struct {
	URI         source.FileID
	Content     string
	Diagnostics []diag.Diagnostic
	Tokens      []token.Token
	AST         *ast.Script
	Scope       *symbols.AnalyzedScope
	// Includes lists the resolved include targets in directive order.
	Includes []source.FileID
	Timings  observ.Report
}

// EmptyResult is the result of a file that was never inspected; it also
// serves as the placeholder of a file whose pipeline is still running.
func EmptyResult(uri source.FileID) *Result {
	return &Result{
		URI:         uri,
		Diagnostics: []diag.Diagnostic{},
		Tokens:      []token.Token{},
		AST:         ast.NewScript(uri, 0),
		Scope:       symbols.Empty(uri),
	}
}

// HasErrors reports whether any diagnostic of the result is an error.
func (r *Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity >= diag.SevError {
			return true
		}
	}
	return false
}
