package inspect

import (
	"nvgtls/internal/ast"
	"nvgtls/internal/diag"
	"nvgtls/internal/parser"
	"nvgtls/internal/preprocess"
	"nvgtls/internal/sema"
	"nvgtls/internal/source"
	"nvgtls/internal/symbols"
	"nvgtls/internal/token"
)

// Preprocessor separates parser input from include references.
type Preprocessor func(tokens []token.Token, r diag.Reporter) preprocess.Result

// Parser turns the preprocessed stream into a syntax tree.
type Parser func(tokens []token.Token, file source.FileID, r diag.Reporter) *ast.Script

// AnalyzeRequest is the input of one Analyzer call.
type AnalyzeRequest struct {
	Script *ast.Script
	File   source.FileID
	// Includes is ordered: the predefined scope first, then includes in directive order.
	Includes   []*symbols.AnalyzedScope
	Predefined bool
	Reporter   diag.Reporter
}

// Analyzer resolves a syntax tree into an analyzed scope.
type Analyzer func(req AnalyzeRequest) *symbols.AnalyzedScope

// TokenCache lets the inspector skip tokenizing unchanged content. Lexical
// diagnostics are stored with the tokens and replayed on a hit.
type TokenCache interface {
	Load(uri source.FileID, content string) ([]token.Token, []diag.Diagnostic, bool)
	Store(uri source.FileID, content string, tokens []token.Token, lexical []diag.Diagnostic)
}

func defaultPreprocess(tokens []token.Token, r diag.Reporter) preprocess.Result {
	return preprocess.Preprocess(tokens, r)
}

func defaultParse(tokens []token.Token, file source.FileID, r diag.Reporter) *ast.Script {
	return parser.ParseScript(tokens, file, parser.Options{Reporter: r})
}

func defaultAnalyze(req AnalyzeRequest) *symbols.AnalyzedScope {
	return sema.Analyze(req.Script, req.File, req.Includes, sema.Options{
		Reporter: req.Reporter,
		Builtin:  req.Predefined,
	})
}
