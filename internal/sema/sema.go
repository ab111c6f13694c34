// Package sema turns a declaration tree into an analyzed scope.
package sema

import (
	"fmt"
	"strings"

	"nvgtls/internal/ast"
	"nvgtls/internal/diag"
	"nvgtls/internal/source"
	"nvgtls/internal/symbols"
)

type Options struct {
	Reporter diag.Reporter
	// Builtin marks every symbol as coming from the predefined file.
	Builtin bool
}

type analyzer struct {
	script *ast.Script
	file   source.FileID
	opts   Options
}

// Analyze builds the symbol scope of script. includes is the ordered list of
// scopes visible to the file (predefined first); it is attached as is.
// Conflicting declarations are reported through opts.Reporter.
func Analyze(script *ast.Script, file source.FileID, includes []*symbols.AnalyzedScope, opts Options) *symbols.AnalyzedScope {
	res := symbols.Empty(file)
	res.Includes = includes
	a := analyzer{script: script, file: file, opts: opts}
	if script != nil {
		a.declareAll(res.Root, script.Roots)
	}
	return res
}

func (a *analyzer) declareAll(scope *symbols.Scope, ids []ast.DeclID) {
	for _, id := range ids {
		d := a.script.Decl(id)
		if d == nil || d.Name == "" {
			continue
		}
		sym := a.symbolFor(id, d)
		got, ok := scope.Declare(sym)
		if !ok {
			a.reportDuplicate(d, got)
			continue
		}
		if got.Members != nil && len(d.Children) > 0 {
			a.declareAll(got.Members, d.Children)
		}
	}
}

func (a *analyzer) symbolFor(id ast.DeclID, d *ast.Decl) *symbols.Symbol {
	sym := &symbols.Symbol{
		Name:     d.Name,
		Kind:     d.Kind,
		Decl:     id,
		File:     a.file,
		Location: d.NameLoc,
		Type:     d.Type,
	}
	if d.Modifiers.Has(ast.ModPrivate) {
		sym.Flags |= symbols.SymbolFlagPrivate
	}
	if d.Modifiers.Has(ast.ModProtected) {
		sym.Flags |= symbols.SymbolFlagProtected
	}
	if d.Modifiers.Has(ast.ModShared) {
		sym.Flags |= symbols.SymbolFlagShared
	}
	if d.Modifiers.Has(ast.ModConst) || d.Kind == ast.DeclEnumValue || strings.HasPrefix(d.Type, "const ") {
		sym.Flags |= symbols.SymbolFlagConst
	}
	if d.Forward {
		sym.Flags |= symbols.SymbolFlagForward
	}
	if a.opts.Builtin {
		sym.Flags |= symbols.SymbolFlagBuiltin
	}
	return sym
}

func (a *analyzer) reportDuplicate(d *ast.Decl, prev *symbols.Symbol) {
	msg := fmt.Sprintf("'%s' is already declared as a %s", d.Name, prev.Kind)
	if prev.File == a.file {
		msg += fmt.Sprintf(" at line %d", prev.Location.Start.Line+1)
	}
	diag.ReportError(a.opts.Reporter, diag.SemaDuplicateSymbol, d.NameLoc, msg)
}
