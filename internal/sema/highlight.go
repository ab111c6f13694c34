package sema

import (
	"nvgtls/internal/ast"
	"nvgtls/internal/source"
	"nvgtls/internal/symbols"
	"nvgtls/internal/token"
)

// Highlight refines the default highlight of identifier tokens in place:
// declaration sites get their kind and the declaration modifier, other
// identifiers take the kind of the symbol they resolve to through scope.
func Highlight(tokens []token.Token, script *ast.Script, scope *symbols.AnalyzedScope) {
	declared := make(map[source.Position]token.Highlight)
	script.Walk(func(_ ast.DeclID, d *ast.Decl) bool {
		h := highlightFor(d.Kind, parentKind(script, d), d.Modifiers.Has(ast.ModConst))
		h.Modifier = token.ModifierDeclaration
		declared[d.NameLoc.Start] = h
		return true
	})
	for i := range tokens {
		tok := &tokens[i]
		if tok.Kind != token.Identifier {
			continue
		}
		if h, ok := declared[tok.Location.Start]; ok {
			tok.Highlight = h
			continue
		}
		if scope == nil {
			continue
		}
		found := scope.Lookup(tok.Text)
		if len(found) == 0 {
			continue
		}
		sym := found[0]
		h := highlightFor(sym.Kind, ast.DeclInvalid, sym.Is(symbols.SymbolFlagConst))
		if sym.Is(symbols.SymbolFlagBuiltin) {
			h.Modifier = token.ModifierDefaultLibrary
		}
		tok.Highlight = h
	}
}

func parentKind(script *ast.Script, d *ast.Decl) ast.DeclKind {
	if p := script.Decl(d.Parent); p != nil {
		return p.Kind
	}
	return ast.DeclInvalid
}

func highlightFor(kind, parent ast.DeclKind, readonly bool) token.Highlight {
	member := parent == ast.DeclClass || parent == ast.DeclInterface
	h := token.DefaultHighlight(token.HighlightVariable)
	switch kind {
	case ast.DeclNamespace:
		h.Token = token.HighlightNamespace
	case ast.DeclClass:
		h.Token = token.HighlightClass
	case ast.DeclInterface:
		h.Token = token.HighlightInterface
	case ast.DeclEnum:
		h.Token = token.HighlightEnum
	case ast.DeclEnumValue:
		h.Token = token.HighlightEnumMember
		h.Modifier = token.ModifierReadonly
	case ast.DeclFuncdef, ast.DeclTypedef:
		h.Token = token.HighlightType
	case ast.DeclFunction, ast.DeclImport:
		h.Token = token.HighlightFunction
		if member {
			h.Token = token.HighlightMethod
		}
	case ast.DeclProperty:
		h.Token = token.HighlightProperty
	case ast.DeclVariable:
		if member {
			h.Token = token.HighlightProperty
		}
		if readonly {
			h.Modifier = token.ModifierReadonly
		}
	}
	return h
}
