// Package parser builds a declaration tree from a preprocessed token stream.
// It recognises namespaces, classes, interfaces, enums, funcdefs, typedefs,
// imports, functions, variables and virtual properties. Function bodies and
// initializers are skipped as balanced token groups.
package parser

import (
	"nvgtls/internal/ast"
	"nvgtls/internal/diag"
	"nvgtls/internal/source"
	"nvgtls/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Parser — состояние парсера на один файл
type Parser struct {
	toks   []token.Token
	pos    int
	script *ast.Script
	file   source.FileID
	opts   Options
	last   source.Location // location последнего съеденного токена для диагностики
}

// ParseScript — входная точка для разбора одного файла. Comments and
// directives must already be removed from tokens.
func ParseScript(tokens []token.Token, file source.FileID, opts Options) *ast.Script {
	p := Parser{
		toks:   tokens,
		script: ast.NewScript(file, uint(len(tokens)/8)),
		file:   file,
		opts:   opts,
		last:   source.Location{File: file},
	}
	p.parseDecls(ast.NoDeclID, false)
	return p.script
}

// parseDecls — цикл по декларациям до EOF или до `}` вложенного блока.
func (p *Parser) parseDecls(parent ast.DeclID, nested bool) {
	for !p.eof() {
		if p.at("}") {
			if nested {
				return
			}
			p.err(diag.SynUnexpectedToken, "Unexpected '}'")
			p.advance()
			continue
		}
		p.parseDecl(parent)
	}
}

// parseDecl выбирает по первому токену нужный распознаватель.
func (p *Parser) parseDecl(parent ast.DeclID) {
	start := p.peek().Location
	mods := p.parseModifiers()
	if p.eof() {
		p.err(diag.SynExpectName, "Expected a declaration")
		return
	}
	tok := p.peek()
	switch {
	case tok.Is(";"):
		p.advance()
	case tok.Is("namespace"):
		p.parseNamespace(parent, start)
	case tok.Is("class"), tok.Is("interface"):
		p.parseClass(parent, start, mods)
	case tok.Is("enum"):
		p.parseEnum(parent, start, mods)
	case tok.Is("funcdef"):
		p.parseFuncdef(parent, start, mods)
	case tok.Is("typedef"):
		p.parseTypedef(parent, start)
	case tok.Is("import"):
		p.parseImport(parent, start)
	default:
		p.parseMember(parent, start, mods)
	}
}

// contextual modifiers are plain identifiers unless they precede a declaration keyword.
var contextualModifiers = map[string]ast.Modifiers{
	"shared":   ast.ModShared,
	"external": ast.ModExternal,
	"abstract": ast.ModAbstract,
	"final":    ast.ModFinal,
}

func (p *Parser) parseModifiers() ast.Modifiers {
	var mods ast.Modifiers
	for !p.eof() {
		tok := p.peek()
		switch {
		case tok.Is("private"):
			mods |= ast.ModPrivate
		case tok.Is("protected"):
			mods |= ast.ModProtected
		case tok.Is("mixin"):
			mods |= ast.ModMixin
		case tok.IsIdent() && p.isContextualModifier(p.pos):
			mods |= contextualModifiers[tok.Text]
		default:
			return mods
		}
		p.advance()
	}
	return mods
}

func (p *Parser) isContextualModifier(i int) bool {
	for ; i < len(p.toks); i++ {
		tok := p.toks[i]
		if tok.IsIdent() {
			if _, ok := contextualModifiers[tok.Text]; ok {
				continue
			}
			return false
		}
		return tok.Is("class") || tok.Is("interface") || tok.Is("enum") || tok.Is("funcdef") || tok.Is("mixin")
	}
	return false
}
