package parser

import (
	"fmt"

	"nvgtls/internal/ast"
	"nvgtls/internal/diag"
	"nvgtls/internal/source"
	"nvgtls/internal/token"
)

// collectHead съедает "голову" декларации (тип и имя) до первого разделителя
// `(`, `;`, `=`, `{`, `}` или `,` вне угловых скобок. Разделитель не съедается.
func (p *Parser) collectHead() []token.Token {
	var head []token.Token
	angle := 0
	for !p.eof() {
		tok := p.peek()
		if tok.Kind == token.Reserved {
			switch tok.Text {
			case "<":
				angle++
			case ">":
				angle = max(angle-1, 0)
			case ">>":
				angle = max(angle-2, 0)
			case "(", ";", "=", "{", "}":
				return head
			case ",":
				if angle == 0 {
					return head
				}
			}
		}
		head = append(head, p.advance())
	}
	return head
}

// splitHead: последний токен головы — имя, остальное — тип.
func (p *Parser) splitHead(head []token.Token) (token.Token, string, bool) {
	if len(head) == 0 {
		if p.eof() {
			p.err(diag.SynExpectName, "Expected a declaration")
		} else {
			p.err(diag.SynUnexpectedToken, fmt.Sprintf("Unexpected '%s'", p.peek().Text))
		}
		return token.Token{}, "", false
	}
	name := head[len(head)-1]
	if !name.IsIdent() {
		p.report(diag.SynExpectName, diag.SevError, name.Location, fmt.Sprintf("Expected a name, found '%s'", name.Text))
		return token.Token{}, "", false
	}
	return name, render(head[:len(head)-1]), true
}

// parseMember разбирает функцию, переменную(ые) или виртуальное свойство.
func (p *Parser) parseMember(parent ast.DeclID, start source.Location, mods ast.Modifiers) {
	head := p.collectHead()
	name, typ, ok := p.splitHead(head)
	if !ok {
		p.recover()
		return
	}
	if p.eof() {
		p.err(diag.SynUnexpectedToken, "Expected ';' after declaration")
		p.addVariable(parent, start, name, typ, mods)
		return
	}
	switch {
	case p.at("("):
		p.parseFunction(parent, start, name, typ, mods)
	case p.at("{"):
		p.skipGroup()
		p.script.Add(parent, ast.Decl{
			Kind:      ast.DeclProperty,
			Name:      name.Text,
			NameLoc:   name.Location,
			Location:  start.Cover(p.last),
			Type:      typ,
			Modifiers: mods,
		})
	case p.at("}"):
		p.err(diag.SynUnexpectedToken, "Expected ';' after declaration")
		p.addVariable(parent, start, name, typ, mods)
	default:
		p.parseVariables(parent, start, name, typ, mods)
	}
}

func (p *Parser) parseFunction(parent ast.DeclID, start source.Location, name token.Token, typ string, mods ast.Modifiers) {
	first := p.pos + 1
	params, _ := p.skipGroup()
	if p.at(";") && p.looksLikeConstruction(parent, first) {
		p.advance()
		p.addVariable(parent, start, name, typ, mods)
		return
	}
	for !p.eof() && !p.at("{") && !p.at(";") && !p.at("}") {
		tok := p.peek()
		switch tok.Text {
		case "const":
			mods |= ast.ModConst
		case "override":
			mods |= ast.ModOverride
		case "final":
			mods |= ast.ModFinal
		case "property":
			mods |= ast.ModProperty
		case "explicit", "delete":
		default:
			p.err(diag.SynUnexpectedToken, fmt.Sprintf("Unexpected '%s' after parameter list", tok.Text))
			p.recover()
			return
		}
		p.advance()
	}
	switch {
	case p.at("{"):
		p.skipGroup()
	case p.at(";"):
		p.advance()
	default:
		p.err(diag.SynUnexpectedToken, "Expected '{' or ';' after function signature")
	}
	p.script.Add(parent, ast.Decl{
		Kind:      ast.DeclFunction,
		Name:      name.Text,
		NameLoc:   name.Location,
		Location:  start.Cover(p.last),
		Type:      typ,
		Params:    params,
		Modifiers: mods,
	})
}

// looksLikeConstruction: `obj o(1, "a");` — переменная с аргументами конструктора,
// а не прототип. Решаем по первому токену внутри скобок.
func (p *Parser) looksLikeConstruction(parent ast.DeclID, first int) bool {
	if d := p.script.Decl(parent); d != nil && d.Kind == ast.DeclInterface {
		return false
	}
	if first >= len(p.toks) {
		return false
	}
	tok := p.toks[first]
	switch tok.Kind {
	case token.Number, token.String:
		return true
	case token.Reserved:
		return tok.Is("true") || tok.Is("false") || tok.Is("null") || tok.Is("-")
	}
	return false
}

// parseVariables: `int a = 1, b, c = f(2);`
func (p *Parser) parseVariables(parent ast.DeclID, start source.Location, name token.Token, typ string, mods ast.Modifiers) {
	for {
		if p.at("=") {
			p.advance()
			p.skipUntil(",", ";")
		}
		p.addVariable(parent, start, name, typ, mods)
		if !p.at(",") {
			break
		}
		p.advance()
		next, ok := p.expectName("a variable name")
		if !ok {
			p.recover()
			return
		}
		name = next
	}
	if _, ok := p.expect(";", diag.SynUnexpectedToken, "Expected ';' after declaration"); !ok {
		p.recover()
	}
}

func (p *Parser) addVariable(parent ast.DeclID, start source.Location, name token.Token, typ string, mods ast.Modifiers) {
	p.script.Add(parent, ast.Decl{
		Kind:      ast.DeclVariable,
		Name:      name.Text,
		NameLoc:   name.Location,
		Location:  start.Cover(p.last),
		Type:      typ,
		Modifiers: mods,
	})
}
