package parser

import (
	"nvgtls/internal/ast"
	"nvgtls/internal/diag"
	"nvgtls/internal/source"
	"nvgtls/internal/token"
)

// parseNamespace: `namespace a::b { ... }` создаёт вложенные namespace-узлы.
func (p *Parser) parseNamespace(parent ast.DeclID, start source.Location) {
	p.advance()
	name, ok := p.expectName("a namespace name")
	if !ok {
		p.recover()
		return
	}
	ids := []ast.DeclID{p.script.Add(parent, ast.Decl{Kind: ast.DeclNamespace, Name: name.Text, NameLoc: name.Location})}
	for p.at("::") {
		p.advance()
		inner, ok := p.expectName("a namespace name")
		if !ok {
			p.recover()
			return
		}
		ids = append(ids, p.script.Add(ids[len(ids)-1], ast.Decl{Kind: ast.DeclNamespace, Name: inner.Text, NameLoc: inner.Location}))
	}
	open, ok := p.expect("{", diag.SynUnexpectedToken, "Expected '{' after namespace name")
	if !ok {
		p.recover()
		return
	}
	p.parseBody(ids[len(ids)-1], open)
	for _, id := range ids {
		p.finish(id, start)
	}
}

// parseClass: class/interface с базами, телом или forward-декларацией.
func (p *Parser) parseClass(parent ast.DeclID, start source.Location, mods ast.Modifiers) {
	kind := ast.DeclClass
	if p.advance().Text == "interface" {
		kind = ast.DeclInterface
	}
	name, ok := p.expectName("a type name")
	if !ok {
		p.recover()
		return
	}
	decl := ast.Decl{Kind: kind, Name: name.Text, NameLoc: name.Location, Modifiers: mods}
	if p.at(":") {
		p.advance()
		for {
			base, ok := p.parseQualifiedName()
			if !ok {
				p.recover()
				return
			}
			decl.Bases = append(decl.Bases, base)
			if !p.at(",") {
				break
			}
			p.advance()
		}
	}
	if p.at(";") {
		decl.Forward = true
		p.advance()
		decl.Location = start.Cover(p.last)
		p.script.Add(parent, decl)
		return
	}
	open, ok := p.expect("{", diag.SynUnexpectedToken, "Expected '{' or ';' after "+kind.String()+" name")
	if !ok {
		p.recover()
		return
	}
	id := p.script.Add(parent, decl)
	p.parseBody(id, open)
	p.finish(id, start)
}

func (p *Parser) parseQualifiedName() (string, bool) {
	if p.at("::") {
		p.advance()
	}
	part, ok := p.expectName("a type name")
	if !ok {
		return "", false
	}
	name := part.Text
	for p.at("::") {
		p.advance()
		part, ok = p.expectName("a type name")
		if !ok {
			return "", false
		}
		name += "::" + part.Text
	}
	return name, true
}

// parseEnum: `enum E { A, B = 2, C }`; значения инициализаторов пропускаются.
func (p *Parser) parseEnum(parent ast.DeclID, start source.Location, mods ast.Modifiers) {
	p.advance()
	name, ok := p.expectName("an enum name")
	if !ok {
		p.recover()
		return
	}
	decl := ast.Decl{Kind: ast.DeclEnum, Name: name.Text, NameLoc: name.Location, Modifiers: mods}
	if p.at(";") {
		decl.Forward = true
		p.advance()
		decl.Location = start.Cover(p.last)
		p.script.Add(parent, decl)
		return
	}
	open, ok := p.expect("{", diag.SynUnexpectedToken, "Expected '{' after enum name")
	if !ok {
		p.recover()
		return
	}
	id := p.script.Add(parent, decl)
	for !p.eof() && !p.at("}") {
		value, ok := p.expectName("an enum value name")
		if !ok {
			p.skipUntil(",", "}")
		} else {
			p.script.Add(id, ast.Decl{
				Kind:     ast.DeclEnumValue,
				Name:     value.Text,
				NameLoc:  value.Location,
				Location: value.Location,
				Type:     name.Text,
			})
			if p.at("=") {
				p.advance()
				p.skipUntil(",", "}")
			}
		}
		if p.at(",") {
			p.advance()
		} else if !p.at("}") && !p.eof() {
			p.err(diag.SynUnexpectedToken, "Expected ',' or '}' in enum")
			p.skipUntil(",", "}")
		}
	}
	p.closeBody(open)
	p.finish(id, start)
}

// parseFuncdef: `funcdef bool Callback(int, int);`
func (p *Parser) parseFuncdef(parent ast.DeclID, start source.Location, mods ast.Modifiers) {
	p.advance()
	p.parseSignature(parent, start, ast.DeclFuncdef, mods)
}

// parseImport: `import void f(int) from "module";`
func (p *Parser) parseImport(parent ast.DeclID, start source.Location) {
	p.advance()
	p.parseSignature(parent, start, ast.DeclImport, 0)
}

func (p *Parser) parseSignature(parent ast.DeclID, start source.Location, kind ast.DeclKind, mods ast.Modifiers) {
	head := p.collectHead()
	name, typ, ok := p.splitHead(head)
	if !ok {
		p.recover()
		return
	}
	if !p.at("(") {
		p.err(diag.SynUnexpectedToken, "Expected '(' after "+kind.String()+" name")
		p.recover()
		return
	}
	params, _ := p.skipGroup()
	p.skipUntil(";")
	if _, ok := p.expect(";", diag.SynUnexpectedToken, "Expected ';' after "+kind.String()); !ok {
		p.recover()
	}
	p.script.Add(parent, ast.Decl{
		Kind:      kind,
		Name:      name.Text,
		NameLoc:   name.Location,
		Location:  start.Cover(p.last),
		Type:      typ,
		Params:    params,
		Modifiers: mods,
	})
}

// parseTypedef: `typedef double real;`
func (p *Parser) parseTypedef(parent ast.DeclID, start source.Location) {
	p.advance()
	head := p.collectHead()
	name, typ, ok := p.splitHead(head)
	if !ok {
		p.recover()
		return
	}
	if _, ok := p.expect(";", diag.SynUnexpectedToken, "Expected ';' after typedef"); !ok {
		p.recover()
	}
	p.script.Add(parent, ast.Decl{
		Kind:     ast.DeclTypedef,
		Name:     name.Text,
		NameLoc:  name.Location,
		Location: start.Cover(p.last),
		Type:     typ,
	})
}

// parseBody разбирает члены блока и закрывающую `}`.
func (p *Parser) parseBody(id ast.DeclID, open token.Token) {
	p.parseDecls(id, true)
	p.closeBody(open)
}

func (p *Parser) closeBody(open token.Token) {
	if p.at("}") {
		p.advance()
		return
	}
	p.report(diag.SynUnclosedBrace, diag.SevError, open.Location, "Unclosed '{'")
}

// finish растягивает location узла от start до последнего съеденного токена.
// Узел перечитывается из арены: вложенные Add могли её переаллоцировать.
func (p *Parser) finish(id ast.DeclID, start source.Location) {
	if d := p.script.Decl(id); d != nil {
		d.Location = start.Cover(p.last)
	}
}
