package parser

import (
	"fmt"
	"strings"

	"nvgtls/internal/diag"
	"nvgtls/internal/source"
	"nvgtls/internal/token"
)

func (p *Parser) eof() bool {
	return p.pos >= len(p.toks)
}

// peek возвращает текущий токен; на EOF — пустой токен в позиции после последнего.
func (p *Parser) peek() token.Token {
	if p.eof() {
		return token.Token{Location: p.diagLoc()}
	}
	return p.toks[p.pos]
}

// at — текущий токен зарезервирован и совпадает с text.
func (p *Parser) at(text string) bool {
	return !p.eof() && p.toks[p.pos].Is(text)
}

// advance — съедает следующий токен и обновляет last
func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	p.pos++
	p.last = tok.Location
	return tok
}

// diagLoc — лучший location для диагностики: текущий токен либо точка после последнего.
func (p *Parser) diagLoc() source.Location {
	if !p.eof() {
		return p.toks[p.pos].Location
	}
	return source.Location{Start: p.last.End, End: p.last.End, File: p.file}
}

// expect — ожидаем конкретный токен. Если нет — репортим и возвращаем (пустой,false).
func (p *Parser) expect(text string, code diag.Code, msg string) (token.Token, bool) {
	if p.at(text) {
		return p.advance(), true
	}
	p.err(code, msg)
	return token.Token{}, false
}

func (p *Parser) expectName(what string) (token.Token, bool) {
	if !p.eof() && p.peek().IsIdent() {
		return p.advance(), true
	}
	if p.eof() {
		p.err(diag.SynExpectName, fmt.Sprintf("Expected %s", what))
	} else {
		p.err(diag.SynExpectName, fmt.Sprintf("Expected %s, found '%s'", what, p.peek().Text))
	}
	return token.Token{}, false
}

// репортует ошибку и передает текущий location
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.diagLoc(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, loc source.Location, msg string) bool {
	if p.opts.Reporter == nil {
		return false
	}
	if p.opts.Enough() {
		return false // достигли максимального количества ошибок
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	p.opts.Reporter.Report(code, sev, loc, msg)
	return true
}

var closers = map[string]string{"(": ")", "[": "]", "{": "}"}

// skipGroup съедает сбалансированную группу начиная с текущей открывающей
// скобки и возвращает текст между скобками. Незакрытая группа репортится
// на открывающей скобке.
func (p *Parser) skipGroup() (string, bool) {
	open := p.advance()
	stack := []string{closers[open.Text]}
	var inner []token.Token
	for !p.eof() {
		tok := p.peek()
		if tok.Kind == token.Reserved {
			if c, ok := closers[tok.Text]; ok {
				stack = append(stack, c)
			} else if tok.Text == stack[len(stack)-1] {
				stack = stack[:len(stack)-1]
				if len(stack) == 0 {
					p.advance()
					return render(inner), true
				}
			}
		}
		inner = append(inner, p.advance())
	}
	p.report(diag.SynUnclosedBrace, diag.SevError, open.Location, fmt.Sprintf("Unclosed '%s'", open.Text))
	return render(inner), false
}

// skipUntil пропускает токены (группы целиком) до одного из stops на нулевой глубине.
// Сам stop не съедается.
func (p *Parser) skipUntil(stops ...string) {
	for !p.eof() {
		tok := p.peek()
		if tok.Kind == token.Reserved {
			for _, s := range stops {
				if tok.Text == s {
					return
				}
			}
			if _, ok := closers[tok.Text]; ok {
				p.skipGroup()
				continue
			}
			if tok.Text == "}" {
				return
			}
		}
		p.advance()
	}
}

// recover — resync после ошибки: до `;` включительно, до конца `{...}` группы
// или до `}` внешнего блока.
func (p *Parser) recover() {
	for !p.eof() {
		switch {
		case p.at(";"):
			p.advance()
			return
		case p.at("}"):
			return
		case p.at("{"):
			p.skipGroup()
			return
		case p.at("("), p.at("["):
			p.skipGroup()
		default:
			p.advance()
		}
	}
}

// render склеивает токены в читаемый текст типа или параметров.
func render(toks []token.Token) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 && wordLike(toks[i-1]) && wordLike(t) {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text)
		if t.Is(",") {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func wordLike(t token.Token) bool {
	switch t.Kind {
	case token.Identifier, token.Number, token.String:
		return true
	case token.Reserved:
		return t.IsKeyword()
	}
	return false
}
