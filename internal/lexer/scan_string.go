package lexer

import (
	"nvgtls/internal/diag"
	"nvgtls/internal/source"
)

// scanString consumes "...", '...' or a """...""" heredoc. Ordinary literals
// end at the line break; an unterminated one is reported and still emitted.
func (lx *Lexer) scanString(start source.Position) string {
	c := &lx.cursor
	mark := c.Mark()

	if c.IsNext(`"""`) {
		c.StepFor(3)
		for !c.EOF() {
			if c.IsNext(`"""`) {
				c.StepFor(3)
				return c.TextFrom(mark)
			}
			c.StepNext()
		}
		lx.report(diag.LexUnterminatedString, lx.locationFrom(start), "Unterminated string literal")
		return c.TextFrom(mark)
	}

	quote := c.Next(0)
	if quote != '"' && quote != '\'' {
		return ""
	}
	c.StepFor(1)
	for !c.EOF() && !c.IsNextWrap() {
		switch c.Next(0) {
		case '\\':
			c.StepFor(1)
			if !c.EOF() && !c.IsNextWrap() {
				c.StepFor(1)
			}
			continue
		case quote:
			c.StepFor(1)
			return c.TextFrom(mark)
		}
		c.StepFor(1)
	}
	lx.report(diag.LexUnterminatedString, lx.locationFrom(start), "Unterminated string literal")
	return c.TextFrom(mark)
}
