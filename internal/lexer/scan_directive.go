package lexer

// scanDirective consumes '#' immediately followed by a word (#include, #pragma).
// A bare '#' is not a directive.
func (lx *Lexer) scanDirective() string {
	c := &lx.cursor
	if c.Next(0) != '#' || !(isAlpha(c.Next(1)) || c.Next(1) == '_') {
		return ""
	}
	start := c.Mark()
	c.StepFor(1)
	for isAlnum(c.Next(0)) {
		c.StepFor(1)
	}
	return c.TextFrom(start)
}
