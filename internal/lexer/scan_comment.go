package lexer

// scanComment consumes // to end of line (terminator excluded) or /* ... */
// across lines. An unterminated block comment silently runs to EOF.
func (lx *Lexer) scanComment() string {
	c := &lx.cursor
	start := c.Mark()
	if c.IsNext("//") {
		c.StepFor(2)
		for !c.EOF() && !c.IsNextWrap() {
			c.StepNext()
		}
		return c.TextFrom(start)
	}
	if c.IsNext("/*") {
		c.StepFor(2)
		for !c.EOF() {
			if c.IsNext("*/") {
				c.StepFor(2)
				break
			}
			c.StepNext()
		}
		return c.TextFrom(start)
	}
	return ""
}
