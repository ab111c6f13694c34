package lexer

// scanNumber consumes a run of digits with at most one '.', which switches to
// float mode. In float mode a trailing 'f' is accepted and ends the literal.
// A second '.' is left for the next token: 3.14.15 → "3.14", ".", "15".
func (lx *Lexer) scanNumber() string {
	c := &lx.cursor
	if !isDigit(c.Next(0)) {
		return ""
	}
	start := c.Mark()
	floating := false
	for !c.EOF() {
		next := c.Next(0)
		floatStart := next == '.' && !floating
		floatEnd := next == 'f' && floating
		if !isDigit(next) && !floatStart && !floatEnd {
			break
		}
		c.StepFor(1)
		if floatStart {
			floating = true
		}
		if floatEnd {
			break
		}
	}
	return c.TextFrom(start)
}
