package lexer

// scanIdentifier consumes a maximal [A-Za-z0-9_] run. Keyword classification
// happens in the caller.
func (lx *Lexer) scanIdentifier() string {
	c := &lx.cursor
	start := c.Mark()
	for !c.EOF() && isAlnum(c.Next(0)) {
		c.StepFor(1)
	}
	return c.TextFrom(start)
}
