package lexer

// scanSymbol consumes the longest operator or punctuation symbol at the cursor.
// Жадность обеспечивает trie: ">>>=" никогда не распадается на ">>" и ">=".
func (lx *Lexer) scanSymbol() string {
	c := &lx.cursor
	symbol := symbolTrie.Find(c.src, c.off)
	c.StepFor(len([]rune(symbol)))
	return symbol
}
