package lexer

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isAlpha(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// isAlnum covers the identifier alphabet [A-Za-z0-9_].
func isAlnum(r rune) bool {
	return isAlpha(r) || isDigit(r) || r == '_'
}
