package token

import (
	"strings"

	"nvgtls/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind      Kind
	Text      string
	Location  source.Location
	Highlight Highlight
}

// Is reports whether the token is reserved and spelled exactly text.
func (t Token) Is(text string) bool {
	return t.Kind == Reserved && t.Text == text
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Identifier }

// IsKeyword reports whether the token is a reserved word rather than an operator symbol.
func (t Token) IsKeyword() bool {
	return t.Kind == Reserved && IsKeyword(t.Text)
}

// IsTrivia reports whether the parser should never see the token.
func (t Token) IsTrivia() bool { return t.Kind == Comment }

// Closed reports whether a String token ends with its own unescaped delimiter.
func (t Token) Closed() bool {
	s := t.Text
	if t.Kind != String || len(s) < 2 {
		return false
	}
	if strings.HasPrefix(s, `"""`) {
		return len(s) >= 6 && strings.HasSuffix(s, `"""`)
	}
	if s[len(s)-1] != s[0] {
		return false
	}
	escapes := 0
	for i := len(s) - 2; i > 0 && s[i] == '\\'; i-- {
		escapes++
	}
	return escapes%2 == 0
}

// Unquoted strips the delimiters of a string token ("a" → a, """a""" → a).
func (t Token) Unquoted() string {
	s := t.Text
	if len(s) >= 6 && s[:3] == `"""` && s[len(s)-3:] == `"""` {
		return s[3 : len(s)-3]
	}
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return ""
}
