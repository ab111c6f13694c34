// Package preprocess prepares a token stream for the parser: it drops
// comments and directive lines and collects #include references.
package preprocess

import (
	"nvgtls/internal/diag"
	"nvgtls/internal/token"
)

// Result is the output of Preprocess.
type Result struct {
	// ParsingTokens is the stream the parser sees: no comments, no directives.
	ParsingTokens []token.Token
	// IncludeFiles holds the string token of every #include, in source order.
	// Its text still carries the quote delimiters.
	IncludeFiles []token.Token
}

// Preprocess splits tokens into parser input and include references. A
// directive owns every token that follows it on the same line. Malformed
// includes (no string operand) are reported and ignored.
func Preprocess(tokens []token.Token, reporter diag.Reporter) Result {
	res := Result{ParsingTokens: make([]token.Token, 0, len(tokens))}
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.Kind {
		case token.Comment:
			continue
		case token.Directive:
			line := tok.Location.Start.Line
			j := i + 1
			for j < len(tokens) && tokens[j].Location.Start.Line == line {
				j++
			}
			operands := tokens[i+1 : j]
			if tok.Text == "#include" {
				include, ok := includeOperand(operands)
				if ok {
					res.IncludeFiles = append(res.IncludeFiles, include)
				} else {
					diag.ReportError(reporter, diag.IncMalformed, tok.Location, "Expected a quoted file path after #include")
				}
			}
			i = j - 1
		default:
			res.ParsingTokens = append(res.ParsingTokens, tok)
		}
	}
	return res
}

func includeOperand(operands []token.Token) (token.Token, bool) {
	for _, op := range operands {
		if op.Kind == token.Comment {
			continue
		}
		if op.Closed() {
			return op, true
		}
		return token.Token{}, false
	}
	return token.Token{}, false
}
