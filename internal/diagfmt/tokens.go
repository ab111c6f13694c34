package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"nvgtls/internal/token"
)

// FormatTokensPretty выводит токены построчно: номер, вид, позиция, подсветка и текст.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		hl := tok.Highlight.Token.String()
		if tok.Highlight.Modifier != token.ModifierInvalid {
			hl += "." + tok.Highlight.Modifier.String()
		}
		_, err := fmt.Fprintf(w, "%3d: %-10s %-9s %-24s %q\n",
			i+1, tok.Kind.String(), posString(tok), hl, tok.Text)
		if err != nil {
			return err
		}
	}
	return nil
}

func posString(tok token.Token) string {
	return fmt.Sprintf("%d:%d", tok.Location.Start.Line+1, tok.Location.Start.Character+1)
}

// TokenJSON is the JSON view of a token. Positions are zero-based like LSP.
type TokenJSON struct {
	Kind      string `json:"kind"`
	Text      string `json:"text"`
	Line      uint32 `json:"line"`
	Character uint32 `json:"character"`
	EndLine   uint32 `json:"endLine"`
	EndChar   uint32 `json:"endCharacter"`
	Highlight string `json:"highlight"`
	Modifier  string `json:"modifier,omitempty"`
}

// FormatTokensJSON writes tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	out := make([]TokenJSON, 0, len(tokens))
	for _, tok := range tokens {
		tj := TokenJSON{
			Kind:      tok.Kind.String(),
			Text:      tok.Text,
			Line:      tok.Location.Start.Line,
			Character: tok.Location.Start.Character,
			EndLine:   tok.Location.End.Line,
			EndChar:   tok.Location.End.Character,
			Highlight: tok.Highlight.Token.String(),
		}
		if tok.Highlight.Modifier != token.ModifierInvalid {
			tj.Modifier = tok.Highlight.Modifier.String()
		}
		out = append(out, tj)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
