package lexer

import (
	"nvgtls/internal/source"
	"nvgtls/internal/token"
)

var symbolTrie = NewTrie(token.Symbols)

type Lexer struct {
	file    source.FileID
	cursor  Cursor
	opts    Options
	unknown unknownRun
}

func New(text string, file source.FileID, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(text),
		opts:   opts,
	}
}

// Tokenize scans text to the end and returns every token in source order.
// Lexical problems are reported through opts.Reporter; scanning never stops early.
func Tokenize(text string, file source.FileID, opts Options) []token.Token {
	lx := New(text, file, opts)
	tokens := make([]token.Token, 0, len(text)/4)
	for {
		tok, ok := lx.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Next возвращает следующий токен. Пробелы и переводы строк пропускаются,
// нераспознанные символы копятся в unknownRun. На EOF сбрасывает накопленное
// и возвращает ok=false (и дальше всегда false).
func (lx *Lexer) Next() (token.Token, bool) {
	for {
		if lx.cursor.EOF() {
			lx.unknown.flush(lx)
			return token.Token{}, false
		}
		if lx.cursor.IsNextWrap() || lx.cursor.IsNextWhitespace() {
			lx.cursor.StepNext()
			continue
		}

		start := lx.cursor.Head()
		if tok, ok := lx.scan(start); ok {
			return tok, true
		}

		end := start
		end.Character++
		lx.unknown.append(lx, source.Location{Start: start, End: end, File: lx.file}, lx.cursor.Next(0))
		lx.cursor.StepNext()
	}
}

// scan tries each token class in priority order: comment, string, directive,
// number, symbol, identifier.
func (lx *Lexer) scan(start source.Position) (token.Token, bool) {
	if text := lx.scanComment(); text != "" {
		return lx.emit(token.Comment, text, start, token.HighlightComment), true
	}
	if text := lx.scanString(start); text != "" {
		return lx.emit(token.String, text, start, token.HighlightString), true
	}
	if text := lx.scanDirective(); text != "" {
		return lx.emit(token.Directive, text, start, token.HighlightMacro), true
	}
	if text := lx.scanNumber(); text != "" {
		return lx.emit(token.Number, text, start, token.HighlightNumber), true
	}
	if text := lx.scanSymbol(); text != "" {
		return lx.emit(token.Reserved, text, start, token.HighlightKeyword), true
	}
	if text := lx.scanIdentifier(); text != "" {
		if token.IsKeyword(text) {
			return lx.emit(token.Reserved, text, start, token.HighlightKeyword), true
		}
		return lx.emit(token.Identifier, text, start, token.HighlightVariable), true
	}
	return token.Token{}, false
}

func (lx *Lexer) emit(kind token.Kind, text string, start source.Position, h token.HighlightToken) token.Token {
	return token.Token{
		Kind:      kind,
		Text:      text,
		Location:  lx.locationFrom(start),
		Highlight: token.DefaultHighlight(h),
	}
}

func (lx *Lexer) locationFrom(start source.Position) source.Location {
	return source.Location{Start: start, End: lx.cursor.Head(), File: lx.file}
}
