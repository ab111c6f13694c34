package lexer_test

import (
	"strings"
	"testing"

	"nvgtls/internal/diag"
	"nvgtls/internal/lexer"
	"nvgtls/internal/source"
	"nvgtls/internal/token"
)

const testFile source.FileID = "file:///test.nvgt"

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, loc source.Location, msg string) {
	r.diagnostics = append(r.diagnostics, diag.New(sev, code, loc, msg))
}

func tokenize(input string) ([]token.Token, *testReporter) {
	rep := &testReporter{}
	return lexer.Tokenize(input, testFile, lexer.Options{Reporter: rep}), rep
}

type want struct {
	kind token.Kind
	text string
}

func expectTokens(t *testing.T, input string, expected []want) []token.Token {
	t.Helper()
	tokens, _ := tokenize(input)
	if len(tokens) != len(expected) {
		t.Fatalf("%q: got %d tokens %v, want %d", input, len(tokens), texts(tokens), len(expected))
	}
	for i, w := range expected {
		if tokens[i].Kind != w.kind || tokens[i].Text != w.text {
			t.Fatalf("%q: token %d = %s(%q), want %s(%q)", input, i, tokens[i].Kind, tokens[i].Text, w.kind, w.text)
		}
	}
	return tokens
}

func texts(tokens []token.Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

func pos(line, char uint32) source.Position {
	return source.Position{Line: line, Character: char}
}

func TestWhitespaceOnlyYieldsNothing(t *testing.T) {
	for _, input := range []string{"", " ", "\t\t", "\n", "\r\n\r\n", " \t\r\n \n\r"} {
		tokens, rep := tokenize(input)
		if len(tokens) != 0 || len(rep.diagnostics) != 0 {
			t.Fatalf("%q: expected nothing, got %v / %v", input, texts(tokens), rep.diagnostics)
		}
	}
}

func TestLongestSymbolMatch(t *testing.T) {
	expectTokens(t, ">>>=", []want{{token.Reserved, ">>>="}})
	expectTokens(t, ">>>", []want{{token.Reserved, ">>>"}})
	expectTokens(t, "**=**", []want{{token.Reserved, "**="}, {token.Reserved, "**"}})
	expectTokens(t, "a::b", []want{{token.Identifier, "a"}, {token.Reserved, "::"}, {token.Identifier, "b"}})
	expectTokens(t, "x<<=y", []want{{token.Identifier, "x"}, {token.Reserved, "<<="}, {token.Identifier, "y"}})
	expectTokens(t, "!==", []want{{token.Reserved, "!="}, {token.Reserved, "="}})
}

func TestNumbers(t *testing.T) {
	expectTokens(t, "3.14f", []want{{token.Number, "3.14f"}})
	expectTokens(t, "3.14.15", []want{{token.Number, "3.14"}, {token.Reserved, "."}, {token.Number, "15"}})
	expectTokens(t, "42", []want{{token.Number, "42"}})
	expectTokens(t, "1.", []want{{token.Number, "1."}})
	// без точки суффикс f не принимается
	expectTokens(t, "3f", []want{{token.Number, "3"}, {token.Identifier, "f"}})
	expectTokens(t, "2.5ff", []want{{token.Number, "2.5f"}, {token.Identifier, "f"}})
	expectTokens(t, "a.5", []want{{token.Identifier, "a"}, {token.Reserved, "."}, {token.Number, "5"}})
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	tokens := expectTokens(t, "class Foo_1 : int8 this", []want{
		{token.Reserved, "class"},
		{token.Identifier, "Foo_1"},
		{token.Reserved, ":"},
		{token.Reserved, "int8"},
		{token.Identifier, "this"},
	})
	if tokens[0].Highlight.Token != token.HighlightKeyword || tokens[1].Highlight.Token != token.HighlightVariable {
		t.Fatalf("unexpected highlights %v %v", tokens[0].Highlight, tokens[1].Highlight)
	}
	if tokens[1].Highlight.Modifier != token.ModifierInvalid {
		t.Fatalf("expected unrefined modifier, got %v", tokens[1].Highlight.Modifier)
	}
}

func TestComments(t *testing.T) {
	tokens := expectTokens(t, "a // tail\r\nb /* x\r\ny */ c", []want{
		{token.Identifier, "a"},
		{token.Comment, "// tail"},
		{token.Identifier, "b"},
		{token.Comment, "/* x\r\ny */"},
		{token.Identifier, "c"},
	})
	block := tokens[3].Location
	if block.Start != pos(1, 2) || block.End != pos(2, 4) {
		t.Fatalf("block comment location = %v", block)
	}
	if tokens[4].Location.Start != pos(2, 5) {
		t.Fatalf("token after block comment at %v", tokens[4].Location.Start)
	}
}

func TestUnterminatedBlockCommentRunsToEOF(t *testing.T) {
	tokens, rep := tokenize("x /* never\nclosed")
	if len(tokens) != 2 || tokens[1].Text != "/* never\nclosed" {
		t.Fatalf("unexpected tokens %v", texts(tokens))
	}
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unterminated block comment must not be diagnosed: %v", rep.diagnostics)
	}
}

func TestStringsAndDirectives(t *testing.T) {
	expectTokens(t, `#include "lib/a b.nvgt"`, []want{
		{token.Directive, "#include"},
		{token.String, `"lib/a b.nvgt"`},
	})
	expectTokens(t, `s = 'it\'s';`, []want{
		{token.Identifier, "s"},
		{token.Reserved, "="},
		{token.String, `'it\'s'`},
		{token.Reserved, ";"},
	})
	expectTokens(t, "\"\"\"a\nb\"\"\" x", []want{
		{token.String, "\"\"\"a\nb\"\"\""},
		{token.Identifier, "x"},
	})
}

func TestUnterminatedStringIsReported(t *testing.T) {
	tokens, rep := tokenize("\"abc\nx")
	if len(tokens) != 2 || tokens[0].Text != `"abc` || tokens[1].Text != "x" {
		t.Fatalf("unexpected tokens %v", texts(tokens))
	}
	if len(rep.diagnostics) != 1 || rep.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Fatalf("expected one unterminated string diagnostic, got %v", rep.diagnostics)
	}
}

func TestQuotedUnknownCharsAreAString(t *testing.T) {
	tokens, rep := tokenize(`x = "$";`)
	if len(rep.diagnostics) != 0 {
		t.Fatalf("quoted characters are never unknown, got %v", rep.diagnostics)
	}
	if len(tokens) != 4 || tokens[2].Kind != token.String || tokens[2].Text != `"$"` {
		t.Fatalf("unexpected tokens %v", texts(tokens))
	}
}

func TestUnknownRunsAreBatched(t *testing.T) {
	_, rep := tokenize("a $` b")
	if len(rep.diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %v", rep.diagnostics)
	}
	d := rep.diagnostics[0]
	if d.Message != "Unknown token: $`" || d.Severity != diag.SevError {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	if d.Location.Start != pos(0, 2) || d.Location.End != pos(0, 4) {
		t.Fatalf("unexpected location %v", d.Location)
	}
}

func TestUnknownRunsSplitOnGaps(t *testing.T) {
	cases := map[string][]string{
		"$ `":   {"Unknown token: $", "Unknown token: `"},
		"$a`":   {"Unknown token: $", "Unknown token: `"},
		"$\n`":  {"Unknown token: $", "Unknown token: `"},
		"$$\\":  {"Unknown token: $$\\"},
		"x # y": {"Unknown token: #"},
	}
	for input, messages := range cases {
		_, rep := tokenize(input)
		if len(rep.diagnostics) != len(messages) {
			t.Fatalf("%q: got %d diagnostics %v, want %v", input, len(rep.diagnostics), rep.diagnostics, messages)
		}
		for i, m := range messages {
			if rep.diagnostics[i].Message != m {
				t.Fatalf("%q: diagnostic %d = %q, want %q", input, i, rep.diagnostics[i].Message, m)
			}
		}
	}
}

func TestTrailingUnknownRunIsFlushed(t *testing.T) {
	_, rep := tokenize("int x;\n§§")
	if len(rep.diagnostics) != 1 || rep.diagnostics[0].Message != "Unknown token: §§" {
		t.Fatalf("trailing run lost: %v", rep.diagnostics)
	}
	if rep.diagnostics[0].Location.Start != pos(1, 0) || rep.diagnostics[0].Location.End != pos(1, 2) {
		t.Fatalf("unexpected location %v", rep.diagnostics[0].Location)
	}
}

func TestPositionsCountRunesAcrossLineBreaks(t *testing.T) {
	tokens := expectTokens(t, "a\r\n  bb\n\rc é d", []want{
		{token.Identifier, "a"},
		{token.Identifier, "bb"},
		{token.Identifier, "c"},
		{token.Identifier, "d"},
	})
	if tokens[1].Location.Start != pos(1, 2) || tokens[1].Location.End != pos(1, 4) {
		t.Fatalf("bb at %v", tokens[1].Location)
	}
	// \n\r — два перевода строки
	if tokens[2].Location.Start != pos(3, 0) {
		t.Fatalf("c at %v", tokens[2].Location)
	}
	// é занимает один символ
	if tokens[3].Location.Start != pos(3, 4) {
		t.Fatalf("d at %v", tokens[3].Location)
	}
	for _, tok := range tokens {
		if tok.Location.File != testFile {
			t.Fatalf("token %q has file %q", tok.Text, tok.Location.File)
		}
	}
}

func TestLocationsAreOrderedAndDisjoint(t *testing.T) {
	input := "namespace n { int f(int a) { return a>>>=2; } } // end\r\n/* x */ float g = 1.5f;"
	tokens, _ := tokenize(input)
	for i := 1; i < len(tokens); i++ {
		prev, cur := tokens[i-1].Location, tokens[i].Location
		if cur.Start.Before(prev.End) {
			t.Fatalf("token %q at %v overlaps %q at %v", tokens[i].Text, cur, tokens[i-1].Text, prev)
		}
	}
}

func endOf(input string) source.Position {
	c := lexer.NewCursor(input)
	for !c.EOF() {
		c.StepNext()
	}
	return c.Head()
}

func TestReconstruction(t *testing.T) {
	inputs := []string{
		"int  x = 3.14f;\r\n// c\n/* a\r\nb */ y>>>=2;\t z",
		"#include \"a.nvgt\"\nvoid main() {\n\tprint('hi');\n}\n",
		"\n\n  x\r\n",
		"s = \"ünïcödé\"; // ✓",
	}
	for _, input := range inputs {
		tokens, _ := tokenize(input)
		var b strings.Builder
		prev := source.Position{}
		for _, tok := range tokens {
			gap := source.SpanOf(input, source.Location{Start: prev, End: tok.Location.Start})
			if strings.TrimSpace(gap) != "" {
				t.Fatalf("%q: non-whitespace gap %q before %q", input, gap, tok.Text)
			}
			b.WriteString(gap)
			if span := source.SpanOf(input, tok.Location); span != tok.Text {
				t.Fatalf("%q: token text %q does not match span %q", input, tok.Text, span)
			}
			b.WriteString(tok.Text)
			prev = tok.Location.End
		}
		b.WriteString(source.SpanOf(input, source.Location{Start: prev, End: endOf(input)}))
		if b.String() != input {
			t.Fatalf("reconstruction mismatch:\n got %q\nwant %q", b.String(), input)
		}
	}
}

func TestNilReporterIsAllowed(t *testing.T) {
	tokens := lexer.Tokenize("$ x", testFile, lexer.Options{})
	if len(tokens) != 1 || tokens[0].Text != "x" {
		t.Fatalf("unexpected tokens %v", texts(tokens))
	}
}
