package preprocess_test

import (
	"testing"

	"nvgtls/internal/diag"
	"nvgtls/internal/lexer"
	"nvgtls/internal/preprocess"
	"nvgtls/internal/source"
)

func run(t *testing.T, src string) (preprocess.Result, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(0)
	tokens := lexer.Tokenize(src, "file:///main.nvgt", lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return preprocess.Preprocess(tokens, diag.BagReporter{Bag: bag}), bag
}

func TestIncludesAreExtractedInOrder(t *testing.T) {
	res, bag := run(t, "#include \"a.nvgt\"\n// note\n#include 'lib/b.nvgt' // trailing\nint x;\n")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics %v", bag.Items())
	}
	if len(res.IncludeFiles) != 2 {
		t.Fatalf("expected 2 includes, got %d", len(res.IncludeFiles))
	}
	if res.IncludeFiles[0].Text != `"a.nvgt"` || res.IncludeFiles[1].Text != `'lib/b.nvgt'` {
		t.Fatalf("unexpected include texts %q %q", res.IncludeFiles[0].Text, res.IncludeFiles[1].Text)
	}
	if res.IncludeFiles[1].Location.Start != (source.Position{Line: 2, Character: 9}) {
		t.Fatalf("unexpected include location %v", res.IncludeFiles[1].Location)
	}
	var got []string
	for _, tok := range res.ParsingTokens {
		got = append(got, tok.Text)
	}
	if len(got) != 3 || got[0] != "int" || got[1] != "x" || got[2] != ";" {
		t.Fatalf("unexpected parsing tokens %v", got)
	}
}

func TestOtherDirectivesAreStripped(t *testing.T) {
	res, _ := run(t, "#pragma once\n#define DEBUG 1\nvoid f();")
	if len(res.IncludeFiles) != 0 {
		t.Fatalf("unexpected includes")
	}
	if len(res.ParsingTokens) != 5 || res.ParsingTokens[0].Text != "void" {
		t.Fatalf("unexpected parsing tokens %d", len(res.ParsingTokens))
	}
}

func TestMalformedIncludeIsReported(t *testing.T) {
	res, bag := run(t, "#include nothing\nint y;")
	if len(res.IncludeFiles) != 0 {
		t.Fatalf("malformed include must be ignored")
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.IncMalformed {
		t.Fatalf("expected one malformed include diagnostic, got %v", bag.Items())
	}
	if len(res.ParsingTokens) != 3 {
		t.Fatalf("tokens on the next line must survive, got %d", len(res.ParsingTokens))
	}
}

func TestUnterminatedIncludeIsRejected(t *testing.T) {
	res, bag := run(t, "#include \"foo.nvgt\nint y;")
	if len(res.IncludeFiles) != 0 {
		t.Fatalf("unterminated include path must be ignored, got %q", res.IncludeFiles[0].Text)
	}
	var lexical, malformed int
	for _, d := range bag.Items() {
		switch d.Code {
		case diag.LexUnterminatedString:
			lexical++
		case diag.IncMalformed:
			malformed++
		}
	}
	if lexical != 1 || malformed != 1 {
		t.Fatalf("expected lexical and include diagnostics, got %v", bag.Items())
	}
	if len(res.ParsingTokens) != 3 {
		t.Fatalf("tokens on the next line must survive, got %d", len(res.ParsingTokens))
	}
}
