package testkit

import (
	"strings"
	"testing"

	"nvgtls/internal/ast"
	"nvgtls/internal/lexer"
	"nvgtls/internal/parser"
	"nvgtls/internal/source"
	"nvgtls/internal/token"
)

const file = source.FileID("file:///t/main.nvgt")

func TestTokenInvariantsHoldForLexer(t *testing.T) {
	content := "class a {\r\n\tstring s = \"x\"; // c\r\n}\r/* b\nc */ int y = 1.5f;\n"
	tokens := lexer.Tokenize(content, file, lexer.Options{})
	if err := CheckTokenInvariants(content, file, tokens); err != nil {
		t.Fatalf("unexpected violation: %v", err)
	}
}

func TestTokenInvariantsDetectDrift(t *testing.T) {
	content := "int x;"
	tokens := lexer.Tokenize(content, file, lexer.Options{})
	tokens[1].Location.Start.Character++
	err := CheckTokenInvariants(content, file, tokens)
	if err == nil || !strings.Contains(err.Error(), "token 1") {
		t.Fatalf("expected drift on token 1, got %v", err)
	}

	overlap := []token.Token{tokens[0], tokens[0]}
	if err := CheckTokenInvariants(content, file, overlap); err == nil {
		t.Fatalf("expected overlap violation")
	}
}

func TestOutlineInvariants(t *testing.T) {
	content := "namespace a::b { class c { void m() {} int f; } }\nenum e { x, y }\n"
	tokens := lexer.Tokenize(content, file, lexer.Options{})
	script := parser.ParseScript(tokens, file, parser.Options{})
	if err := CheckOutlineInvariants(script); err != nil {
		t.Fatalf("unexpected violation: %v", err)
	}

	broken := ast.NewScript(file, 2)
	id := broken.Add(ast.NoDeclID, ast.Decl{Kind: ast.DeclClass, Name: "k"})
	broken.Decl(id).Parent = 7
	if err := CheckOutlineInvariants(broken); err == nil {
		t.Fatalf("expected parent mismatch")
	}
}
