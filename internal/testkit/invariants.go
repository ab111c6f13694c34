package testkit

import (
	"fmt"
	"unicode/utf8"

	"nvgtls/internal/ast"
	"nvgtls/internal/source"
	"nvgtls/internal/token"
)

// CheckTokenInvariants runs the positional invariants of a token stream:
// 1) every token is non-empty and belongs to file
// 2) tokens are ordered and never overlap
// 3) the text under each location is exactly the token text (valid UTF-8 only,
// invalid bytes are replaced while scanning)
func CheckTokenInvariants(content string, file source.FileID, tokens []token.Token) error {
	exact := utf8.ValidString(content)
	var prev source.Position
	for i, tok := range tokens {
		loc := tok.Location
		if tok.Text == "" || loc.Empty() {
			return fmt.Errorf("token %d is empty: %q at %s", i, tok.Text, loc)
		}
		if loc.File != file {
			return fmt.Errorf("token %d belongs to %q, want %q", i, loc.File, file)
		}
		if !loc.Start.Before(loc.End) {
			return fmt.Errorf("token %d ends before it starts: %s", i, loc)
		}
		if loc.Start.Before(prev) {
			return fmt.Errorf("token %d at %s overlaps the previous token ending at %s", i, loc.Start, prev)
		}
		prev = loc.End
		if exact {
			if got := source.SpanOf(content, loc); got != tok.Text {
				return fmt.Errorf("token %d text %q, source has %q at %s", i, tok.Text, got, loc)
			}
		}
	}
	return nil
}

// CheckOutlineInvariants verifies the declaration tree links: every
// declaration is reachable exactly once and points back at its parent.
func CheckOutlineInvariants(s *ast.Script) error {
	if s == nil {
		return fmt.Errorf("nil script")
	}
	seen := make(map[ast.DeclID]bool, s.Len())
	var check func(parent ast.DeclID, ids []ast.DeclID) error
	check = func(parent ast.DeclID, ids []ast.DeclID) error {
		for _, id := range ids {
			d := s.Decl(id)
			if d == nil {
				return fmt.Errorf("dangling declaration id %d", id)
			}
			if seen[id] {
				return fmt.Errorf("declaration %d (%s) linked twice", id, d.Name)
			}
			seen[id] = true
			if d.Parent != parent {
				return fmt.Errorf("declaration %d (%s) has parent %d, linked under %d", id, d.Name, d.Parent, parent)
			}
			if d.Name != "" && d.NameLoc.File != s.File {
				return fmt.Errorf("declaration %d (%s) name located in %q", id, d.Name, d.NameLoc.File)
			}
			if err := check(id, d.Children); err != nil {
				return err
			}
		}
		return nil
	}
	if err := check(ast.NoDeclID, s.Roots); err != nil {
		return err
	}
	if len(seen) != s.Len() {
		return fmt.Errorf("%d declarations allocated, %d reachable", s.Len(), len(seen))
	}
	return nil
}
