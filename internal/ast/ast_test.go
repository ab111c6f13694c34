package ast_test

import (
	"testing"

	"nvgtls/internal/ast"
)

func TestScriptAddAndWalk(t *testing.T) {
	s := ast.NewScript("file:///a.nvgt", 4)
	ns := s.Add(ast.NoDeclID, ast.Decl{Kind: ast.DeclNamespace, Name: "ui"})
	s.Add(ns, ast.Decl{Kind: ast.DeclFunction, Name: "show"})
	s.Add(ast.NoDeclID, ast.Decl{Kind: ast.DeclVariable, Name: "count"})

	if len(s.Roots) != 2 || s.Len() != 3 {
		t.Fatalf("unexpected shape: roots=%d len=%d", len(s.Roots), s.Len())
	}
	var names []string
	s.Walk(func(_ ast.DeclID, d *ast.Decl) bool {
		names = append(names, d.Name)
		return true
	})
	if len(names) != 3 || names[0] != "ui" || names[1] != "show" || names[2] != "count" {
		t.Fatalf("unexpected walk order %v", names)
	}
	if got := s.Decl(s.Decl(ns).Children[0]).Parent; got != ns {
		t.Fatalf("parent link lost: %d", got)
	}
}

func TestWalkCanSkipChildren(t *testing.T) {
	s := ast.NewScript("file:///a.nvgt", 0)
	cls := s.Add(ast.NoDeclID, ast.Decl{Kind: ast.DeclClass, Name: "A"})
	s.Add(cls, ast.Decl{Kind: ast.DeclVariable, Name: "hidden"})
	count := 0
	s.Walk(func(_ ast.DeclID, d *ast.Decl) bool {
		count++
		return !d.Kind.IsScope()
	})
	if count != 1 {
		t.Fatalf("expected children to be skipped, visited %d", count)
	}
}

func TestNilScriptIsEmpty(t *testing.T) {
	var s *ast.Script
	if s.Len() != 0 || s.Decl(1) != nil {
		t.Fatalf("nil script must behave as empty")
	}
	s.Walk(func(ast.DeclID, *ast.Decl) bool { t.Fatalf("unexpected visit"); return true })
}
