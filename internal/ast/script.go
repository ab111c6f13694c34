package ast

import (
	"nvgtls/internal/source"
)

// Script is the declaration tree of one source file.
type Script struct {
	File  source.FileID
	Decls *Arena[Decl]
	Roots []DeclID
}

func NewScript(file source.FileID, capHint uint) *Script {
	return &Script{
		File:  file,
		Decls: NewArena[Decl](capHint),
	}
}

// Add allocates d and links it under parent (NoDeclID means top level).
func (s *Script) Add(parent DeclID, d Decl) DeclID {
	d.Parent = parent
	id := DeclID(s.Decls.Allocate(d))
	if p := s.Decl(parent); p != nil {
		p.Children = append(p.Children, id)
	} else {
		s.Roots = append(s.Roots, id)
	}
	return id
}

func (s *Script) Decl(id DeclID) *Decl {
	if s == nil || s.Decls == nil {
		return nil
	}
	return s.Decls.Get(uint32(id))
}

// Walk visits every declaration depth-first in source order. Returning false
// from fn skips the children of that declaration.
func (s *Script) Walk(fn func(id DeclID, d *Decl) bool) {
	if s == nil {
		return
	}
	var visit func(ids []DeclID)
	visit = func(ids []DeclID) {
		for _, id := range ids {
			d := s.Decl(id)
			if d == nil {
				continue
			}
			if fn(id, d) {
				visit(d.Children)
			}
		}
	}
	visit(s.Roots)
}

// Len returns the number of declarations; a nil script has none.
func (s *Script) Len() int {
	if s == nil || s.Decls == nil {
		return 0
	}
	return int(s.Decls.Len())
}
