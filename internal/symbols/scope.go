package symbols

import (
	"strings"

	"nvgtls/internal/ast"
)

// Scope is a named declaration space: a file root, a namespace or a type body.
type Scope struct {
	Name      string
	Owner     ast.DeclKind // DeclInvalid for the file root
	Parent    *Scope
	Symbols   []*Symbol // declaration order
	NameIndex map[string][]*Symbol
}

func NewScope(name string, owner ast.DeclKind, parent *Scope) *Scope {
	return &Scope{
		Name:      name,
		Owner:     owner,
		Parent:    parent,
		NameIndex: make(map[string][]*Symbol),
	}
}

// Declare adds sym to the scope. Functions overload, namespaces merge and a
// forward declaration may be completed once; any other reuse of a name
// conflicts. On conflict the earlier symbol is returned with ok=false. For a
// merged namespace the existing symbol is returned with ok=true.
func (s *Scope) Declare(sym *Symbol) (*Symbol, bool) {
	prev := s.NameIndex[sym.Name]
	for _, p := range prev {
		switch {
		case p.Kind.IsCallable() && sym.Kind.IsCallable():
			continue
		case p.Kind == ast.DeclNamespace && sym.Kind == ast.DeclNamespace:
			return p, true
		case p.Kind == sym.Kind && (p.Is(SymbolFlagForward) || sym.Is(SymbolFlagForward)):
			if p.Is(SymbolFlagForward) && !sym.Is(SymbolFlagForward) {
				members := p.Members
				*p = *sym
				if p.Members == nil {
					p.Members = members
				}
			}
			return p, true
		default:
			return p, false
		}
	}
	if sym.Kind.IsScope() && sym.Members == nil {
		sym.Members = NewScope(sym.Name, sym.Kind, s)
	}
	s.Symbols = append(s.Symbols, sym)
	s.NameIndex[sym.Name] = append(prev, sym)
	return sym, true
}

// Lookup returns the symbols declared directly in s under name.
func (s *Scope) Lookup(name string) []*Symbol {
	if s == nil {
		return nil
	}
	return s.NameIndex[name]
}

// Resolve follows a qualified name ("ui::menu::show") through member scopes.
func (s *Scope) Resolve(qualified string) []*Symbol {
	parts := strings.Split(strings.TrimPrefix(qualified, "::"), "::")
	cur := s
	for i, part := range parts {
		found := cur.Lookup(part)
		if i == len(parts)-1 {
			return found
		}
		cur = nil
		for _, f := range found {
			if f.Members != nil {
				cur = f.Members
				break
			}
		}
		if cur == nil {
			return nil
		}
	}
	return nil
}

// QualifiedName returns the "a::b" path of the scope, empty for the root.
func (s *Scope) QualifiedName() string {
	var parts []string
	for cur := s; cur != nil && cur.Parent != nil; cur = cur.Parent {
		parts = append(parts, cur.Name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "::")
}

// Len returns the number of symbols in s and every member scope.
func (s *Scope) Len() int {
	if s == nil {
		return 0
	}
	n := len(s.Symbols)
	for _, sym := range s.Symbols {
		if sym.Members != nil && sym.Members.Parent == s {
			n += sym.Members.Len()
		}
	}
	return n
}
