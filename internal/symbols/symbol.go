package symbols

import (
	"nvgtls/internal/ast"
	"nvgtls/internal/source"
)

// SymbolFlags encode misc attributes for quick checks.
type SymbolFlags uint16

const (
	SymbolFlagPrivate SymbolFlags = 1 << iota
	SymbolFlagProtected
	SymbolFlagShared
	SymbolFlagConst
	SymbolFlagForward
	SymbolFlagBuiltin
)

// Strings returns a slice of textual flag labels.
func (f SymbolFlags) Strings() []string {
	if f == 0 {
		return nil
	}
	labels := make([]string, 0, 4)
	if f&SymbolFlagPrivate != 0 {
		labels = append(labels, "private")
	}
	if f&SymbolFlagProtected != 0 {
		labels = append(labels, "protected")
	}
	if f&SymbolFlagShared != 0 {
		labels = append(labels, "shared")
	}
	if f&SymbolFlagConst != 0 {
		labels = append(labels, "const")
	}
	if f&SymbolFlagForward != 0 {
		labels = append(labels, "forward")
	}
	if f&SymbolFlagBuiltin != 0 {
		labels = append(labels, "builtin")
	}
	return labels
}

// Symbol is one named declaration visible in a scope.
type Symbol struct {
	Name     string
	Kind     ast.DeclKind
	Decl     ast.DeclID
	File     source.FileID
	Location source.Location // location of the name
	Type     string
	Flags    SymbolFlags
	// Members is the scope owned by namespaces, classes, interfaces and enums.
	Members *Scope
}

func (s *Symbol) Is(flag SymbolFlags) bool { return s.Flags&flag != 0 }
