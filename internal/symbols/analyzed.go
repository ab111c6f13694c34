package symbols

import (
	"nvgtls/internal/source"
)

// AnalyzedScope is the result of semantic analysis of one file: its own
// declarations plus the scopes of the files it includes, in include order
// (the predefined file first when present).
type AnalyzedScope struct {
	File     source.FileID
	Root     *Scope
	Includes []*AnalyzedScope
}

// Empty returns a scope with no symbols and no includes.
func Empty(file source.FileID) *AnalyzedScope {
	return &AnalyzedScope{File: file, Root: NewScope("", 0, nil)}
}

// IsEmpty reports whether the scope declares nothing and includes nothing.
func (a *AnalyzedScope) IsEmpty() bool {
	return a == nil || (a.Root.Len() == 0 && len(a.Includes) == 0)
}

// Lookup resolves a (possibly qualified) name in the file's own declarations
// first, then through the included scopes depth-first in include order.
// Include cycles are tolerated: every scope is searched at most once.
func (a *AnalyzedScope) Lookup(name string) []*Symbol {
	seen := make(map[*AnalyzedScope]bool)
	var walk func(cur *AnalyzedScope) []*Symbol
	walk = func(cur *AnalyzedScope) []*Symbol {
		if cur == nil || seen[cur] {
			return nil
		}
		seen[cur] = true
		if found := cur.Root.Resolve(name); len(found) > 0 {
			return found
		}
		for _, inc := range cur.Includes {
			if found := walk(inc); len(found) > 0 {
				return found
			}
		}
		return nil
	}
	return walk(a)
}

// Visible lists the files whose declarations are reachable through a, in lookup order.
func (a *AnalyzedScope) Visible() []source.FileID {
	seen := make(map[*AnalyzedScope]bool)
	var files []source.FileID
	var walk func(cur *AnalyzedScope)
	walk = func(cur *AnalyzedScope) {
		if cur == nil || seen[cur] {
			return
		}
		seen[cur] = true
		files = append(files, cur.File)
		for _, inc := range cur.Includes {
			walk(inc)
		}
	}
	walk(a)
	return files
}
