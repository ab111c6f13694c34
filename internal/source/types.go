package source

import "fmt"

// FileID identifies a source file by its document URI ("file:///...").
type FileID string

// Position is a zero-based line/character pair. Character counts runes, not bytes.
type Position struct {
	Line      uint32
	Character uint32
}

// Before reports whether p is strictly before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Character < other.Character
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Character)
}

// Location is a half-open range [Start, End) inside one file.
type Location struct {
	Start Position
	End   Position
	File  FileID
}

// Empty reports whether the location covers no characters.
func (l Location) Empty() bool {
	return l.Start == l.End
}

// Cover returns the smallest location spanning both l and other.
// Locations from different files are not merged.
func (l Location) Cover(other Location) Location {
	if l.File != other.File {
		return l
	}
	if other.Start.Before(l.Start) {
		l.Start = other.Start
	}
	if l.End.Before(other.End) {
		l.End = other.End
	}
	return l
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%s-%s", l.File, l.Start, l.End)
}
