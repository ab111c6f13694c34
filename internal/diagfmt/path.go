package diagfmt

import (
	"os"
	"path/filepath"

	"nvgtls/internal/source"
)

func displayPath(uri source.FileID, mode PathMode, base string) string {
	p := source.DisplayPath(uri)
	if uri == "" {
		return "<unknown>"
	}
	switch mode {
	case PathModeAbsolute:
		return p
	case PathModeBasename:
		return filepath.Base(p)
	}
	if base == "" {
		if wd, err := os.Getwd(); err == nil {
			base = wd
		}
	}
	rel, err := filepath.Rel(base, p)
	if err != nil {
		return p
	}
	if mode == PathModeAuto && len(rel) >= len(p) {
		return p
	}
	return rel
}

// splitLines splits content on CRLF, LF and lone CR, like the lexer counts lines.
func splitLines(content string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			lines = append(lines, content[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, content[start:i])
			if i+1 < len(content) && content[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	return append(lines, content[start:])
}
