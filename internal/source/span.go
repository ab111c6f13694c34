package source

// SpanOf returns the substring of lines covered by loc. Lines are split the same
// way the lexer counts them (CRLF, LF and lone CR all end a line).
func SpanOf(content string, loc Location) string {
	start, ok := offsetOf(content, loc.Start)
	if !ok {
		return ""
	}
	end, ok := offsetOf(content, loc.End)
	if !ok || end < start {
		return ""
	}
	return content[start:end]
}

// offsetOf converts a Position into a byte offset in content.
func offsetOf(content string, pos Position) (int, bool) {
	var line, char uint32
	for i, r := range content {
		if line == pos.Line && char == pos.Character {
			return i, true
		}
		switch r {
		case '\r':
			if i+1 < len(content) && content[i+1] == '\n' {
				continue
			}
			line++
			char = 0
		case '\n':
			line++
			char = 0
		default:
			char++
		}
	}
	if line == pos.Line && char == pos.Character {
		return len(content), true
	}
	return 0, false
}
