package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"nvgtls/internal/diag"
	"nvgtls/internal/source"
)

// File is one file's diagnostics together with the content they refer to.
type File struct {
	URI         source.FileID
	Content     string
	Diagnostics []diag.Diagnostic
}

// Pretty форматирует диагностики в человекочитаемый вид:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем (если ShowSource) строка исходника с подчёркиванием ^~~~ по Location.
// Строки и колонки выводятся с единицы.
func Pretty(w io.Writer, files []File, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	for _, f := range files {
		lines := splitLines(f.Content)
		path := displayPath(f.URI, opts.PathMode, opts.Base)
		for _, d := range f.Diagnostics {
			start := d.Location.Start
			_, err := fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
				p.path.Sprint(path), start.Line+1, start.Character+1,
				p.severity(d.Severity).Sprint(d.Severity.String()),
				p.code.Sprint(d.Code.ID()), d.Message)
			if err != nil {
				return err
			}
			if !opts.ShowSource || int(start.Line) >= len(lines) {
				continue
			}
			line := lines[start.Line]
			gutter := fmt.Sprintf("%5d | ", start.Line+1)
			if _, err := fmt.Fprintf(w, "%s%s\n", p.gutter.Sprint(gutter), line); err != nil {
				return err
			}
			pad := strings.Repeat(" ", len(gutter)-2) + "| "
			if _, err := fmt.Fprintf(w, "%s%s\n", p.gutter.Sprint(pad), p.severity(d.Severity).Sprint(caret(line, d.Location))); err != nil {
				return err
			}
		}
	}
	return nil
}

// caret builds the underline for loc on line: spaces up to the start column
// (tabs kept so the terminal aligns them), then ^ and ~ for the covered width.
// A location ending on a later line is underlined to the end of the line.
func caret(line string, loc source.Location) string {
	runes := []rune(line)
	startCol := min(int(loc.Start.Character), len(runes))
	endCol := len(runes)
	if loc.End.Line == loc.Start.Line {
		endCol = min(int(loc.End.Character), len(runes))
	}
	var b strings.Builder
	for _, r := range runes[:startCol] {
		if r == '\t' {
			b.WriteRune('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	width := 0
	if endCol > startCol {
		width = runewidth.StringWidth(string(runes[startCol:endCol]))
	}
	b.WriteByte('^')
	if width > 1 {
		b.WriteString(strings.Repeat("~", width-1))
	}
	return b.String()
}

type palette struct {
	path, code, gutter *color.Color
	err, warning, info *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		path:    color.New(color.Bold),
		code:    color.New(color.FgHiBlack),
		gutter:  color.New(color.FgBlue),
		err:     color.New(color.FgRed, color.Bold),
		warning: color.New(color.FgYellow, color.Bold),
		info:    color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.path, p.code, p.gutter, p.err, p.warning, p.info} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warning
	}
	return p.info
}
