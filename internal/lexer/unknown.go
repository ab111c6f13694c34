package lexer

import (
	"strings"

	"nvgtls/internal/diag"
	"nvgtls/internal/source"
)

// unknownRun буферизует подряд идущие нераспознанные символы, чтобы
// "$$$" давал одну диагностику, а не три.
type unknownRun struct {
	buf strings.Builder
	loc source.Location
}

// append adds one unrecognised character located at charLoc. A character on
// another line, or separated from the run by anything, starts a new run.
func (u *unknownRun) append(lx *Lexer, charLoc source.Location, ch rune) {
	switch {
	case u.buf.Len() == 0:
		u.loc = charLoc
	case charLoc.Start.Line != u.loc.Start.Line || charLoc.Start.Character > u.loc.End.Character:
		u.flush(lx)
		u.loc = charLoc
	default:
		u.loc.End = charLoc.End
	}
	u.buf.WriteRune(ch)
}

// flush reports the pending run, if any, and clears it.
func (u *unknownRun) flush(lx *Lexer) {
	if u.buf.Len() == 0 {
		return
	}
	lx.report(diag.LexUnknownToken, u.loc, "Unknown token: "+u.buf.String())
	u.buf.Reset()
}
