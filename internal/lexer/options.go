package lexer

import (
	"nvgtls/internal/diag"
	"nvgtls/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil — тогда ошибки игнорируем (но продолжаем лексить)
}

func (lx *Lexer) report(code diag.Code, loc source.Location, msg string) {
	diag.ReportError(lx.opts.Reporter, code, loc, msg)
}
