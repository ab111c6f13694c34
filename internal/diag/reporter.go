package diag

import "nvgtls/internal/source"

// Reporter — минимальный контракт получения диагностик от фаз.
// Реализации: BagReporter (кладёт в Bag), Sessions (кладёт в текущую сессию).
type Reporter interface {
	Report(code Code, sev Severity, loc source.Location, msg string)
}

// ReportError is a shortcut for SevError diagnostics. A nil reporter drops the diagnostic.
func ReportError(r Reporter, code Code, loc source.Location, msg string) {
	if r != nil {
		r.Report(code, SevError, loc, msg)
	}
}

// ReportWarning is a shortcut for SevWarning diagnostics.
func ReportWarning(r Reporter, code Code, loc source.Location, msg string) {
	if r != nil {
		r.Report(code, SevWarning, loc, msg)
	}
}

// BagReporter — адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, loc source.Location, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(New(sev, code, loc, msg))
}
