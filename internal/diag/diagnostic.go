package diag

import (
	"nvgtls/internal/source"
)

// SourceName tags every diagnostic produced by this server.
const SourceName = "NVGT"

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Location source.Location
	Source   string
}

func New(sev Severity, code Code, loc source.Location, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Location: loc,
		Source:   SourceName,
	}
}

func NewError(code Code, loc source.Location, msg string) Diagnostic {
	return New(SevError, code, loc, msg)
}
