package diag

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"nvgtls/internal/source"
)

// ToProtocolRange converts a Location into an LSP range.
func ToProtocolRange(loc source.Location) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: loc.Start.Line, Character: loc.Start.Character},
		End:   protocol.Position{Line: loc.End.Line, Character: loc.End.Character},
	}
}

func toProtocolSeverity(sev Severity) protocol.DiagnosticSeverity {
	switch sev {
	case SevError:
		return protocol.DiagnosticSeverityError
	case SevWarning:
		return protocol.DiagnosticSeverityWarning
	default:
		return protocol.DiagnosticSeverityInformation
	}
}

// ToProtocol converts a diagnostic into the shape published to editors.
func ToProtocol(d Diagnostic) protocol.Diagnostic {
	sev := toProtocolSeverity(d.Severity)
	src := d.Source
	if src == "" {
		src = SourceName
	}
	out := protocol.Diagnostic{
		Range:    ToProtocolRange(d.Location),
		Severity: &sev,
		Source:   &src,
		Message:  d.Message,
	}
	if d.Code != UnknownCode {
		out.Code = &protocol.IntegerOrString{Value: d.Code.ID()}
	}
	return out
}

// ToProtocolList converts diagnostics preserving order. It never returns nil,
// so an empty list still serialises as [] and clears stale editor markers.
func ToProtocolList(ds []Diagnostic) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(ds))
	for _, d := range ds {
		out = append(out, ToProtocol(d))
	}
	return out
}
