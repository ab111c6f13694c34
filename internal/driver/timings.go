package driver

import (
	"encoding/json"
	"fmt"

	"nvgtls/internal/diag"
	"nvgtls/internal/inspect"
	"nvgtls/internal/observ"
	"nvgtls/internal/source"
)

type timingPayload struct {
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// TimingDiagnostic renders the phase timings of res as an informational
// diagnostic attached to the start of the file.
func TimingDiagnostic(res *inspect.Result) diag.Diagnostic {
	report := res.Timings
	msg := fmt.Sprintf("timings: total %.2f ms", report.TotalMS)
	data, err := json.Marshal(timingPayload{
		Path:    source.DisplayPath(res.URI),
		TotalMS: report.TotalMS,
		Phases:  report.Phases,
	})
	if err == nil {
		msg += " " + string(data)
	}
	return diag.New(diag.SevInfo, diag.ObsTimings, source.Location{File: res.URI}, msg)
}
