package observ

import (
	"fmt"
	"strings"
	"time"
)

// Phase records the duration of one pipeline phase.
type Phase struct {
	Name string
	Dur  time.Duration
	Note string
}

// Timer splits a run into consecutive phases: every Stamp closes the phase
// that started at the previous stamp (or at NewTimer).
type Timer struct {
	name   string
	last   time.Time
	phases []Phase
	now    func() time.Time
}

// NewTimer creates a Timer for a run called name.
func NewTimer(name string) *Timer {
	return newTimerWithClock(name, time.Now)
}

func newTimerWithClock(name string, now func() time.Time) *Timer {
	return &Timer{name: name, last: now(), phases: make([]Phase, 0, 8), now: now}
}

// Stamp closes the current phase under name and starts the next one.
func (t *Timer) Stamp(name string) {
	t.StampNote(name, "")
}

// StampNote is Stamp with a free-form note attached to the phase.
func (t *Timer) StampNote(name, note string) {
	now := t.now()
	t.phases = append(t.phases, Phase{Name: name, Dur: now.Sub(t.last), Note: note})
	t.last = now
}

// Summary returns a human-readable string summarizing all tracked phases.
func (t *Timer) Summary() string {
	report := t.Report()
	var b strings.Builder
	fmt.Fprintf(&b, "%s timings:\n", t.name)
	for _, p := range report.Phases {
		fmt.Fprintf(&b, "  %-12s %7.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			b.WriteString("  // " + p.Note)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-12s %7.2f ms\n", "total", report.TotalMS)
	return b.String()
}

// PhaseReport представляет сжатую информацию о фазе таймера для сериализации.
type PhaseReport struct {
	Name       string  `json:"name" msgpack:"name"`
	DurationMS float64 `json:"duration_ms" msgpack:"duration_ms"`
	Note       string  `json:"note,omitempty" msgpack:"note,omitempty"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	TotalMS float64       `json:"total_ms" msgpack:"total_ms"`
	Phases  []PhaseReport `json:"phases" msgpack:"phases"`
}

// Report формирует срез фаз и общую длительность в миллисекундах.
func (t *Timer) Report() Report {
	if len(t.phases) == 0 {
		return Report{}
	}
	report := Report{
		Phases: make([]PhaseReport, len(t.phases)),
	}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: durationToMillis(phase.Dur),
			Note:       phase.Note,
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

// Phase returns the recorded duration of the named phase.
func (r Report) Phase(name string) (PhaseReport, bool) {
	for _, p := range r.Phases {
		if p.Name == name {
			return p, true
		}
	}
	return PhaseReport{}, false
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
